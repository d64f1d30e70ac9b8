package handler

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
)

// =============================================================================
// Response bodies
// =============================================================================

type userResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName,omitempty"`
	PhotoURL    string     `json:"photoUrl,omitempty"`
	Role        string     `json:"role"`
	IsVerified  bool       `json:"isVerified"`
	IsBanned    bool       `json:"isBanned"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role.String(),
		IsVerified:  u.IsVerified,
		IsBanned:    u.IsBanned,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

type jobResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CompanyID          uuid.UUID  `json:"companyId"`
	CompanyName        string     `json:"companyName,omitempty"`
	CategoryID         *int32     `json:"categoryId,omitempty"`
	CategoryName       string     `json:"categoryName,omitempty"`
	SpecializationID   *int32     `json:"specializationId,omitempty"`
	SpecializationName string     `json:"specializationName,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements,omitempty"`
	SalaryMin          *int64     `json:"salaryMin,omitempty"`
	SalaryMax          *int64     `json:"salaryMax,omitempty"`
	Location           string     `json:"location,omitempty"`
	JobType            string     `json:"jobType,omitempty"`
	Experience         string     `json:"experience,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	ExpiresAt          time.Time  `json:"expiresAt"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	LastPushedAt       *time.Time `json:"lastPushedAt,omitempty"`
	OwnerEmail         string     `json:"ownerEmail,omitempty"`
	OwnerDisplayName   string     `json:"ownerDisplayName,omitempty"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:                 j.ID,
		CompanyID:          j.CompanyID,
		CompanyName:        j.CompanyName,
		CategoryID:         j.CategoryID,
		CategoryName:       j.CategoryName,
		SpecializationID:   j.SpecializationID,
		SpecializationName: j.SpecializationName,
		Title:              j.Title,
		Description:        j.Description,
		Requirements:       j.Requirements,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		Location:           j.Location,
		JobType:            j.JobType,
		Experience:         j.Experience,
		Status:             j.Status.String(),
		CreatedAt:          j.CreatedAt,
		ExpiresAt:          j.ExpiresAt,
		ApprovedAt:         j.ApprovedAt,
		LastPushedAt:       j.LastPushedAt,
		OwnerEmail:         j.OwnerEmail,
		OwnerDisplayName:   j.OwnerDisplayName,
	}
}

func toJobResponses(jobs []domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}

type companyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	WebsiteURL  string    `json:"websiteUrl,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Description string    `json:"description,omitempty"`
}

func toCompanyResponse(c *domain.CompanyProfile) *companyResponse {
	if c == nil {
		return nil
	}
	return &companyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		WebsiteURL:  c.WebsiteURL,
		LogoURL:     c.LogoURL,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		Description: c.Description,
	}
}

type candidateProfileResponse struct {
	FullName       string     `json:"fullName,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	Address        string     `json:"address,omitempty"`
	ProfileSummary string     `json:"profileSummary,omitempty"`
	City           string     `json:"city,omitempty"`
	Country        string     `json:"country,omitempty"`
	Birthday       *time.Time `json:"birthday,omitempty"`
}

func toCandidateProfileResponse(p *domain.CandidateProfile) *candidateProfileResponse {
	if p == nil {
		return nil
	}
	return &candidateProfileResponse{
		FullName:       p.FullName,
		PhoneNumber:    p.PhoneNumber,
		Address:        p.Address,
		ProfileSummary: p.ProfileSummary,
		City:           p.City,
		Country:        p.Country,
		Birthday:       p.Birthday,
	}
}

// entitlementResponse flattens an entitlement to its effective terms.
type entitlementResponse struct {
	ID                   uuid.UUID       `json:"id"`
	PlanID               *uuid.UUID      `json:"planId,omitempty"`
	PlanName             *string         `json:"planName"`
	PlanType             string          `json:"planType,omitempty"`
	Price                *int64          `json:"price,omitempty"`
	Features             json.RawMessage `json:"features,omitempty"`
	JobPostDaily         *int            `json:"jobPostDaily,omitempty"`
	PushTopDaily         *int            `json:"pushTopDaily,omitempty"`
	CVStorage            *int            `json:"cvStorage,omitempty"`
	ViewApplicantCount   *int            `json:"viewApplicantCount,omitempty"`
	RevealCandidatePhone *int            `json:"revealCandidatePhone,omitempty"`
	Active               bool            `json:"active"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	DurationDays         *int            `json:"durationDays,omitempty"`
	PaymentTransactionID string          `json:"paymentTransactionId,omitempty"`
}

func toEntitlementResponse(e *domain.Entitlement) *entitlementResponse {
	if e == nil {
		return nil
	}
	terms := e.Terms()
	return &entitlementResponse{
		ID:                   e.ID,
		PlanID:               e.PlanID,
		PlanName:             terms.PlanName,
		PlanType:             string(e.PlanType()),
		Price:                terms.Price,
		Features:             terms.Features,
		JobPostDaily:         terms.JobPostDaily,
		PushTopDaily:         terms.PushTopDaily,
		CVStorage:            terms.CVStorage,
		ViewApplicantCount:   terms.ViewApplicantCount,
		RevealCandidatePhone: terms.RevealCandidatePhone,
		Active:               e.Status == domain.SubscriptionStatusActive,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		DurationDays:         e.DurationDays(),
		PaymentTransactionID: e.PaymentTransactionID,
	}
}

type candidateSummaryResponse struct {
	userResponse
	Profile    *candidateProfileResponse `json:"profile,omitempty"`
	CurrentVIP *entitlementResponse      `json:"currentVip"`
}

type employerSummaryResponse struct {
	userResponse
	Company    *companyResponse     `json:"company,omitempty"`
	CurrentVIP *entitlementResponse `json:"currentVip"`
}

type promotionResultResponse struct {
	JobID       uuid.UUID `json:"jobId"`
	Tier        string    `json:"tier"`
	PushedAt    time.Time `json:"pushedAt"`
	Used        int       `json:"used,omitempty"`
	Limit       int       `json:"limit,omitempty"`
	NextResetAt time.Time `json:"nextResetAt"`
}

func toPromotionResultResponse(r *domain.PromotionResult) promotionResultResponse {
	return promotionResultResponse{
		JobID:       r.JobID,
		Tier:        string(r.Tier),
		PushedAt:    r.PushedAt,
		Used:        r.Used,
		Limit:       r.Limit,
		NextResetAt: r.NextResetAt,
	}
}

type promotionStatusResponse struct {
	Tier        string     `json:"tier"`
	Used        int        `json:"used"`
	Limit       int        `json:"limit"`
	NextResetAt time.Time  `json:"nextResetAt"`
	PlanName    string     `json:"planName,omitempty"`
	PlanEndsAt  *time.Time `json:"planEndsAt,omitempty"`
}

func toPromotionStatusResponse(s *domain.PromotionStatus) promotionStatusResponse {
	return promotionStatusResponse{
		Tier:        string(s.Tier),
		Used:        s.Used,
		Limit:       s.Limit,
		NextResetAt: s.NextResetAt,
		PlanName:    s.PlanName,
		PlanEndsAt:  s.PlanEndsAt,
	}
}

// =============================================================================
// Request bodies
// =============================================================================

type createJobRequest struct {
	CategoryID       *int32    `json:"categoryId"`
	SpecializationID *int32    `json:"specializationId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	SalaryMin        *int64    `json:"salaryMin"`
	SalaryMax        *int64    `json:"salaryMax"`
	Location         string    `json:"location"`
	JobType          string    `json:"jobType"`
	Experience       string    `json:"experience"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

func (req createJobRequest) params(ownerID string) domain.CreateJobParams {
	return domain.CreateJobParams{
		OwnerUserID:      ownerID,
		CategoryID:       req.CategoryID,
		SpecializationID: req.SpecializationID,
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Requirements:     strings.TrimSpace(req.Requirements),
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Location:         strings.TrimSpace(req.Location),
		JobType:          strings.TrimSpace(req.JobType),
		Experience:       strings.TrimSpace(req.Experience),
		ExpiresAt:        req.ExpiresAt,
	}
}

type companyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WebsiteURL  string `json:"websiteUrl"`
	LogoURL     string `json:"logoUrl"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

func (req companyRequest) profile() domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		WebsiteURL:  strings.TrimSpace(req.WebsiteURL),
		LogoURL:     strings.TrimSpace(req.LogoURL),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Description: strings.TrimSpace(req.Description),
	}
}

type chooseRoleRequest struct {
	Role string `json:"role"`
}

// role maps the self-selectable role names. Anything else is rejected.
func (req chooseRoleRequest) role() (domain.Role, error) {
	switch strings.ToLower(strings.TrimSpace(req.Role)) {
	case "employer":
		return domain.RoleEmployer, nil
	case "candidate":
		return domain.RoleCandidate, nil
	}
	return domain.RoleNone, domain.NewValidationError("handler.role", "role", "Role must be employer or candidate")
}

type banRequest struct {
	Banned *bool `json:"banned"`
}

type createAdminRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// =============================================================================
// Applications
// =============================================================================

type applicationResponse struct {
	ID        uuid.UUID  `json:"id"`
	JobID     uuid.UUID  `json:"jobId"`
	CVID      *uuid.UUID `json:"cvId,omitempty"`
	Status    string     `json:"status"`
	AppliedAt time.Time  `json:"appliedAt"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		CVID:      a.CVID,
		Status:    a.Status.String(),
		AppliedAt: a.AppliedAt,
	}
}

type appliedJobResponse struct {
	ApplicationID      uuid.UUID `json:"applicationId"`
	JobID              uuid.UUID `json:"jobId"`
	Status             string    `json:"status"`
	AppliedAt          time.Time `json:"appliedAt"`
	JobTitle           string    `json:"jobTitle"`
	CompanyName        string    `json:"companyName"`
	SalaryMin          *int64    `json:"salaryMin,omitempty"`
	SalaryMax          *int64    `json:"salaryMax,omitempty"`
	Location           string    `json:"location,omitempty"`
	SpecializationName string    `json:"specializationName,omitempty"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

func toAppliedJobResponses(items []domain.AppliedJob) []appliedJobResponse {
	out := make([]appliedJobResponse, 0, len(items))
	for _, a := range items {
		out = append(out, appliedJobResponse{
			ApplicationID:      a.ApplicationID,
			JobID:              a.JobID,
			Status:             a.Status.String(),
			AppliedAt:          a.AppliedAt,
			JobTitle:           a.JobTitle,
			CompanyName:        a.CompanyName,
			SalaryMin:          a.SalaryMin,
			SalaryMax:          a.SalaryMax,
			Location:           a.Location,
			SpecializationName: a.SpecializationName,
			ExpiresAt:          a.ExpiresAt,
		})
	}
	return out
}

type savedJobResponse struct {
	jobResponse
	SavedAt time.Time `json:"savedAt"`
}

func toSavedJobResponses(items []domain.SavedJob) []savedJobResponse {
	out := make([]savedJobResponse, 0, len(items))
	for i := range items {
		out = append(out, savedJobResponse{
			jobResponse: toJobResponse(&items[i].Job),
			SavedAt:     items[i].SavedAt,
		})
	}
	return out
}

type cvResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	IsDefault bool       `json:"isDefault"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func toCVResponse(c *domain.CV) cvResponse {
	resp := cvResponse{
		ID:        c.ID,
		Name:      c.Name,
		URL:       c.URL,
		IsDefault: c.IsDefault,
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = &c.CreatedAt
	}
	return resp
}

type applicantResponse struct {
	ApplicationID  uuid.UUID   `json:"applicationId"`
	CandidateID    string      `json:"candidateId"`
	FullName       string      `json:"fullName,omitempty"`
	CandidateEmail string      `json:"candidateEmail"`
	PhoneNumber    string      `json:"phoneNumber,omitempty"`
	PhoneMasked    string      `json:"phoneMasked,omitempty"`
	Status         string      `json:"status"`
	AppliedAt      time.Time   `json:"appliedAt"`
	CV             *cvResponse `json:"cv,omitempty"`
}

type applicantsResponse struct {
	Total      int                 `json:"total"`
	Applicants []applicantResponse `json:"applicants"`
}

func toApplicantsResponse(items []domain.Applicant) applicantsResponse {
	out := make([]applicantResponse, 0, len(items))
	for _, a := range items {
		resp := applicantResponse{
			ApplicationID:  a.ApplicationID,
			CandidateID:    a.CandidateID,
			FullName:       a.FullName,
			CandidateEmail: a.Email,
			Status:         a.Status.String(),
			AppliedAt:      a.AppliedAt,
		}
		if a.PhoneMasked {
			resp.PhoneMasked = a.Phone
		} else {
			resp.PhoneNumber = a.Phone
		}
		if a.CV != nil {
			cv := toCVResponse(a.CV)
			resp.CV = &cv
		}
		out = append(out, resp)
	}
	return applicantsResponse{Total: len(out), Applicants: out}
}

type applyRequest struct {
	CVID string `json:"cvId"`
}

// cvID parses the chosen CV; a missing or malformed id is a field error.
func (r applyRequest) cvID() (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(r.CVID))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("apply", "cvId", "Choose one of your CVs")
	}
	return id, nil
}

type reviewRequest struct {
	Status string `json:"status"`
}

type createCVRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	IsDefault bool   `json:"isDefault"`
}

func (r createCVRequest) params(userID string) domain.CreateCVParams {
	return domain.CreateCVParams{
		UserID:    userID,
		Name:      r.Name,
		URL:       r.URL,
		IsDefault: r.IsDefault,
	}
}
