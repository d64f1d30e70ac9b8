// Package domain contains core business types and interfaces.
//
// This file defines the User domain type, roles, and related types.
// These types are separate from the repository models to allow for business logic
// enrichment and to decouple the domain layer from the database layer.
package domain

import (
	"database/sql"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the stored role of a user. Users who have not picked a role yet
// have RoleNone.
type Role int16

const (
	RoleNone       Role = 0
	RoleAdmin      Role = 1
	RoleSuperAdmin Role = 2
	RoleEmployer   Role = 3
	RoleCandidate  Role = 4
)

// String returns the API representation of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "super_admin"
	case RoleEmployer:
		return "employer"
	case RoleCandidate:
		return "candidate"
	}
	return "none"
}

// IsAdmin returns true for roles with back-office capability.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents a registered user of the job board.
//
// The ID is the identity provider's subject; authentication itself happens
// at the provider.
type User struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
	Role        Role
	IsVerified  bool
	IsBanned    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// IsAdmin returns true if the user may use the back office.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// IsSuperAdmin returns true if the user may manage other admins.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsEmployer returns true if the user posts jobs.
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsCandidate returns true if the user applies to jobs.
func (u *User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

// DisplayLabel returns the user's display name or email if name is empty.
func (u *User) DisplayLabel() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Identity is the verified claim set handed over by the identity provider.
type Identity struct {
	Subject     string
	Email       string
	DisplayName string
	PhotoURL    string
	Verified    bool
}

// CandidateProfile is the optional profile a candidate fills in.
type CandidateProfile struct {
	FullName       string
	PhoneNumber    string
	Address        string
	ProfileSummary string
	City           string
	Country        string
	Birthday       *time.Time
}

// CompanyProfile is the public profile of an employer's company.
type CompanyProfile struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	WebsiteURL  string
	LogoURL     string
	Address     string
	City        string
	Country     string
	Description string
}

// Validate checks a profile submitted by its owner. Email and website are
// optional but must be well formed when given.
func (c CompanyProfile) Validate() error {
	const op = "company.validate"

	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError(op, "company_name", "Company name is required")
	}
	if c.Email != "" {
		if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
			return NewValidationError(op, "company_email", "Email address is not valid")
		}
	}
	if c.WebsiteURL != "" {
		u, err := url.Parse(c.WebsiteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return NewValidationError(op, "website_url", "Website must be an http or https URL")
		}
	}
	return nil
}

// CandidateSummary is a candidate row in the admin back office.
type CandidateSummary struct {
	User
	Profile    *CandidateProfile
	CurrentVIP *Entitlement
}

// EmployerSummary is an employer row in the admin back office.
type EmployerSummary struct {
	User
	Company    *CompanyProfile
	CurrentVIP *Entitlement
}

// CreateAdminParams contains the parameters for registering a system admin.
// The account itself is created at the identity provider; Subject is the
// provider's id for it.
type CreateAdminParams struct {
	Subject     string
	Email       string
	DisplayName string
}

// =============================================================================
// Conversion helpers from repository types
// =============================================================================

// NullStringValue safely extracts a string from sql.NullString.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullTimeValue safely extracts a time pointer from sql.NullTime.
func NullTimeValue(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

// NullInt32Value safely extracts an int32 pointer from sql.NullInt32.
func NullInt32Value(ni sql.NullInt32) *int32 {
	if ni.Valid {
		return &ni.Int32
	}
	return nil
}

// NullInt32Int safely extracts an int pointer from sql.NullInt32.
func NullInt32Int(ni sql.NullInt32) *int {
	if ni.Valid {
		v := int(ni.Int32)
		return &v
	}
	return nil
}

// NullInt64Value safely extracts an int64 pointer from sql.NullInt64.
func NullInt64Value(ni sql.NullInt64) *int64 {
	if ni.Valid {
		return &ni.Int64
	}
	return nil
}

// ToNullString converts a string to sql.NullString.
func ToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// ToNullTime converts a time pointer to sql.NullTime.
func ToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ToNullInt32 converts an int32 pointer to sql.NullInt32.
func ToNullInt32(v *int32) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: *v, Valid: true}
}

// ToNullInt64 converts an int64 pointer to sql.NullInt64.
func ToNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
