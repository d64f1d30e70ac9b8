package service

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// toNullString converts a trimmed string to sql.NullString, empty as NULL.
func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// fromNullString converts sql.NullString to a string.
func fromNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// fromNullUUID converts uuid.NullUUID to *uuid.UUID.
func fromNullUUID(nu uuid.NullUUID) *uuid.UUID {
	if nu.Valid {
		return &nu.UUID
	}
	return nil
}

// repoUserToDomain converts a repository.User to domain.User.
func repoUserToDomain(u repository.User) *domain.User {
	role := domain.RoleNone
	if u.RoleID.Valid {
		role = domain.Role(u.RoleID.Int16)
	}

	return &domain.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: fromNullString(u.DisplayName),
		PhotoURL:    fromNullString(u.PhotoUrl),
		Role:        role,
		IsVerified:  u.IsVerified,
		IsBanned:    u.IsBanned,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: domain.NullTimeValue(u.LastLoginAt),
	}
}

// roleToNull converts a role to its stored form; RoleNone is NULL.
func roleToNull(r domain.Role) sql.NullInt16 {
	if r == domain.RoleNone {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: int16(r), Valid: true}
}

// repoCompanyToDomain converts a repository.Company to the public profile.
func repoCompanyToDomain(c repository.Company) *domain.CompanyProfile {
	return &domain.CompanyProfile{
		ID:          c.ID,
		Name:        c.CompanyName,
		Email:       fromNullString(c.CompanyEmail),
		Phone:       fromNullString(c.CompanyPhone),
		WebsiteURL:  fromNullString(c.WebsiteUrl),
		LogoURL:     fromNullString(c.LogoUrl),
		Address:     fromNullString(c.Address),
		City:        fromNullString(c.City),
		Country:     fromNullString(c.Country),
		Description: fromNullString(c.CompanyDescription),
	}
}

// repoJobToDomain converts a bare job row.
func repoJobToDomain(j repository.Job) domain.Job {
	return domain.Job{
		ID:               j.ID,
		CompanyID:        j.CompanyID,
		CategoryID:       domain.NullInt32Value(j.CategoryID),
		SpecializationID: domain.NullInt32Value(j.SpecializationID),
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     fromNullString(j.Requirements),
		SalaryMin:        domain.NullInt64Value(j.SalaryMin),
		SalaryMax:        domain.NullInt64Value(j.SalaryMax),
		Location:         fromNullString(j.Location),
		JobType:          fromNullString(j.JobType),
		Experience:       fromNullString(j.Experience),
		Status:           domain.JobStatus(j.Status),
		CreatedAt:        j.CreatedAt,
		ExpiresAt:        j.ExpiresAt,
		ApprovedAt:       domain.NullTimeValue(j.ApprovedAt),
		LastPushedAt:     domain.NullTimeValue(j.LastPushedAt),
	}
}

// repoJobListingToDomain converts a joined listing row. The other listing
// row types share its layout and convert to it directly.
func repoJobListingToDomain(r repository.GetJobDetailRow) domain.Job {
	job := repoJobToDomain(repository.Job{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		CategoryID:       r.CategoryID,
		SpecializationID: r.SpecializationID,
		Title:            r.Title,
		Description:      r.Description,
		Requirements:     r.Requirements,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		Location:         r.Location,
		JobType:          r.JobType,
		Experience:       r.Experience,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
		ExpiresAt:        r.ExpiresAt,
		ApprovedAt:       r.ApprovedAt,
		LastPushedAt:     r.LastPushedAt,
	})
	job.CompanyName = r.CompanyName
	job.CategoryName = fromNullString(r.CategoryName)
	job.SpecializationName = fromNullString(r.SpecializationName)
	job.OwnerEmail = r.OwnerEmail
	job.OwnerDisplayName = fromNullString(r.OwnerDisplayName)
	return job
}
