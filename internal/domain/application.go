package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusReviewing ApplicationStatus = "REVIEWING"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application is a candidate's claim against a job. The candidate and job
// fields are point-in-time snapshots so the record stays displayable after
// the referenced Job or User is deleted.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	UserID    string            `json:"user_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`

	// Employer-private
	InternalNotes string `json:"internal_notes,omitempty"`
	Rating        int    `json:"rating,omitempty"` // 1-5

	// Candidate-private
	CandidateNotes string `json:"candidate_notes,omitempty"`

	// Snapshots captured at creation
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	// GetByCompanyID joins applications to the company's current jobs.
	GetByCompanyID(ctx context.Context, companyID string) ([]Application, error)
	// CheckExists reports any application for the pair, regardless of
	// status — a WITHDRAWN record still counts.
	CheckExists(ctx context.Context, jobID, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
	Update(ctx context.Context, app *Application) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, userID, jobID string) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)
	GetEmployerApplications(ctx context.Context, employerUserID string) ([]Application, error)
	// UpdateStatus is free-form within the status enum; there is no
	// transition table.
	UpdateStatus(ctx context.Context, employerUserID, applicationID string, status ApplicationStatus) error
	Withdraw(ctx context.Context, userID, applicationID string) error
	SetEmployerNotes(ctx context.Context, employerUserID, applicationID, notes string, rating int) error
	SetCandidateNotes(ctx context.Context, userID, applicationID, notes string) error
}
