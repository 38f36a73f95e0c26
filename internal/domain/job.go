package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type JobType string

const (
	JobFullTime JobType = "Full-time"
	JobPartTime JobType = "Part-time"
	JobContract JobType = "Contract"
	JobRemote   JobType = "Remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobRemote:
		return true
	}
	return false
}

type Job struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CompanyID string `json:"company_id"`
	// CompanyName is copied from the Company at post time and deliberately
	// never resynced on rename.
	CompanyName     string    `json:"company_name"`
	Location        string    `json:"location"`
	Type            JobType   `json:"type"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements,omitempty"`
	SalaryRange     string    `json:"salary_range,omitempty"`
	PostedAt        time.Time `json:"posted_at"`
	IsActive        bool      `json:"is_active"`
	AuthorID        string    `json:"author_id"`
	Views           int64     `json:"views"`
	Clicks          int64     `json:"clicks"`
	ApplicantsCount int64     `json:"applicants_count"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// Fetch returns jobs newest-first.
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchActive(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchByCompanyID(ctx context.Context, companyID string) ([]Job, error)
	CountActiveByCompanyID(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, job *Job) error
	SetActive(ctx context.Context, id string, active bool) error
	IncrementViews(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// DescriptionGenerator is the optional AI collaborator. Implementations
// must degrade to a placeholder string instead of failing.
type DescriptionGenerator interface {
	GenerateJobDescription(ctx context.Context, title, company, location string) (string, error)
}

type JobCreate struct {
	Title        string   `json:"title" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         JobType  `json:"type" validate:"required,oneof=Full-time Part-time Contract Remote"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	SalaryRange  string   `json:"salary_range"`
}

type JobUsecase interface {
	// CreateJob re-validates the posting entitlement at write time even if
	// the caller already asked CanPostJob.
	CreateJob(ctx context.Context, userID string, input JobCreate) (*Job, error)
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListJobsByEmployer(ctx context.Context, userID string) ([]Job, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	SetJobActive(ctx context.Context, userID, id string, active bool) error
	DeleteJob(ctx context.Context, userID, id string) error
	RecordView(ctx context.Context, id string) error
	RecordClick(ctx context.Context, id string) error
	GenerateDescription(ctx context.Context, title, companyName, location string) (string, error)
}
