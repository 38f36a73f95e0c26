package domain

import (
	"context"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// SubscriptionDetails is the single active subscription embedded in a
// Company. Upgrading replaces it wholesale; it is not versioned.
type SubscriptionDetails struct {
	PlanID    PlanTier           `json:"plan_id"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	RenewsAt  *time.Time         `json:"renews_at,omitempty"`
	// JobCredits is the max number of simultaneously active postings;
	// -1 means unlimited.
	JobCredits int `json:"job_credits"`
	// TalentAccessExpiresAt unset means unlimited talent pool access.
	TalentAccessExpiresAt *time.Time `json:"talent_access_expires_at,omitempty"`
}

type Company struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Website         string              `json:"website,omitempty"`
	Logo            string              `json:"logo,omitempty"`
	Location        string              `json:"location,omitempty"`
	Size            string              `json:"size,omitempty"`
	Industry        string              `json:"industry,omitempty"`
	TechStack       []string            `json:"tech_stack,omitempty"`
	RevOpsStructure string              `json:"revops_structure,omitempty"`
	OwnerID         string              `json:"owner_id"`
	Subscription    SubscriptionDetails `json:"subscription"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	// UpdateSubscription replaces the embedded subscription record.
	UpdateSubscription(ctx context.Context, companyID string, sub SubscriptionDetails) error
}

type CompanyUpdate struct {
	Name            string   `json:"name" validate:"required,valid_name"`
	Description     string   `json:"description"`
	Website         string   `json:"website" validate:"omitempty,url"`
	Location        string   `json:"location"`
	Size            string   `json:"size"`
	Industry        string   `json:"industry"`
	TechStack       []string `json:"tech_stack"`
	RevOpsStructure string   `json:"revops_structure"`
}

type CompanyUsecase interface {
	GetCompany(ctx context.Context, id string) (*Company, error)
	// UpdateCompany renames/edits the company profile. Existing jobs keep
	// the company name they were posted under.
	UpdateCompany(ctx context.Context, userID, companyID string, input CompanyUpdate) (*Company, error)
	GetTeamMembers(ctx context.Context, companyID string) ([]User, error)
}
