package domain

import (
	"context"
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleEmployer  UserRole = "EMPLOYER"
	RoleCandidate UserRole = "CANDIDATE"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleCandidate:
		return true
	}
	return false
}

type EmployerSubRole string

const (
	SubRoleOwner         EmployerSubRole = "OWNER"
	SubRoleRecruiter     EmployerSubRole = "RECRUITER"
	SubRoleHiringManager EmployerSubRole = "HIRING_MANAGER"
)

// Experience is one entry of a candidate's work history, kept sorted by
// StartDate descending.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type SavedJob struct {
	JobID   string    `json:"job_id"`
	SavedAt time.Time `json:"saved_at"`
}

type AlertFrequency string

const (
	AlertDaily   AlertFrequency = "daily"
	AlertWeekly  AlertFrequency = "weekly"
	AlertInstant AlertFrequency = "instant"
)

type JobAlert struct {
	ID        string         `json:"id"`
	Query     string         `json:"query" validate:"required"`
	Frequency AlertFrequency `json:"frequency" validate:"required,oneof=daily weekly instant"`
	Active    bool           `json:"active"`
}

type Preferences struct {
	IsOpenToWork             bool `json:"is_open_to_work"`
	RemoteOnly               bool `json:"remote_only"`
	HideProfileFromEmployers bool `json:"hide_profile_from_employers"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Employer fields (set iff Role == RoleEmployer)
	CompanyID       *string          `json:"company_id,omitempty"`
	EmployerSubRole *EmployerSubRole `json:"employer_sub_role,omitempty"`

	// Candidate fields
	Bio         string       `json:"bio,omitempty"`
	Title       string       `json:"title,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	SavedJobs   []SavedJob   `json:"saved_jobs,omitempty"`
	Alerts      []JobAlert   `json:"alerts,omitempty"`
	Preferences Preferences  `json:"preferences"`
}

// HasSavedJob reports whether jobID is in the user's saved set.
func (u *User) HasSavedJob(jobID string) bool {
	for _, s := range u.SavedJobs {
		if s.JobID == jobID {
			return true
		}
	}
	return false
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]User, error)
	// SearchCandidates returns candidates open to work; an empty query
	// returns all of them, otherwise matches name, title, or any skill
	// case-insensitively.
	SearchCandidates(ctx context.Context, query string) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// AuthResult is returned on successful login or signup.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type CandidateSignup struct {
	Name     string `json:"name" validate:"required,valid_name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio"`
}

type EmployerSignup struct {
	Name        string `json:"name" validate:"required,valid_name"`
	CompanyName string `json:"company_name" validate:"required,valid_name"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RegisterCandidate(ctx context.Context, input CandidateSignup) (*AuthResult, error)
	RegisterEmployer(ctx context.Context, input EmployerSignup) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

// ProfileUpdate carries the candidate-editable subset of a User.
type ProfileUpdate struct {
	Name   string   `json:"name" validate:"required,valid_name"`
	Title  string   `json:"title" validate:"max=100,no_emoji"`
	Bio    string   `json:"bio" validate:"max=1000,no_emoji"`
	Skills []string `json:"skills"`
}

type CandidateUsecase interface {
	ToggleSavedJob(ctx context.Context, userID, jobID string) (*User, error)
	AddExperience(ctx context.Context, userID string, exp Experience) (*User, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*User, error)
	AddAlert(ctx context.Context, userID string, alert JobAlert) (*User, error)
	RemoveAlert(ctx context.Context, userID, alertID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdate) (*User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs Preferences) (*User, error)
}

// TalentUsecase is the employer-facing talent pool search, gated by the
// company's talent access window.
type TalentUsecase interface {
	SearchCandidates(ctx context.Context, employerUserID, query string) ([]User, error)
}
