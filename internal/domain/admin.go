package domain

import "context"

// AdminStats are the super-admin dashboard counters.
type AdminStats struct {
	TotalUsers        int64       `json:"total_users"`
	UsersByRole       UsersByRole `json:"users_by_role"`
	TotalCompanies    int64       `json:"total_companies"`
	TotalJobs         int64       `json:"total_jobs"`
	ActiveJobs        int64       `json:"active_jobs"`
	TotalApplications int64       `json:"total_applications"`
}

type UsersByRole struct {
	Admin     int64 `json:"admin"`
	Employer  int64 `json:"employer"`
	Candidate int64 `json:"candidate"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminUserInput struct {
	Name     string   `json:"name" validate:"required,valid_name"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     UserRole `json:"role" validate:"required"`
}

// AdminUserUpdate carries the admin-editable subset of a User. Everything
// else (credentials, company link, candidate documents) is merged from the
// stored record, never overwritten.
type AdminUserUpdate struct {
	Name     string   `json:"name" validate:"required,valid_name"`
	Email    string   `json:"email" validate:"required,email"`
	Role     UserRole `json:"role" validate:"required"`
	IsActive bool     `json:"is_active"`
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, input AdminUserInput) (*User, error)
	UpdateUser(ctx context.Context, userID string, input AdminUserUpdate) (*User, error)
	// SetUserActive suspends or reinstates an account.
	SetUserActive(ctx context.Context, userID string, active bool) (*User, error)
	// DeleteUser hard-deletes; applications keep their snapshots.
	DeleteUser(ctx context.Context, userID string) error
	DeleteJob(ctx context.Context, jobID string) error
}
