package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	jobRepo   domain.JobRepository
	validate  *validator.Validate
}

func NewAdminUsecase(
	adminRepo domain.AdminRepository,
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	validate *validator.Validate,
) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, userRepo: userRepo, jobRepo: jobRepo, validate: validate}
}

func requireAdmin(ctx context.Context) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != string(domain.RoleAdmin) {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (u *adminUsecase) CreateUser(ctx context.Context, input domain.AdminUserInput) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}
	if !input.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}

	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperror.Conflict("An account with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateUser patches the editable fields onto the stored record. The hash,
// company link, and candidate documents must survive an admin rename.
func (u *adminUsecase) UpdateUser(ctx context.Context, userID string, input domain.AdminUserUpdate) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}
	if !input.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.IsActive = input.IsActive
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// SetUserActive flips suspension. A suspended employer's company and jobs
// are left untouched; only the login gate changes.
func (u *adminUsecase) SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// DeleteUser hard-deletes the account. Their applications keep the
// candidate snapshots and are never removed here.
func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) DeleteJob(ctx context.Context, jobID string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
