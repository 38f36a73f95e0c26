package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"
)

type talentUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
}

func NewTalentUsecase(userRepo domain.UserRepository, companyRepo domain.CompanyRepository) domain.TalentUsecase {
	return &talentUsecase{userRepo: userRepo, companyRepo: companyRepo}
}

// SearchCandidates is gated on the employer's talent access window; the
// check runs on every call against the live subscription record.
func (u *talentUsecase) SearchCandidates(ctx context.Context, employerUserID, query string) ([]domain.User, error) {
	employer, err := u.userRepo.GetByID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if employer.Role != domain.RoleEmployer || employer.CompanyID == nil {
		return nil, apperror.Forbidden("Only employers can search the talent pool")
	}

	company, err := u.companyRepo.GetByID(ctx, *employer.CompanyID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if ent := domain.CanAccessTalent(company, time.Now()); !ent.Allowed {
		return nil, apperror.Forbidden(ent.Reason)
	}

	candidates, err := u.userRepo.SearchCandidates(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}
