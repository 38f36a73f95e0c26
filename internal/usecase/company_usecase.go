package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo, userRepo: userRepo, validate: validate}
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// UpdateCompany edits the public profile. A rename here does not rewrite the
// company name stamped on existing jobs or applications.
func (u *companyUsecase) UpdateCompany(ctx context.Context, userID, companyID string, input domain.CompanyUpdate) (*domain.Company, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if user.Role != domain.RoleAdmin {
		if user.CompanyID == nil || *user.CompanyID != companyID {
			return nil, apperror.Forbidden("You do not manage this company")
		}
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	company.Name = input.Name
	company.Description = input.Description
	company.Website = input.Website
	company.Location = input.Location
	company.Size = input.Size
	company.Industry = input.Industry
	company.TechStack = input.TechStack
	company.RevOpsStructure = input.RevOpsStructure
	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) GetTeamMembers(ctx context.Context, companyID string) ([]domain.User, error) {
	members, err := u.userRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return members, nil
}
