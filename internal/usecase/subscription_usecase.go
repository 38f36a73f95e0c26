package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"
)

type subscriptionUsecase struct {
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
}

func NewSubscriptionUsecase(companyRepo domain.CompanyRepository, jobRepo domain.JobRepository) domain.SubscriptionUsecase {
	return &subscriptionUsecase{companyRepo: companyRepo, jobRepo: jobRepo}
}

// CanPostJob recomputes the posting entitlement from the live company record
// and active-job count. Nothing is cached between calls.
func (u *subscriptionUsecase) CanPostJob(ctx context.Context, companyID string) (domain.Entitlement, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CanPostJob(nil, 0), nil
		}
		return domain.Entitlement{}, apperror.Internal(err)
	}

	activeJobs, err := u.jobRepo.CountActiveByCompanyID(ctx, companyID)
	if err != nil {
		return domain.Entitlement{}, apperror.Internal(err)
	}
	return domain.CanPostJob(company, activeJobs), nil
}

func (u *subscriptionUsecase) CanAccessTalent(ctx context.Context, companyID string) (domain.Entitlement, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CanAccessTalent(nil, time.Now()), nil
		}
		return domain.Entitlement{}, apperror.Internal(err)
	}
	return domain.CanAccessTalent(company, time.Now()), nil
}

// Upgrade replaces the company's subscription wholesale with a fresh record
// for the target tier. No proration and no transition rules; downgrading
// below the current active job count just blocks further posts.
func (u *subscriptionUsecase) Upgrade(ctx context.Context, companyID string, tier domain.PlanTier) (*domain.Company, error) {
	plan, ok := domain.PlanFor(tier)
	if !ok {
		return nil, apperror.BadRequest("Unknown plan")
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	renewsAt := now.AddDate(0, 0, 30)
	sub := domain.SubscriptionDetails{
		PlanID:     tier,
		Status:     domain.SubscriptionActive,
		StartDate:  now,
		RenewsAt:   &renewsAt,
		JobCredits: plan.JobLimit,
	}
	if plan.TalentAccessDays != domain.Unlimited {
		expiry := now.AddDate(0, 0, plan.TalentAccessDays)
		sub.TalentAccessExpiresAt = &expiry
	}

	if err := u.companyRepo.UpdateSubscription(ctx, companyID, sub); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	company.Subscription = sub
	return company, nil
}

func (u *subscriptionUsecase) ListPlans(ctx context.Context) []domain.Plan {
	return domain.AllPlans()
}
