package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo, jobRepo: jobRepo, userRepo: userRepo}
}

// ApplyToJob creates the application with candidate and job details copied
// in, so the record outlives both referenced rows. One application per
// (user, job) pair; a withdrawn one still blocks a re-apply.
func (u *applicationUsecase) ApplyToJob(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != string(domain.RoleCandidate) {
		return nil, apperror.Forbidden("Only candidates can apply to jobs")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.appRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		ID:             uuid.NewString(),
		JobID:          jobID,
		UserID:         userID,
		Status:         domain.StatusApplied,
		AppliedAt:      time.Now(),
		CandidateName:  user.Name,
		CandidateEmail: user.Email,
		JobTitle:       job.Title,
		CompanyName:    job.CompanyName,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return u.appRepo.GetByUserID(ctx, userID)
}

func (u *applicationUsecase) GetEmployerApplications(ctx context.Context, employerUserID string) ([]domain.Application, error) {
	companyID, err := u.employerCompanyID(ctx, employerUserID)
	if err != nil {
		return nil, err
	}
	return u.appRepo.GetByCompanyID(ctx, companyID)
}

// UpdateStatus accepts any valid status; there is no transition table, an
// employer may move an application straight from APPLIED to OFFER.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, employerUserID, applicationID string, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return apperror.BadRequest("Invalid application status")
	}
	if _, err := u.companyApplication(ctx, employerUserID, applicationID); err != nil {
		return err
	}
	return u.appRepo.UpdateStatus(ctx, applicationID, status)
}

func (u *applicationUsecase) Withdraw(ctx context.Context, userID, applicationID string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	if app.UserID != userID {
		return apperror.Forbidden("This application is not yours")
	}
	return u.appRepo.UpdateStatus(ctx, applicationID, domain.StatusWithdrawn)
}

func (u *applicationUsecase) SetEmployerNotes(ctx context.Context, employerUserID, applicationID, notes string, rating int) error {
	// Zero clears the rating; anything else must be a star value.
	if rating != 0 && (rating < 1 || rating > 5) {
		return apperror.BadRequest("Rating must be between 1 and 5, or 0 to clear it")
	}
	app, err := u.companyApplication(ctx, employerUserID, applicationID)
	if err != nil {
		return err
	}
	app.InternalNotes = notes
	app.Rating = rating
	return u.appRepo.Update(ctx, app)
}

func (u *applicationUsecase) SetCandidateNotes(ctx context.Context, userID, applicationID, notes string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	if app.UserID != userID {
		return apperror.Forbidden("This application is not yours")
	}
	app.CandidateNotes = notes
	return u.appRepo.Update(ctx, app)
}

func (u *applicationUsecase) employerCompanyID(ctx context.Context, userID string) (string, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", apperror.Internal(err)
	}
	if user.Role != domain.RoleEmployer || user.CompanyID == nil {
		return "", apperror.Forbidden("Only employers can manage applications")
	}
	return *user.CompanyID, nil
}

// companyApplication returns the application if it targets one of the
// employer's company jobs. The check goes through the live job row, so an
// application to a deleted job is no longer employer-editable.
func (u *applicationUsecase) companyApplication(ctx context.Context, employerUserID, applicationID string) (*domain.Application, error) {
	companyID, err := u.employerCompanyID(ctx, employerUserID)
	if err != nil {
		return nil, err
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.CompanyID != companyID {
		return nil, apperror.Forbidden("This application does not belong to your company")
	}
	return app, nil
}
