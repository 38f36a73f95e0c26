package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	generator   domain.DescriptionGenerator
	validate    *validator.Validate
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	userRepo domain.UserRepository,
	generator domain.DescriptionGenerator,
	validate *validator.Validate,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		generator:   generator,
		validate:    validate,
	}
}

// CreateJob re-checks the posting entitlement at write time, even when the
// caller already asked. The count is read and the row inserted without a
// transaction, matching the single-writer assumption of the store.
func (u *jobUsecase) CreateJob(ctx context.Context, userID string, input domain.JobCreate) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	user, company, err := u.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeJobs, err := u.jobRepo.CountActiveByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if ent := domain.CanPostJob(company, activeJobs); !ent.Allowed {
		return nil, apperror.Forbidden(ent.Reason)
	}

	job := &domain.Job{
		ID:        uuid.NewString(),
		Title:     input.Title,
		CompanyID: company.ID,
		// Snapshot; a later company rename does not touch existing jobs.
		CompanyName:  company.Name,
		Location:     input.Location,
		Type:         input.Type,
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		PostedAt:     time.Now(),
		IsActive:     true,
		AuthorID:     user.ID,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := pageWindow(page, pageSize)
	return u.jobRepo.Fetch(ctx, limit, offset)
}

func (u *jobUsecase) ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := pageWindow(page, pageSize)
	return u.jobRepo.FetchActive(ctx, limit, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string) ([]domain.Job, error) {
	_, company, err := u.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.jobRepo.FetchByCompanyID(ctx, company.ID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.ownedJob(ctx, userID, job.ID)
	if err != nil {
		return err
	}
	if !job.Type.Valid() {
		return apperror.BadRequest("Invalid job type")
	}
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	// Identity and counters are not client-editable.
	job.CompanyID = existing.CompanyID
	job.CompanyName = existing.CompanyName
	job.AuthorID = existing.AuthorID
	job.PostedAt = existing.PostedAt

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) SetJobActive(ctx context.Context, userID, id string, active bool) error {
	if _, err := u.ownedJob(ctx, userID, id); err != nil {
		return err
	}
	return u.jobRepo.SetActive(ctx, id, active)
}

// DeleteJob removes the posting only. Applications against it survive on
// their snapshots.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID, id string) error {
	if _, err := u.ownedJob(ctx, userID, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

func (u *jobUsecase) RecordView(ctx context.Context, id string) error {
	return u.jobRepo.IncrementViews(ctx, id)
}

func (u *jobUsecase) RecordClick(ctx context.Context, id string) error {
	return u.jobRepo.IncrementClicks(ctx, id)
}

func (u *jobUsecase) GenerateDescription(ctx context.Context, title, companyName, location string) (string, error) {
	return u.generator.GenerateJobDescription(ctx, title, companyName, location)
}

// employerCompany loads the calling employer and their company. Admins do
// not pass through here; ownership checks treat them separately.
func (u *jobUsecase) employerCompany(ctx context.Context, userID string) (*domain.User, *domain.Company, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("User not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	if user.Role != domain.RoleEmployer || user.CompanyID == nil {
		return nil, nil, apperror.Forbidden("Only employers can manage jobs")
	}

	company, err := u.companyRepo.GetByID(ctx, *user.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Company not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	return user, company, nil
}

// ownedJob returns the job if the caller may manage it: admins always,
// employers only for their own company's postings.
func (u *jobUsecase) ownedJob(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if role, _ := ctx.Value(domain.KeyUserRole).(string); role == string(domain.RoleAdmin) {
		return job, nil
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if user.CompanyID == nil || *user.CompanyID != job.CompanyID {
		return nil, apperror.Forbidden("You do not manage this job")
	}
	return job, nil
}

func pageWindow(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
