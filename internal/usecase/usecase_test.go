package usecase_test

import (
	"context"
	"testing"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/internal/usecase"
	"hirerevops-backend/pkg/apperror"
	"hirerevops-backend/pkg/auth"
	"hirerevops-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// newValidator mirrors the wiring in main: the custom tags must be
// registered or validate.Struct panics on them.
func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Mock repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) SearchCandidates(ctx context.Context, query string) ([]domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) List(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) UpdateSubscription(ctx context.Context, companyID string, sub domain.SubscriptionDetails) error {
	return m.Called(ctx, companyID, sub).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) CountActiveByCompanyID(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockJobRepo) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) IncrementClicks(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCompanyID(ctx context.Context, companyID string) ([]domain.Application, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}
func (m *MockSessionRepo) GetUserID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}
func (m *MockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type stubGenerator struct{}

func (stubGenerator) GenerateJobDescription(ctx context.Context, title, company, location string) (string, error) {
	return "generated", nil
}

// Fixtures

func employerCompany(tier domain.PlanTier, credits int) *domain.Company {
	return &domain.Company{
		ID:      "comp-1",
		Name:    "Acme RevOps",
		OwnerID: "emp-1",
		Subscription: domain.SubscriptionDetails{
			PlanID:     tier,
			Status:     domain.SubscriptionActive,
			StartDate:  time.Now().AddDate(0, -1, 0),
			JobCredits: credits,
		},
	}
}

func employerUser() *domain.User {
	companyID := "comp-1"
	subRole := domain.SubRoleOwner
	return &domain.User{
		ID:              "emp-1",
		Name:            "Erin Employer",
		Email:           "erin@acme.test",
		Role:            domain.RoleEmployer,
		IsActive:        true,
		CompanyID:       &companyID,
		EmployerSubRole: &subRole,
	}
}

func candidateUser() *domain.User {
	return &domain.User{
		ID:       "cand-1",
		Name:     "Casey Candidate",
		Email:    "casey@mail.test",
		Role:     domain.RoleCandidate,
		IsActive: true,
	}
}

func candidateCtx() context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "cand-1")
	return context.WithValue(ctx, domain.KeyUserRole, string(domain.RoleCandidate))
}

func employerCtx() context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "emp-1")
	return context.WithValue(ctx, domain.KeyUserRole, string(domain.RoleEmployer))
}

// Subscription lifecycle

func TestUpgradeReplacesSubscription(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewSubscriptionUsecase(companyRepo, jobRepo)
	ctx := context.Background()

	t.Run("FREE to LITE sets credits and talent window", func(t *testing.T) {
		companyRepo.On("GetByID", ctx, "comp-1").Return(employerCompany(domain.PlanFree, 1), nil).Once()

		var captured domain.SubscriptionDetails
		companyRepo.On("UpdateSubscription", ctx, "comp-1", mock.AnythingOfType("domain.SubscriptionDetails")).
			Return(nil).
			Run(func(args mock.Arguments) { captured = args.Get(2).(domain.SubscriptionDetails) }).
			Once()

		before := time.Now()
		company, err := uc.Upgrade(ctx, "comp-1", domain.PlanLite)
		assert.NoError(t, err)

		assert.Equal(t, domain.PlanLite, captured.PlanID)
		assert.Equal(t, domain.SubscriptionActive, captured.Status)
		assert.Equal(t, 3, captured.JobCredits)
		if assert.NotNil(t, captured.RenewsAt) {
			assert.WithinDuration(t, before.AddDate(0, 0, 30), *captured.RenewsAt, time.Minute)
		}
		if assert.NotNil(t, captured.TalentAccessExpiresAt) {
			assert.WithinDuration(t, before.AddDate(0, 0, 30), *captured.TalentAccessExpiresAt, time.Minute)
		}
		assert.Equal(t, captured, company.Subscription)
	})

	t.Run("PROFESSIONAL clears the talent expiry", func(t *testing.T) {
		companyRepo.On("GetByID", ctx, "comp-1").Return(employerCompany(domain.PlanLite, 3), nil).Once()

		var captured domain.SubscriptionDetails
		companyRepo.On("UpdateSubscription", ctx, "comp-1", mock.AnythingOfType("domain.SubscriptionDetails")).
			Return(nil).
			Run(func(args mock.Arguments) { captured = args.Get(2).(domain.SubscriptionDetails) }).
			Once()

		_, err := uc.Upgrade(ctx, "comp-1", domain.PlanProfessional)
		assert.NoError(t, err)
		assert.Equal(t, 10, captured.JobCredits)
		assert.Nil(t, captured.TalentAccessExpiresAt)
		assert.NotNil(t, captured.RenewsAt)
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		_, err := uc.Upgrade(ctx, "comp-1", domain.PlanTier("GOLD"))
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("missing company rejected", func(t *testing.T) {
		companyRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Upgrade(ctx, "ghost", domain.PlanLite)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestCanPostJobUsecase(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewSubscriptionUsecase(companyRepo, jobRepo)
	ctx := context.Background()

	t.Run("denial is a result, not an error", func(t *testing.T) {
		companyRepo.On("GetByID", ctx, "comp-1").Return(employerCompany(domain.PlanFree, 1), nil).Once()
		jobRepo.On("CountActiveByCompanyID", ctx, "comp-1").Return(1, nil).Once()

		ent, err := uc.CanPostJob(ctx, "comp-1")
		assert.NoError(t, err)
		assert.False(t, ent.Allowed)
		assert.Equal(t, "Plan limit reached (1/1). Upgrade for more.", ent.Reason)
	})

	t.Run("unknown company denies without erroring", func(t *testing.T) {
		companyRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		ent, err := uc.CanPostJob(ctx, "ghost")
		assert.NoError(t, err)
		assert.False(t, ent.Allowed)
		assert.Equal(t, "Company not found", ent.Reason)
	})
}

// Job posting

func TestCreateJobEnforcesEntitlement(t *testing.T) {
	validate := newValidator()
	input := domain.JobCreate{
		Title:       "RevOps Engineer",
		Location:    "Remote",
		Type:        domain.JobRemote,
		Description: "Own the pipeline.",
	}

	t.Run("blocked at the plan limit", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, stubGenerator{}, validate)
		ctx := employerCtx()

		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil)
		companyRepo.On("GetByID", ctx, "comp-1").Return(employerCompany(domain.PlanFree, 1), nil)
		jobRepo.On("CountActiveByCompanyID", ctx, "comp-1").Return(1, nil)

		_, err := uc.CreateJob(ctx, "emp-1", input)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Equal(t, "Plan limit reached (1/1). Upgrade for more.", appErr.Message)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("snapshot of the company name at post time", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, stubGenerator{}, validate)
		ctx := employerCtx()

		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil)
		companyRepo.On("GetByID", ctx, "comp-1").Return(employerCompany(domain.PlanLite, 3), nil)
		jobRepo.On("CountActiveByCompanyID", ctx, "comp-1").Return(1, nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateJob(ctx, "emp-1", input)
		assert.NoError(t, err)
		assert.Equal(t, "Acme RevOps", job.CompanyName)
		assert.Equal(t, "comp-1", job.CompanyID)
		assert.True(t, job.IsActive)
		assert.Zero(t, job.Views)
		assert.Zero(t, job.Clicks)
		assert.NotEmpty(t, job.ID)
	})

	t.Run("candidates cannot post", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, stubGenerator{}, validate)
		ctx := candidateCtx()

		userRepo.On("GetByID", ctx, "cand-1").Return(candidateUser(), nil)

		_, err := uc.CreateJob(ctx, "cand-1", input)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

// Applications

func TestApplyToJob(t *testing.T) {
	job := &domain.Job{
		ID:          "job-1",
		Title:       "RevOps Engineer",
		CompanyID:   "comp-1",
		CompanyName: "Acme RevOps",
		IsActive:    true,
	}

	t.Run("snapshots candidate and job details", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
		ctx := candidateCtx()

		userRepo.On("GetByID", ctx, "cand-1").Return(candidateUser(), nil)
		jobRepo.On("GetByID", ctx, "job-1").Return(job, nil)
		appRepo.On("CheckExists", ctx, "job-1", "cand-1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.ApplyToJob(ctx, "cand-1", "job-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApplied, app.Status)
		assert.Equal(t, "Casey Candidate", app.CandidateName)
		assert.Equal(t, "casey@mail.test", app.CandidateEmail)
		assert.Equal(t, "RevOps Engineer", app.JobTitle)
		assert.Equal(t, "Acme RevOps", app.CompanyName)
	})

	t.Run("duplicate application conflicts even when withdrawn", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
		ctx := candidateCtx()

		userRepo.On("GetByID", ctx, "cand-1").Return(candidateUser(), nil)
		jobRepo.On("GetByID", ctx, "job-1").Return(job, nil)
		appRepo.On("CheckExists", ctx, "job-1", "cand-1").Return(true, nil)

		_, err := uc.ApplyToJob(ctx, "cand-1", "job-1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("employers cannot apply", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
		ctx := employerCtx()

		_, err := uc.ApplyToJob(ctx, "emp-1", "job-1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestWithdraw(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
	ctx := candidateCtx()

	app := &domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1", Status: domain.StatusInterview}

	t.Run("owner can withdraw from any status", func(t *testing.T) {
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil).Once()
		appRepo.On("UpdateStatus", ctx, "app-1", domain.StatusWithdrawn).Return(nil).Once()

		assert.NoError(t, uc.Withdraw(ctx, "cand-1", "app-1"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil).Once()

		err := uc.Withdraw(ctx, "someone-else", "app-1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestUpdateStatusOwnership(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)
	ctx := employerCtx()

	app := &domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1", Status: domain.StatusApplied}

	t.Run("free-form transition within the enum", func(t *testing.T) {
		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil).Once()
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", CompanyID: "comp-1"}, nil).Once()
		appRepo.On("UpdateStatus", ctx, "app-1", domain.StatusOffer).Return(nil).Once()

		assert.NoError(t, uc.UpdateStatus(ctx, "emp-1", "app-1", domain.StatusOffer))
	})

	t.Run("another company's application is off limits", func(t *testing.T) {
		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil).Once()
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", CompanyID: "other-co"}, nil).Once()

		err := uc.UpdateStatus(ctx, "emp-1", "app-1", domain.StatusRejected)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		err := uc.UpdateStatus(ctx, "emp-1", "app-1", domain.ApplicationStatus("GHOSTED"))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

// Candidate profile

func TestToggleSavedJobIsSelfInverse(t *testing.T) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewCandidateUsecase(userRepo, jobRepo, newValidator())
	ctx := candidateCtx()

	user := candidateUser()
	userRepo.On("GetByID", ctx, "cand-1").Return(user, nil)
	jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	after, err := uc.ToggleSavedJob(ctx, "cand-1", "job-1")
	assert.NoError(t, err)
	assert.True(t, after.HasSavedJob("job-1"))

	after, err = uc.ToggleSavedJob(ctx, "cand-1", "job-1")
	assert.NoError(t, err)
	assert.False(t, after.HasSavedJob("job-1"))
}

func TestAddExperienceSortsNewestFirst(t *testing.T) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewCandidateUsecase(userRepo, jobRepo, newValidator())
	ctx := candidateCtx()

	user := candidateUser()
	user.Experience = []domain.Experience{
		{ID: "old", Title: "Analyst", Company: "OldCo", StartDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	userRepo.On("GetByID", ctx, "cand-1").Return(user, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	after, err := uc.AddExperience(ctx, "cand-1", domain.Experience{
		Title:     "Lead",
		Company:   "NewCo",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Len(t, after.Experience, 2)
	assert.Equal(t, "Lead", after.Experience[0].Title)
	assert.Equal(t, "Analyst", after.Experience[1].Title)
	assert.NotEmpty(t, after.Experience[0].ID)
}

// Talent pool

func TestTalentSearchGatedByAccessWindow(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewTalentUsecase(userRepo, companyRepo)
	ctx := employerCtx()

	t.Run("expired window is denied", func(t *testing.T) {
		expired := employerCompany(domain.PlanFree, 1)
		past := time.Now().Add(-time.Hour)
		expired.Subscription.TalentAccessExpiresAt = &past

		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
		companyRepo.On("GetByID", ctx, "comp-1").Return(expired, nil).Once()

		_, err := uc.SearchCandidates(ctx, "emp-1", "go")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Equal(t, "Talent Pool access has expired.", appErr.Message)
	})

	t.Run("open window searches", func(t *testing.T) {
		open := employerCompany(domain.PlanProfessional, 10)

		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
		companyRepo.On("GetByID", ctx, "comp-1").Return(open, nil).Once()
		userRepo.On("SearchCandidates", ctx, "go").Return([]domain.User{*candidateUser()}, nil).Once()

		results, err := uc.SearchCandidates(ctx, "emp-1", "go")
		assert.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("candidates cannot search", func(t *testing.T) {
		userRepo.On("GetByID", ctx, "cand-1").Return(candidateUser(), nil).Once()

		_, err := uc.SearchCandidates(ctx, "cand-1", "")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

// Auth

func TestLogin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 0)
	validate := newValidator()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	ctx := context.Background()

	newUC := func(userRepo *MockUserRepo, sessionRepo *MockSessionRepo) domain.AuthUsecase {
		return usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), sessionRepo, tokens, validate)
	}

	t.Run("unknown email and wrong password share a message", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		uc := newUC(userRepo, sessionRepo)

		userRepo.On("GetByEmail", ctx, "ghost@mail.test").Return(nil, domain.ErrNotFound).Once()
		_, err1 := uc.Login(ctx, "ghost@mail.test", "whatever")

		known := candidateUser()
		known.PasswordHash = string(hash)
		userRepo.On("GetByEmail", ctx, "casey@mail.test").Return(known, nil).Once()
		_, err2 := uc.Login(ctx, "casey@mail.test", "wrongpass")

		assert.EqualError(t, err1, "Invalid email or password")
		assert.EqualError(t, err2, "Invalid email or password")
	})

	t.Run("suspended accounts get a distinct denial and no session", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		uc := newUC(userRepo, sessionRepo)

		suspended := candidateUser()
		suspended.PasswordHash = string(hash)
		suspended.IsActive = false
		userRepo.On("GetByEmail", ctx, "casey@mail.test").Return(suspended, nil).Once()

		_, err := uc.Login(ctx, "casey@mail.test", "hunter22")
		assert.EqualError(t, err, "Your account has been suspended. Please contact support.")
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success issues a revocable token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		uc := newUC(userRepo, sessionRepo)

		known := candidateUser()
		known.PasswordHash = string(hash)
		userRepo.On("GetByEmail", ctx, "casey@mail.test").Return(known, nil).Once()

		var sessionID string
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).
			Return(nil).
			Run(func(args mock.Arguments) { sessionID = args.Get(1).(*domain.Session).ID }).
			Once()

		result, err := uc.Login(ctx, "casey@mail.test", "hunter22")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)

		claims, err := tokens.Parse(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "cand-1", claims.Subject)
		assert.Equal(t, sessionID, claims.SessionID)
	})
}

func TestRegisterEmployerSeedsFreeSubscription(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	sessionRepo := new(MockSessionRepo)
	tokens := auth.NewTokenManager("test-secret", 0)
	uc := usecase.NewAuthUsecase(userRepo, companyRepo, sessionRepo, tokens, newValidator())
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "erin@acme.test").Return(nil, domain.ErrNotFound)

	var company *domain.Company
	companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).
		Return(nil).
		Run(func(args mock.Arguments) { company = args.Get(1).(*domain.Company) })

	var user *domain.User
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(nil).
		Run(func(args mock.Arguments) { user = args.Get(1).(*domain.User) })

	sessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil)

	before := time.Now()
	result, err := uc.RegisterEmployer(ctx, domain.EmployerSignup{
		Name:        "Erin Employer",
		CompanyName: "Acme RevOps",
		Email:       "erin@acme.test",
		Password:    "hunter22",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	assert.Equal(t, domain.PlanFree, company.Subscription.PlanID)
	assert.Equal(t, 1, company.Subscription.JobCredits)
	assert.Nil(t, company.Subscription.RenewsAt)
	if assert.NotNil(t, company.Subscription.TalentAccessExpiresAt) {
		assert.WithinDuration(t, before.AddDate(0, 0, 7), *company.Subscription.TalentAccessExpiresAt, time.Minute)
	}

	assert.Equal(t, domain.RoleEmployer, user.Role)
	if assert.NotNil(t, user.CompanyID) {
		assert.Equal(t, company.ID, *user.CompanyID)
	}
	if assert.NotNil(t, user.EmployerSubRole) {
		assert.Equal(t, domain.SubRoleOwner, *user.EmployerSubRole)
	}
	assert.NotEqual(t, "hunter22", user.PasswordHash)
}

// Admin

func TestAdminGateFailsSafe(t *testing.T) {
	uc := usecase.NewAdminUsecase(nil, new(MockUserRepo), new(MockJobRepo), newValidator())

	t.Run("non-admin role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, string(domain.RoleEmployer))
		_, err := uc.ListUsers(ctx)
		assert.EqualError(t, err, "Admin access required")
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := uc.ListUsers(context.Background())
		assert.EqualError(t, err, "Admin access required")
	})
}

func TestAdminUpdateUserMergesIntoStoredRecord(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyUserRole, string(domain.RoleAdmin))

	t.Run("rename keeps credentials and links", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(nil, userRepo, new(MockJobRepo), newValidator())

		stored := employerUser()
		stored.PasswordHash = "$2a$10$stored-hash"
		userRepo.On("GetByID", ctx, "emp-1").Return(stored, nil).Once()

		var captured *domain.User
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*domain.User) }).
			Once()

		updated, err := uc.UpdateUser(ctx, "emp-1", domain.AdminUserUpdate{
			Name:     "Erin Renamed",
			Email:    "erin@acme.test",
			Role:     domain.RoleEmployer,
			IsActive: true,
		})
		assert.NoError(t, err)

		assert.Equal(t, "Erin Renamed", captured.Name)
		assert.Equal(t, "$2a$10$stored-hash", captured.PasswordHash)
		if assert.NotNil(t, captured.CompanyID) {
			assert.Equal(t, "comp-1", *captured.CompanyID)
		}
		if assert.NotNil(t, captured.EmployerSubRole) {
			assert.Equal(t, domain.SubRoleOwner, *captured.EmployerSubRole)
		}
		assert.Equal(t, captured, updated)
	})

	t.Run("candidate documents survive an edit", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(nil, userRepo, new(MockJobRepo), newValidator())

		stored := candidateUser()
		stored.PasswordHash = "$2a$10$stored-hash"
		stored.Skills = []string{"Go", "SQL"}
		stored.SavedJobs = []domain.SavedJob{{JobID: "job-1", SavedAt: time.Now()}}
		stored.Experience = []domain.Experience{{ID: "exp-1", Title: "Analyst", Company: "OldCo"}}
		userRepo.On("GetByID", ctx, "cand-1").Return(stored, nil).Once()

		var captured *domain.User
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*domain.User) }).
			Once()

		_, err := uc.UpdateUser(ctx, "cand-1", domain.AdminUserUpdate{
			Name:     "Casey Renamed",
			Email:    "casey@mail.test",
			Role:     domain.RoleCandidate,
			IsActive: false,
		})
		assert.NoError(t, err)

		assert.Equal(t, "$2a$10$stored-hash", captured.PasswordHash)
		assert.Equal(t, []string{"Go", "SQL"}, captured.Skills)
		assert.Len(t, captured.SavedJobs, 1)
		assert.Len(t, captured.Experience, 1)
		assert.False(t, captured.IsActive)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(nil, userRepo, new(MockJobRepo), newValidator())

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateUser(ctx, "ghost", domain.AdminUserUpdate{
			Name:  "Ghost",
			Email: "ghost@mail.test",
			Role:  domain.RoleCandidate,
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestDeleteJobLeavesApplicationsIntact(t *testing.T) {
	jobRepo := new(MockJobRepo)
	companyRepo := new(MockCompanyRepo)
	userRepo := new(MockUserRepo)
	appRepo := new(MockApplicationRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, stubGenerator{}, newValidator())
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

	ctx := employerCtx()
	job := &domain.Job{ID: "job-1", Title: "RevOps Engineer", CompanyID: "comp-1", CompanyName: "Acme RevOps"}
	jobRepo.On("GetByID", ctx, "job-1").Return(job, nil).Once()
	userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
	jobRepo.On("Delete", ctx, "job-1").Return(nil).Once()

	assert.NoError(t, jobUC.DeleteJob(ctx, "emp-1", "job-1"))
	jobRepo.AssertExpectations(t)

	// Only the posting is removed; the application row survives and its
	// snapshot still renders without the job.
	snapshot := domain.Application{
		ID:          "app-1",
		JobID:       "job-1",
		UserID:      "cand-1",
		Status:      domain.StatusApplied,
		JobTitle:    "RevOps Engineer",
		CompanyName: "Acme RevOps",
	}
	candCtx := candidateCtx()
	appRepo.On("GetByUserID", candCtx, "cand-1").Return([]domain.Application{snapshot}, nil).Once()

	apps, err := appUC.GetMyApplications(candCtx, "cand-1")
	assert.NoError(t, err)
	if assert.Len(t, apps, 1) {
		assert.Equal(t, "RevOps Engineer", apps[0].JobTitle)
		assert.Equal(t, "Acme RevOps", apps[0].CompanyName)
	}
	// The fetch above is the only call the application store ever saw.
	appRepo.AssertExpectations(t)
}

func TestEmployerRatingBounds(t *testing.T) {
	ctx := employerCtx()

	t.Run("out-of-range rating rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))

		err := uc.SetEmployerNotes(ctx, "emp-1", "app-1", "great", 6)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("zero clears the rating", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		userRepo.On("GetByID", ctx, "emp-1").Return(employerUser(), nil).Once()
		appRepo.On("GetByID", ctx, "app-1").
			Return(&domain.Application{ID: "app-1", JobID: "job-1", UserID: "cand-1", Rating: 4}, nil).
			Once()
		jobRepo.On("GetByID", ctx, "job-1").Return(&domain.Job{ID: "job-1", CompanyID: "comp-1"}, nil).Once()

		var captured *domain.Application
		appRepo.On("Update", ctx, mock.AnythingOfType("*domain.Application")).
			Return(nil).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*domain.Application) }).
			Once()

		assert.NoError(t, uc.SetEmployerNotes(ctx, "emp-1", "app-1", "on hold", 0))
		assert.Zero(t, captured.Rating)
		assert.Equal(t, "on hold", captured.InternalNotes)
	})
}
