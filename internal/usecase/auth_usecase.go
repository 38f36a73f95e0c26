package usecase

import (
	"context"
	"errors"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"
	"hirerevops-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
	sessionRepo domain.SessionRepository
	tokens      *auth.TokenManager
	validate    *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	sessionRepo domain.SessionRepository,
	tokens *auth.TokenManager,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		validate:    validate,
	}
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password produce the same message so the endpoint does not leak which
// accounts exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	// Suspension is checked before a session is established, so a suspended
	// account never receives a token.
	if !user.IsActive {
		return nil, apperror.Forbidden("Your account has been suspended. Please contact support.")
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) RegisterCandidate(ctx context.Context, input domain.CandidateSignup) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}
	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
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
		Role:         domain.RoleCandidate,
		IsActive:     true,
		Bio:          input.Bio,
		Preferences:  domain.Preferences{IsOpenToWork: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	return u.openSession(ctx, user)
}

// RegisterEmployer creates the account and its company in one step. The
// company starts on the FREE tier: one job credit and a 7-day talent pool
// window, with no renewal date until a paid upgrade sets one.
func (u *authUsecase) RegisterEmployer(ctx context.Context, input domain.EmployerSignup) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}
	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	userID := uuid.NewString()
	freePlan, _ := domain.PlanFor(domain.PlanFree)
	talentExpiry := now.AddDate(0, 0, freePlan.TalentAccessDays)

	company := &domain.Company{
		ID:          uuid.NewString(),
		Name:        input.CompanyName,
		Description: "A new and exciting company.",
		OwnerID:     userID,
		Subscription: domain.SubscriptionDetails{
			PlanID:                domain.PlanFree,
			Status:                domain.SubscriptionActive,
			StartDate:             now,
			JobCredits:            freePlan.JobLimit,
			TalentAccessExpiresAt: &talentExpiry,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}

	subRole := domain.SubRoleOwner
	user := &domain.User{
		ID:              userID,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Role:            domain.RoleEmployer,
		IsActive:        true,
		CompanyID:       &company.ID,
		EmployerSubRole: &subRole,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessionRepo.Delete(ctx, sessionID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) openSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	token, err := u.tokens.Issue(user.ID, string(user.Role), session.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}

func (u *authUsecase) ensureEmailFree(ctx context.Context, email string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return apperror.Conflict("An account with this email already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}
