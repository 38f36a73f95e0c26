package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewCandidateUsecase(userRepo domain.UserRepository, jobRepo domain.JobRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{userRepo: userRepo, jobRepo: jobRepo, validate: validate}
}

// ToggleSavedJob saves the job if absent and removes it if present. Applying
// it twice returns the list to its starting state.
func (u *candidateUsecase) ToggleSavedJob(ctx context.Context, userID, jobID string) (*domain.User, error) {
	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if user.HasSavedJob(jobID) {
		kept := user.SavedJobs[:0]
		for _, s := range user.SavedJobs {
			if s.JobID != jobID {
				kept = append(kept, s)
			}
		}
		user.SavedJobs = kept
	} else {
		user.SavedJobs = append(user.SavedJobs, domain.SavedJob{JobID: jobID, SavedAt: time.Now()})
	}

	return u.save(ctx, user)
}

func (u *candidateUsecase) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.User, error) {
	if err := u.validate.Struct(exp); err != nil {
		return nil, invalidInput(err)
	}

	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ID = uuid.NewString()
	user.Experience = append(user.Experience, exp)
	sortExperience(user.Experience)

	return u.save(ctx, user)
}

func (u *candidateUsecase) RemoveExperience(ctx context.Context, userID, expID string) (*domain.User, error) {
	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.Experience[:0]
	for _, e := range user.Experience {
		if e.ID != expID {
			kept = append(kept, e)
		}
	}
	user.Experience = kept

	return u.save(ctx, user)
}

func (u *candidateUsecase) AddAlert(ctx context.Context, userID string, alert domain.JobAlert) (*domain.User, error) {
	if err := u.validate.Struct(alert); err != nil {
		return nil, invalidInput(err)
	}

	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	alert.ID = uuid.NewString()
	alert.Active = true
	user.Alerts = append(user.Alerts, alert)

	return u.save(ctx, user)
}

func (u *candidateUsecase) RemoveAlert(ctx context.Context, userID, alertID string) (*domain.User, error) {
	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.Alerts[:0]
	for _, a := range user.Alerts {
		if a.ID != alertID {
			kept = append(kept, a)
		}
	}
	user.Alerts = kept

	return u.save(ctx, user)
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, userID string, input domain.ProfileUpdate) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Title = input.Title
	user.Bio = input.Bio
	user.Skills = input.Skills

	return u.save(ctx, user)
}

func (u *candidateUsecase) UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) (*domain.User, error) {
	user, err := u.candidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Preferences = prefs
	return u.save(ctx, user)
}

func (u *candidateUsecase) candidate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if user.Role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Candidate profile required")
	}
	return user, nil
}

func (u *candidateUsecase) save(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// Work history displays newest role first.
func sortExperience(exps []domain.Experience) {
	sort.SliceStable(exps, func(i, j int) bool {
		return exps[i].StartDate.After(exps[j].StartDate)
	})
}
