package postgres

import (
	"context"
	"errors"

	"hirerevops-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, user_id, status, applied_at,
	candidate_name, candidate_email, job_title, company_name,
	internal_notes, rating, candidate_notes`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (` + applicationColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.UserID, app.Status, app.AppliedAt,
		app.CandidateName, app.CandidateEmail, app.JobTitle, app.CompanyName,
		app.InternalNotes, app.Rating, app.CandidateNotes,
	)
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE user_id = $1 ORDER BY applied_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// GetByCompanyID resolves a company's inbound applications through its jobs
// in a single join instead of filtering application rows per job.
func (r *applicationRepo) GetByCompanyID(ctx context.Context, companyID string) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.status, a.applied_at,
	          a.candidate_name, a.candidate_email, a.job_title, a.company_name,
	          a.internal_notes, a.rating, a.candidate_notes
	          FROM applications a
	          JOIN jobs j ON a.job_id = j.id
	          WHERE j.company_id = $1
	          ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// CheckExists reports whether the user has ever applied to the job,
// regardless of the application's current status.
func (r *applicationRepo) CheckExists(ctx context.Context, jobID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`,
		jobID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `UPDATE applications SET
		status = $2, internal_notes = $3, rating = $4, candidate_notes = $5
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		app.ID, app.Status, app.InternalNotes, app.Rating, app.CandidateNotes)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID, &a.JobID, &a.UserID, &a.Status, &a.AppliedAt,
		&a.CandidateName, &a.CandidateEmail, &a.JobTitle, &a.CompanyName,
		&a.InternalNotes, &a.Rating, &a.CandidateNotes,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
