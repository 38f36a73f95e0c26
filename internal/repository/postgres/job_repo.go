package postgres

import (
	"context"
	"errors"

	"hirerevops-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// applicants_count is computed per read; the source never maintained it
// incrementally.
const jobSelect = `SELECT j.id, j.title, j.company_id, j.company_name, j.location, j.type,
	j.description, j.requirements, j.salary_range, j.posted_at, j.is_active,
	j.author_id, j.views, j.clicks,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS applicants_count
	FROM jobs j`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, company_id, company_name, location, type,
	          description, requirements, salary_range, posted_at, is_active, author_id, views, clicks)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.CompanyID, job.CompanyName, job.Location, job.Type,
		job.Description, pq.Array(job.Requirements), job.SalaryRange,
		job.PostedAt, job.IsActive, job.AuthorID, job.Views, job.Clicks,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := jobSelect + ` ORDER BY j.posted_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := jobSelect + ` WHERE j.is_active ORDER BY j.posted_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	query := jobSelect + ` WHERE j.company_id = $1 ORDER BY j.posted_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepo) CountActiveByCompanyID(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE company_id = $1 AND is_active`, companyID,
	).Scan(&count)
	return count, err
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2, location = $3, type = $4, description = $5,
		requirements = $6, salary_range = $7, is_active = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Location, job.Type, job.Description,
		pq.Array(job.Requirements), job.SalaryRange, job.IsActive,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *jobRepo) IncrementClicks(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET clicks = clicks + 1 WHERE id = $1`, id)
	return err
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	// Deliberately no cascade: applications keep their snapshots.
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var requirements []string
	err := row.Scan(
		&j.ID, &j.Title, &j.CompanyID, &j.CompanyName, &j.Location, &j.Type,
		&j.Description, pq.Array(&requirements), &j.SalaryRange, &j.PostedAt, &j.IsActive,
		&j.AuthorID, &j.Views, &j.Clicks, &j.ApplicantsCount,
	)
	if err != nil {
		return nil, err
	}
	j.Requirements = requirements
	return &j, nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
