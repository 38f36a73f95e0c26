package postgres

import (
	"context"
	"errors"

	"hirerevops-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const companyColumns = `id, name, description, website, logo, location, size, industry,
	tech_stack, revops_structure, owner_id,
	plan_id, subscription_status, start_date, renews_at, job_credits, talent_access_expires_at,
	created_at, updated_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	sub := company.Subscription
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website, company.Logo,
		company.Location, company.Size, company.Industry,
		pq.Array(company.TechStack), company.RevOpsStructure, company.OwnerID,
		sub.PlanID, sub.Status, sub.StartDate, sub.RenewsAt, sub.JobCredits, sub.TalentAccessExpiresAt,
		company.CreatedAt, company.UpdatedAt,
	)
	return err
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2, description = $3, website = $4, logo = $5, location = $6,
		size = $7, industry = $8, tech_stack = $9, revops_structure = $10, updated_at = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website, company.Logo,
		company.Location, company.Size, company.Industry,
		pq.Array(company.TechStack), company.RevOpsStructure, company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) UpdateSubscription(ctx context.Context, companyID string, sub domain.SubscriptionDetails) error {
	query := `UPDATE companies SET
		plan_id = $2, subscription_status = $3, start_date = $4, renews_at = $5,
		job_credits = $6, talent_access_expires_at = $7, updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		companyID, sub.PlanID, sub.Status, sub.StartDate, sub.RenewsAt,
		sub.JobCredits, sub.TalentAccessExpiresAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	var techStack []string

	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Website, &c.Logo, &c.Location, &c.Size, &c.Industry,
		pq.Array(&techStack), &c.RevOpsStructure, &c.OwnerID,
		&c.Subscription.PlanID, &c.Subscription.Status, &c.Subscription.StartDate,
		&c.Subscription.RenewsAt, &c.Subscription.JobCredits, &c.Subscription.TalentAccessExpiresAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.TechStack = techStack
	return &c, nil
}
