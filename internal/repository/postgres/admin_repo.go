package postgres

import (
	"context"

	"hirerevops-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats

	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM users WHERE role = 'ADMIN'),
		(SELECT COUNT(*) FROM users WHERE role = 'EMPLOYER'),
		(SELECT COUNT(*) FROM users WHERE role = 'CANDIDATE'),
		(SELECT COUNT(*) FROM companies),
		(SELECT COUNT(*) FROM jobs),
		(SELECT COUNT(*) FROM jobs WHERE is_active),
		(SELECT COUNT(*) FROM applications)`

	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.UsersByRole.Admin,
		&stats.UsersByRole.Employer,
		&stats.UsersByRole.Candidate,
		&stats.TotalCompanies,
		&stats.TotalJobs,
		&stats.ActiveJobs,
		&stats.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
