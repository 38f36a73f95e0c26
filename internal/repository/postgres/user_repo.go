package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hirerevops-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const userColumns = `id, name, email, password_hash, role, avatar, is_active,
	company_id, employer_sub_role, bio, title, skills,
	experience, saved_jobs, alerts, preferences, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	experience, savedJobs, alerts, preferences, err := marshalUserDocs(user)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (` + userColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Avatar, user.IsActive,
		user.CompanyID, user.EmployerSubRole, user.Bio, user.Title, pq.Array(user.Skills),
		experience, savedJobs, alerts, preferences, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *userRepo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND company_id = $2 ORDER BY name`
	rows, err := r.db.Query(ctx, query, domain.RoleEmployer, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *userRepo) SearchCandidates(ctx context.Context, query string) ([]domain.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users
	        WHERE role = $1 AND (preferences->>'is_open_to_work')::boolean IS TRUE`
	args := []interface{}{domain.RoleCandidate}

	if query != "" {
		sql += ` AND (name ILIKE $2 OR title ILIKE $2
		         OR EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE $2))`
		args = append(args, "%"+query+"%")
	}
	sql += ` ORDER BY name`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	experience, savedJobs, alerts, preferences, err := marshalUserDocs(user)
	if err != nil {
		return err
	}

	query := `UPDATE users SET
		name = $2, email = $3, password_hash = $4, role = $5, avatar = $6, is_active = $7,
		company_id = $8, employer_sub_role = $9, bio = $10, title = $11, skills = $12,
		experience = $13, saved_jobs = $14, alerts = $15, preferences = $16, updated_at = $17
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Avatar, user.IsActive,
		user.CompanyID, user.EmployerSubRole, user.Bio, user.Title, pq.Array(user.Skills),
		experience, savedJobs, alerts, preferences, user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) scanAll(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var skills []string
	var experience, savedJobs, alerts, preferences []byte

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &u.IsActive,
		&u.CompanyID, &u.EmployerSubRole, &u.Bio, &u.Title, pq.Array(&skills),
		&experience, &savedJobs, &alerts, &preferences, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Skills = skills

	for _, doc := range []struct {
		raw []byte
		dst interface{}
	}{
		{experience, &u.Experience},
		{savedJobs, &u.SavedJobs},
		{alerts, &u.Alerts},
		{preferences, &u.Preferences},
	} {
		if len(doc.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.raw, doc.dst); err != nil {
			return nil, fmt.Errorf("decode user document: %w", err)
		}
	}
	return &u, nil
}

func marshalUserDocs(user *domain.User) (experience, savedJobs, alerts, preferences []byte, err error) {
	if experience, err = json.Marshal(user.Experience); err != nil {
		return
	}
	if savedJobs, err = json.Marshal(user.SavedJobs); err != nil {
		return
	}
	if alerts, err = json.Marshal(user.Alerts); err != nil {
		return
	}
	preferences, err = json.Marshal(user.Preferences)
	return
}
