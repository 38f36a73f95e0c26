package usecase

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db    *pgxpool.Pool
	cache *redis.Client
}

func NewHealthUsecase(db *pgxpool.Pool, cache *redis.Client) HealthUsecase {
	return &healthUsecase{db: db, cache: cache}
}

// Check pings both stores. The endpoint stays 200 even when a dependency is
// down; the per-component status tells the operator which one.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}
	if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if err := u.cache.Ping(ctx).Err(); err != nil {
		status["status"] = "degraded"
		status["redis"] = err.Error()
	}
	return status
}
