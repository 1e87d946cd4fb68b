package services

import (
	"context"
	"time"

	"github.com/isandov/storefront-be/internal/database"
)

// HealthServiceProvider defines the interface for store diagnostics.
type HealthServiceProvider interface {
	Now(ctx context.Context) (time.Time, error)
}

// HealthService verifies store reachability independent of business logic.
type HealthService struct {
	db database.Querier
}

// NewHealthService creates a new HealthService.
func NewHealthService(db database.Querier) *HealthService {
	return &HealthService{db: db}
}

var _ HealthServiceProvider = (*HealthService)(nil)

// Now performs a trivial round trip against the store and returns its clock.
func (s *HealthService) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := s.db.QueryRow(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
