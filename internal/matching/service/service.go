package service

import (
	"context"

	contractordomain "github.com/geo3dhub/geo-hub-backend/internal/contractors/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
	"github.com/geo3dhub/geo-hub-backend/internal/matching"
)

// MatchingService loads the contractor pool and runs the filter over it.
type MatchingService struct {
	pool *repository.PoolCache
}

// NewMatchingService creates a new matching service.
func NewMatchingService(pool *repository.PoolCache) *MatchingService {
	return &MatchingService{pool: pool}
}

// Match returns the qualified subset of the contractor pool for req,
// in stable pool order.
func (s *MatchingService) Match(ctx context.Context, req matching.Requirement) ([]contractordomain.Profile, error) {
	pool, err := s.pool.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return matching.Filter(pool, req), nil
}
