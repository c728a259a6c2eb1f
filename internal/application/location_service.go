package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
)

// LocationService implements use cases over the location registry.
type LocationService struct {
	repo   locationDomain.Repository
	logger *zap.Logger
}

// NewLocationService creates a new LocationService.
func NewLocationService(repo locationDomain.Repository, logger *zap.Logger) *LocationService {
	return &LocationService{repo: repo, logger: logger}
}

// ListLocations returns the full registry in registry order.
func (s *LocationService) ListLocations(ctx context.Context) ([]locationDomain.Location, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return entries, nil
}

// SearchLocations returns registry entries matching the query as a
// case-insensitive substring, preserving registry order. An empty query
// returns no suggestions.
func (s *LocationService) SearchLocations(ctx context.Context, query string) ([]locationDomain.Location, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return locationDomain.Filter(query, entries), nil
}
