package repository

import (
	"context"

	"github.com/routesketch/service-planner/internal/domain"
	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
)

// MemoryLocationRepository serves the registry from a fixed in-process slice.
// It is the default backend; the registry never changes after construction.
type MemoryLocationRepository struct {
	entries []locationDomain.Location
}

// NewMemoryLocationRepository creates a repository over the given entries.
func NewMemoryLocationRepository(entries []locationDomain.Location) *MemoryLocationRepository {
	return &MemoryLocationRepository{entries: entries}
}

// List returns every registry entry in registry order.
func (r *MemoryLocationRepository) List(_ context.Context) ([]locationDomain.Location, error) {
	out := make([]locationDomain.Location, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// FindByName retrieves a registry entry by its exact name.
func (r *MemoryLocationRepository) FindByName(_ context.Context, name string) (*locationDomain.Location, error) {
	for _, loc := range r.entries {
		if loc.Name == name {
			found := loc
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("Location", name)
}
