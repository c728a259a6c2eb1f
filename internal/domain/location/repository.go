package location

import "context"

// Repository defines read access to the location registry.
// The registry is reference data: implementations never mutate it after seeding.
type Repository interface {
	// List returns every registry entry in registry order.
	List(ctx context.Context) ([]Location, error)

	// FindByName retrieves a registry entry by its exact name.
	FindByName(ctx context.Context, name string) (*Location, error)
}
