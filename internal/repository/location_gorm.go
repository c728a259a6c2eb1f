package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/routesketch/service-planner/internal/domain"
	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
)

// LocationModel is the GORM model for the locations table. Seq preserves
// registry order, which search results and listings must keep.
type LocationModel struct {
	Name string  `gorm:"primaryKey;size:100"`
	Lat  float64 `gorm:"not null"`
	Lng  float64 `gorm:"not null"`
	Seq  int     `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (LocationModel) TableName() string {
	return "locations"
}

// GormLocationRepository is the Postgres-backed registry implementation.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Seed upserts the built-in registry entries. Idempotent; safe on every start.
func (r *GormLocationRepository) Seed(ctx context.Context, entries []locationDomain.Location) error {
	models := make([]LocationModel, len(entries))
	for i, loc := range entries {
		models[i] = LocationModel{Name: loc.Name, Lat: loc.Lat, Lng: loc.Lng, Seq: i}
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "seq"}),
		}).
		Create(&models).Error; err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}
	return nil
}

// List returns every registry entry in registry order.
func (r *GormLocationRepository) List(ctx context.Context) ([]locationDomain.Location, error) {
	var models []LocationModel
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	entries := make([]locationDomain.Location, len(models))
	for i, m := range models {
		entries[i] = locationDomain.Location{Name: m.Name, Lat: m.Lat, Lng: m.Lng}
	}
	return entries, nil
}

// FindByName retrieves a registry entry by its exact name.
func (r *GormLocationRepository) FindByName(ctx context.Context, name string) (*locationDomain.Location, error) {
	var model LocationModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Location", name)
		}
		return nil, fmt.Errorf("failed to find location by name: %w", err)
	}
	return &locationDomain.Location{Name: model.Name, Lat: model.Lat, Lng: model.Lng}, nil
}
