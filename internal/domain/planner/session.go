package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/routesketch/service-planner/internal/domain"
	"github.com/routesketch/service-planner/internal/domain/geo"
	"github.com/routesketch/service-planner/internal/domain/location"
	"github.com/routesketch/service-planner/internal/domain/route"
)

// Session is the aggregate root for one planning interaction: the chosen
// source and destination, an optional selected point, and the computed
// route. Mutating either endpoint invalidates the route so the view is
// always redrawn from consistent state.
type Session struct {
	id          uuid.UUID
	source      *location.Location
	destination *location.Location
	selected    *geo.Point
	path        *route.Path

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewSession creates an empty planning session.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		id:        uuid.New(),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructSession rebuilds a Session from stored state (no validation).
func ReconstructSession(
	id uuid.UUID,
	source, destination *location.Location,
	selected *geo.Point,
	path *route.Path,
	version int64,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:          id,
		source:      source,
		destination: destination,
		selected:    selected,
		path:        path,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Source returns the chosen source location, or nil.
func (s *Session) Source() *location.Location { return s.source }

// Destination returns the chosen destination location, or nil.
func (s *Session) Destination() *location.Location { return s.destination }

// Selected returns the currently selected point, or nil.
func (s *Session) Selected() *geo.Point { return s.selected }

// Path returns the computed route path, or nil if none is current.
func (s *Session) Path() *route.Path { return s.path }

// Version returns the entity version for optimistic locking.
func (s *Session) Version() int64 { return s.version }

// CreatedAt returns the creation timestamp.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// --- Behavior ---

// SetSource chooses the source location and drops any computed route.
func (s *Session) SetSource(loc location.Location) {
	s.source = &loc
	s.invalidateRoute()
}

// SetDestination chooses the destination location and drops any computed route.
func (s *Session) SetDestination(loc location.Location) {
	s.destination = &loc
	s.invalidateRoute()
}

// Swap exchanges source and destination and drops any computed route.
// Swapping with either side unset simply moves the set side over.
func (s *Session) Swap() {
	s.source, s.destination = s.destination, s.source
	s.invalidateRoute()
}

// SelectPoint marks a point of interest on the map.
func (s *Session) SelectPoint(p geo.Point) {
	s.selected = &p
	s.touch()
}

// ClearSelection removes the selected point.
func (s *Session) ClearSelection() {
	s.selected = nil
	s.touch()
}

// AttachRoute stores a computed path. Both endpoints must be set; route
// computation without them is a no-op at the caller, so reaching here
// without endpoints is a precondition failure.
func (s *Session) AttachRoute(p route.Path) error {
	if s.source == nil || s.destination == nil {
		return domain.NewPreconditionError("source and destination are required before computing a route")
	}
	s.path = &p
	s.touch()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (s *Session) IncrementVersion() {
	s.version++
	s.updatedAt = time.Now().UTC()
}

func (s *Session) invalidateRoute() {
	s.path = nil
	s.touch()
}

func (s *Session) touch() {
	s.updatedAt = time.Now().UTC()
}
