package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/routesketch/service-planner/internal/domain"
	"github.com/routesketch/service-planner/internal/domain/geo"
	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
	plannerDomain "github.com/routesketch/service-planner/internal/domain/planner"
	routeDomain "github.com/routesketch/service-planner/internal/domain/route"
)

// MemorySessionRepository stores planning sessions in process memory.
// Sessions are per-visit state; nothing is persisted across restarts.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*plannerDomain.Session
}

// NewMemorySessionRepository creates an empty session store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[uuid.UUID]*plannerDomain.Session),
	}
}

// FindByID retrieves a session copy by its unique identifier.
func (r *MemorySessionRepository) FindByID(_ context.Context, id uuid.UUID) (*plannerDomain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[id]
	if !ok {
		return nil, domain.NewNotFoundError("Session", id.String())
	}
	return clone(stored), nil
}

// Save persists a new session.
func (r *MemorySessionRepository) Save(_ context.Context, session *plannerDomain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID()]; ok {
		return domain.NewConflictError("session already exists")
	}
	r.sessions[session.ID()] = clone(session)
	return nil
}

// Update persists changes to an existing session with optimistic locking:
// the caller bumps the version first, and the stored version must match
// the pre-bump value.
func (r *MemorySessionRepository) Update(_ context.Context, session *plannerDomain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[session.ID()]
	if !ok {
		return domain.NewNotFoundError("Session", session.ID().String())
	}
	if stored.Version() != session.Version()-1 {
		return domain.NewConflictError("session was modified by another request")
	}

	r.sessions[session.ID()] = clone(session)
	return nil
}

// clone rebuilds an independent aggregate so callers never share state with
// the store.
func clone(s *plannerDomain.Session) *plannerDomain.Session {
	return plannerDomain.ReconstructSession(
		s.ID(),
		copyLocation(s.Source()),
		copyLocation(s.Destination()),
		copyPoint(s.Selected()),
		copyPath(s.Path()),
		s.Version(),
		s.CreatedAt(),
		s.UpdatedAt(),
	)
}

func copyLocation(l *locationDomain.Location) *locationDomain.Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func copyPoint(p *geo.Point) *geo.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyPath(p *routeDomain.Path) *routeDomain.Path {
	if p == nil {
		return nil
	}
	c := *p
	c.Points = append([]geo.Point(nil), p.Points...)
	return &c
}
