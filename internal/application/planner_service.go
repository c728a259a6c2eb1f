package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/routesketch/service-planner/internal/domain"
	"github.com/routesketch/service-planner/internal/domain/geo"
	locationDomain "github.com/routesketch/service-planner/internal/domain/location"
	plannerDomain "github.com/routesketch/service-planner/internal/domain/planner"
	routeDomain "github.com/routesketch/service-planner/internal/domain/route"
	"github.com/routesketch/service-planner/internal/events"
)

// RouteDTO is the response representation of a computed route.
type RouteDTO struct {
	Points        []geo.Point `json:"points"`
	Polyline      string      `json:"polyline"`
	DistanceKm    float64     `json:"distance_km"`
	DurationLabel string      `json:"duration_label"`
}

// SessionDTO is the response representation of a planning session.
type SessionDTO struct {
	ID          uuid.UUID                `json:"id"`
	Source      *locationDomain.Location `json:"source,omitempty"`
	Destination *locationDomain.Location `json:"destination,omitempty"`
	Selected    *geo.Point               `json:"selected,omitempty"`
	Route       *RouteDTO                `json:"route,omitempty"`
	Version     int64                    `json:"version"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// PlannerService orchestrates planning sessions: endpoint selection, swap,
// point selection, route computation and render-plan derivation.
type PlannerService struct {
	sessions     plannerDomain.SessionRepository
	locations    locationDomain.Repository
	publisher    events.Publisher
	computeDelay time.Duration
	logger       *zap.Logger
}

// NewPlannerService creates a new PlannerService. computeDelay simulates the
// asynchronous work the route calculation pretends to do.
func NewPlannerService(
	sessions plannerDomain.SessionRepository,
	locations locationDomain.Repository,
	publisher events.Publisher,
	computeDelay time.Duration,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		sessions:     sessions,
		locations:    locations,
		publisher:    publisher,
		computeDelay: computeDelay,
		logger:       logger,
	}
}

// CreateSession starts an empty planning session.
func (s *PlannerService) CreateSession(ctx context.Context) (*SessionDTO, error) {
	session := plannerDomain.NewSession()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	evt := events.SessionCreatedEvent{
		SessionID:  session.ID(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.SessionCreated, session.ID().String(), evt)

	result := toSessionDTO(session)
	return &result, nil
}

// GetSession retrieves a single session by ID.
func (s *PlannerService) GetSession(ctx context.Context, id uuid.UUID) (*SessionDTO, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toSessionDTO(session)
	return &result, nil
}

// SetSource chooses the session's source location by registry name.
func (s *PlannerService) SetSource(ctx context.Context, id uuid.UUID, name string) (*SessionDTO, error) {
	return s.mutate(ctx, id, func(session *plannerDomain.Session) error {
		loc, err := s.locations.FindByName(ctx, name)
		if err != nil {
			return err
		}
		session.SetSource(*loc)
		return nil
	})
}

// SetDestination chooses the session's destination location by registry name.
func (s *PlannerService) SetDestination(ctx context.Context, id uuid.UUID, name string) (*SessionDTO, error) {
	return s.mutate(ctx, id, func(session *plannerDomain.Session) error {
		loc, err := s.locations.FindByName(ctx, name)
		if err != nil {
			return err
		}
		session.SetDestination(*loc)
		return nil
	})
}

// Swap exchanges the session's source and destination.
func (s *PlannerService) Swap(ctx context.Context, id uuid.UUID) (*SessionDTO, error) {
	return s.mutate(ctx, id, func(session *plannerDomain.Session) error {
		session.Swap()
		return nil
	})
}

// SelectPoint marks a point of interest on the map.
func (s *PlannerService) SelectPoint(ctx context.Context, id uuid.UUID, lat, lng float64) (*SessionDTO, error) {
	return s.mutate(ctx, id, func(session *plannerDomain.Session) error {
		p, err := geo.NewPoint(lat, lng)
		if err != nil {
			return domain.NewValidationError(err.Error())
		}
		session.SelectPoint(p)
		return nil
	})
}

// ClearSelection removes the session's selected point.
func (s *PlannerService) ClearSelection(ctx context.Context, id uuid.UUID) (*SessionDTO, error) {
	return s.mutate(ctx, id, func(session *plannerDomain.Session) error {
		session.ClearSelection()
		return nil
	})
}

// ComputeRoute generates the synthetic route for the session's endpoints.
// Both endpoints must be set. The computation waits the configured delay
// before producing a result, honoring context cancellation.
func (s *PlannerService) ComputeRoute(ctx context.Context, id uuid.UUID) (*SessionDTO, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	src := session.Source()
	dst := session.Destination()
	if src == nil || dst == nil {
		return nil, domain.NewPreconditionError("source and destination are required before computing a route")
	}

	if s.computeDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.computeDelay):
		}
	}

	path := routeDomain.Generate(src.Point(), dst.Point())
	if err := session.AttachRoute(path); err != nil {
		return nil, err
	}

	session.IncrementVersion()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("route computed",
		zap.String("session_id", session.ID().String()),
		zap.String("source", src.Name),
		zap.String("destination", dst.Name),
		zap.Float64("distance_km", path.Summary.DistanceKm),
	)

	evt := events.RouteComputedEvent{
		SessionID:     session.ID(),
		Source:        src.Name,
		Destination:   dst.Name,
		DistanceKm:    path.Summary.DistanceKm,
		DurationLabel: path.Summary.DurationLabel,
		PointCount:    len(path.Points),
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.RouteComputed, session.ID().String(), evt)

	result := toSessionDTO(session)
	return &result, nil
}

// RenderPlan derives the drawable map state for the session.
func (s *PlannerService) RenderPlan(ctx context.Context, id uuid.UUID) (*plannerDomain.RenderPlan, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plan := plannerDomain.BuildRenderPlan(session)
	return &plan, nil
}

// --- Helpers ---

func (s *PlannerService) mutate(ctx context.Context, id uuid.UUID, fn func(*plannerDomain.Session) error) (*SessionDTO, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}

	session.IncrementVersion()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	result := toSessionDTO(session)
	return &result, nil
}

func (s *PlannerService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("service-planner", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, events.TopicPlannerEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicPlannerEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toSessionDTO(session *plannerDomain.Session) SessionDTO {
	dto := SessionDTO{
		ID:          session.ID(),
		Source:      session.Source(),
		Destination: session.Destination(),
		Selected:    session.Selected(),
		Version:     session.Version(),
		CreatedAt:   session.CreatedAt(),
		UpdatedAt:   session.UpdatedAt(),
	}
	if path := session.Path(); path != nil {
		dto.Route = &RouteDTO{
			Points:        path.Points,
			Polyline:      routeDomain.EncodePolyline(path.Points),
			DistanceKm:    path.Summary.DistanceKm,
			DurationLabel: path.Summary.DurationLabel,
		}
	}
	return dto
}
