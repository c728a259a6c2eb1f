package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicPlannerEvents carries planner telemetry.
const TopicPlannerEvents = "planner.events"

// Event types published to TopicPlannerEvents.
const (
	SessionCreated = "planner.session.created"
	RouteComputed  = "planner.route.computed"
)

// SessionCreatedEvent is published when a planning session starts.
type SessionCreatedEvent struct {
	SessionID  uuid.UUID `json:"session_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RouteComputedEvent is published after a route is generated for a session.
type RouteComputedEvent struct {
	SessionID     uuid.UUID `json:"session_id"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	DistanceKm    float64   `json:"distance_km"`
	DurationLabel string    `json:"duration_label"`
	PointCount    int       `json:"point_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
