//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routeDomain "github.com/routesketch/service-planner/internal/domain/route"
	"github.com/routesketch/service-planner/internal/events"
)

// TestPlannerFlow_PublishesRouteComputed runs the full planning flow against
// a containerized Postgres registry and Kafka broker: seed locations, create
// a session, choose endpoints, compute the route, and assert the
// RouteComputedEvent arrives on planner.events.
func TestPlannerFlow_PublishesRouteComputed(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupPlannerStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	// The seeded registry is served back in insertion order.
	entries, err := stack.Locations.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 14)
	assert.Equal(t, "Visakhapatnam", entries[0].Name)

	matches, err := stack.Locations.SearchLocations(ctx, "raja")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Rajahmundry", matches[0].Name)

	session, err := stack.Planner.CreateSession(ctx)
	require.NoError(t, err)

	_, err = stack.Planner.SetSource(ctx, session.ID, "Visakhapatnam")
	require.NoError(t, err)
	_, err = stack.Planner.SetDestination(ctx, session.ID, "Vijayawada")
	require.NoError(t, err)

	result, err := stack.Planner.ComputeRoute(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Route)
	assert.Len(t, result.Route.Points, routeDomain.Steps+1)
	assert.InDelta(t, 303.09, result.Route.DistanceKm, 0.05)
	assert.Equal(t, "5h 3m", result.Route.DurationLabel)

	// Assert: RouteComputedEvent on planner.events.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicPlannerEvents,
		events.RouteComputed, 15*time.Second)

	var computed events.RouteComputedEvent
	require.NoError(t, ce.ParseData(&computed))
	assert.Equal(t, session.ID, computed.SessionID)
	assert.Equal(t, "Visakhapatnam", computed.Source)
	assert.Equal(t, "Vijayawada", computed.Destination)
	assert.Equal(t, routeDomain.Steps+1, computed.PointCount)
	assert.Equal(t, "5h 3m", computed.DurationLabel)
}
