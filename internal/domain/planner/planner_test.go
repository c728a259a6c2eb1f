package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routesketch/service-planner/internal/domain/geo"
	"github.com/routesketch/service-planner/internal/domain/location"
	"github.com/routesketch/service-planner/internal/domain/route"
)

var (
	vizag = location.Location{Name: "Visakhapatnam", Lat: 17.6868, Lng: 83.2185}
	bezawada = location.Location{Name: "Vijayawada", Lat: 16.5062, Lng: 80.6480}
)

func TestSession_EndpointChangesInvalidateRoute(t *testing.T) {
	s := NewSession()
	s.SetSource(vizag)
	s.SetDestination(bezawada)

	require.NoError(t, s.AttachRoute(route.Generate(vizag.Point(), bezawada.Point())))
	require.NotNil(t, s.Path())

	s.SetDestination(vizag)
	assert.Nil(t, s.Path(), "changing an endpoint drops the stale route")

	require.NoError(t, s.AttachRoute(route.Generate(vizag.Point(), vizag.Point())))
	s.Swap()
	assert.Nil(t, s.Path(), "swap drops the stale route")
}

func TestSession_Swap(t *testing.T) {
	s := NewSession()
	s.SetSource(vizag)
	s.Swap()

	assert.Nil(t, s.Source())
	require.NotNil(t, s.Destination())
	assert.Equal(t, "Visakhapatnam", s.Destination().Name)

	s.SetSource(bezawada)
	s.Swap()
	assert.Equal(t, "Visakhapatnam", s.Source().Name)
	assert.Equal(t, "Vijayawada", s.Destination().Name)
}

func TestSession_AttachRouteRequiresEndpoints(t *testing.T) {
	s := NewSession()
	err := s.AttachRoute(route.Generate(vizag.Point(), bezawada.Point()))
	assert.Error(t, err)

	s.SetSource(vizag)
	err = s.AttachRoute(route.Generate(vizag.Point(), bezawada.Point()))
	assert.Error(t, err, "destination still missing")
}

func TestBuildRenderPlan_EmptySession(t *testing.T) {
	plan := BuildRenderPlan(NewSession())

	assert.Empty(t, plan.Markers)
	assert.Nil(t, plan.Route)
	assert.Nil(t, plan.Bounds, "nothing set leaves the viewport alone")
}

func TestBuildRenderPlan_SingleEndpointCentersOnIt(t *testing.T) {
	s := NewSession()
	s.SetSource(vizag)

	plan := BuildRenderPlan(s)
	require.Len(t, plan.Markers, 1)
	assert.Equal(t, MarkerSource, plan.Markers[0].Kind)

	require.NotNil(t, plan.Bounds)
	assert.Equal(t, vizag.Point(), plan.Bounds.Min)
	assert.Equal(t, vizag.Point(), plan.Bounds.Max)
	assert.Equal(t, vizag.Point(), plan.Bounds.Center())
}

func TestBuildRenderPlan_TwoEndpointsFitBoth(t *testing.T) {
	s := NewSession()
	s.SetSource(vizag)
	s.SetDestination(bezawada)

	plan := BuildRenderPlan(s)
	require.Len(t, plan.Markers, 2)
	require.NotNil(t, plan.Bounds)
	assert.True(t, plan.Bounds.Contains(vizag.Point()))
	assert.True(t, plan.Bounds.Contains(bezawada.Point()))
	assert.Nil(t, plan.Route)
}

func TestBuildRenderPlan_RouteDrivesBounds(t *testing.T) {
	// Endpoints at nearly equal latitude: the curve's bulge rises above
	// the endpoint box, so fitting only the endpoints would clip the path.
	kakinada := location.Location{Name: "Kakinada", Lat: 16.9891, Lng: 82.2475}
	rajahmundry := location.Location{Name: "Rajahmundry", Lat: 17.0005, Lng: 81.8040}

	s := NewSession()
	s.SetSource(kakinada)
	s.SetDestination(rajahmundry)
	require.NoError(t, s.AttachRoute(route.Generate(kakinada.Point(), rajahmundry.Point())))

	plan := BuildRenderPlan(s)
	require.NotNil(t, plan.Route)
	assert.Len(t, plan.Route.Points, route.Steps+1)
	assert.NotEmpty(t, plan.Route.Polyline)

	require.NotNil(t, plan.Bounds)
	for _, p := range plan.Route.Points {
		assert.True(t, plan.Bounds.Contains(p))
	}
	endpointBox := geo.NewBBox(kakinada.Point(), rajahmundry.Point())
	assert.Greater(t, plan.Bounds.Max.Lat, endpointBox.Max.Lat)
}

func TestBuildRenderPlan_SelectedPoint(t *testing.T) {
	s := NewSession()
	p := geo.Point{Lat: 16.9891, Lng: 82.2475}
	s.SelectPoint(p)

	plan := BuildRenderPlan(s)
	require.Len(t, plan.Markers, 1)
	assert.Equal(t, MarkerSelected, plan.Markers[0].Kind)
	require.NotNil(t, plan.Bounds)
	assert.Equal(t, p, plan.Bounds.Center())

	s.ClearSelection()
	plan = BuildRenderPlan(s)
	assert.Empty(t, plan.Markers)
	assert.Nil(t, plan.Bounds)
}
