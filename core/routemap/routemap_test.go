package routemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dutylog/core/model"
)

var threePoints = model.Route{
	{Lon: -87.62, Lat: 41.88},
	{Lon: -90.0, Lat: 43.0},
	{Lon: -93.26, Lat: 44.98},
}

func TestPositionBoundaries(t *testing.T) {
	first, ok := Position(model.Event{Start: 0}, threePoints, 10)
	require.True(t, ok)
	assert.Equal(t, model.LatLng{Lat: 41.88, Lng: -87.62}, first)

	last, ok := Position(model.Event{Start: 10}, threePoints, 10)
	require.True(t, ok)
	assert.Equal(t, model.LatLng{Lat: 44.98, Lng: -93.26}, last)

	beyond, _ := Position(model.Event{Start: 40}, threePoints, 10)
	assert.Equal(t, last, beyond)
}

func TestPositionNearestIndex(t *testing.T) {
	cases := []struct {
		start float64
		want  int
	}{
		{4.9, 0},
		{5, 1},
		{9.99, 1},
		{-3, 0},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		got, ok := Position(model.Event{Start: c.start}, threePoints, 10)
		require.True(t, ok)
		assert.Equal(t, threePoints[c.want].LatLng(), got, "start %v", c.start)
	}
}

func TestPositionEmptyRoute(t *testing.T) {
	_, ok := Position(model.Event{Start: 3}, nil, 10)
	assert.False(t, ok)
}

func TestTripDuration(t *testing.T) {
	assert.Equal(t, 1.0, TripDuration(nil))
	assert.Equal(t, 1.0, TripDuration([]model.Day{{Events: []model.Event{{Start: 0, Duration: 0.5}}}}))
	days := []model.Day{
		{Events: []model.Event{{Start: 0, Duration: 5}, {Start: 20, Duration: 4}}},
		{Events: []model.Event{{Start: 30, Duration: 2.5}, {Start: 10, Duration: 1}}},
	}
	assert.Equal(t, 32.5, TripDuration(days))
}

func TestBounds(t *testing.T) {
	sw, ne, ok := Bounds(threePoints)
	require.True(t, ok)
	assert.Equal(t, model.LatLng{Lat: 41.88, Lng: -93.26}, sw)
	assert.Equal(t, model.LatLng{Lat: 44.98, Lng: -87.62}, ne)
	_, _, ok = Bounds(nil)
	assert.False(t, ok)
}

func TestEncodeDecodeRoute(t *testing.T) {
	// reference polyline from the encoded polyline algorithm documentation
	const encoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	route, err := DecodeRoute(encoded)
	require.NoError(t, err)
	require.Len(t, route, 3)
	assert.InDelta(t, 38.5, route[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, route[0].Lon, 1e-5)
	assert.InDelta(t, 43.252, route[2].Lat, 1e-5)
	assert.Equal(t, encoded, EncodeRoute(route))
}

func TestMarkersSkipDrive(t *testing.T) {
	trip := model.Trip{
		Route: threePoints,
		Days: []model.Day{{Events: []model.Event{
			{Kind: model.KindDrive, Start: 0, Duration: 5, Distance: 300},
			{Kind: model.KindFuel, Start: 5, Duration: 0.5, Location: "Exit 42"},
			{Kind: model.KindDrive, Start: 5.5, Duration: 4.5},
			{Kind: model.KindDropoff, Start: 10, Duration: 1},
		}}},
	}
	ms := Markers(trip)
	require.Len(t, ms, 3)
	assert.Equal(t, "Start", ms[0].Label)
	assert.Equal(t, threePoints[0].LatLng(), ms[0].Position)

	assert.Equal(t, "fuel @ Exit 42", ms[1].Label)
	assert.Equal(t, "0.5h, 0.0 mi", ms[1].Detail)
	assert.Equal(t, threePoints[0].LatLng(), ms[1].Position)

	assert.Equal(t, "dropoff", ms[2].Label)
	assert.Equal(t, threePoints[1].LatLng(), ms[2].Position)

	assert.Nil(t, Markers(model.Trip{Days: trip.Days}))
}
