package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"houseprices/server/config"
	"houseprices/server/internal/models"
)

func TestMapLayerFeatureCollection(t *testing.T) {
	layer := &models.MapLayerData{
		Region: "Sydney",
		Markers: []models.PropertyMarker{
			{Lat: -33.9, Lng: 151.1, Colour: "green", PopupText: "popup", Price: 450_000},
			{Lat: -33.8, Lng: 151.3, Colour: "red", PopupText: "popup", Price: 2_500_000},
		},
	}

	fc := MapLayerFeatureCollection(layer, 0.15)

	// One feature per marker plus the region extent polygon
	assert.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, "green", first.Properties["colour"])
	assert.Equal(t, 450_000.0, first.Properties["price"])
	point := first.Point()
	assert.Equal(t, 151.1, point.Lon())
	assert.Equal(t, -33.9, point.Lat())

	extent := fc.Features[2]
	assert.Equal(t, "Sydney", extent.Properties["region"])
	assert.Equal(t, "extent", extent.Properties["geometry_type"])
}

func TestRegionBound(t *testing.T) {
	profile := config.LookupRegion("Sydney")
	bound := RegionBound(profile, 0.15)

	assert.InDelta(t, profile.CenterLat-0.15, bound.Min.Lat(), 1e-9)
	assert.InDelta(t, profile.CenterLat+0.15, bound.Max.Lat(), 1e-9)
	assert.InDelta(t, profile.CenterLng-0.15, bound.Min.Lon(), 1e-9)
	assert.InDelta(t, profile.CenterLng+0.15, bound.Max.Lon(), 1e-9)
}

func TestContains(t *testing.T) {
	profile := config.LookupRegion("Sydney")

	assert.True(t, Contains(profile, 0.15, profile.CenterLat, profile.CenterLng))
	assert.True(t, Contains(profile, 0.15, profile.CenterLat+0.1, profile.CenterLng-0.1))
	assert.False(t, Contains(profile, 0.15, profile.CenterLat+0.2, profile.CenterLng))
}
