package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"houseprices/server/config"
	"houseprices/server/internal/models"
)

// MapLayerFeatureCollection converts a composed map layer into a GeoJSON
// feature collection: one point feature per marker plus one polygon feature
// covering the region's generation extent. Any GeoJSON-aware renderer can
// consume it directly.
func MapLayerFeatureCollection(layer *models.MapLayerData, jitterDegrees float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i := range layer.Markers {
		marker := &layer.Markers[i]
		feature := geojson.NewFeature(orb.Point{marker.Lng, marker.Lat})
		feature.Properties = geojson.Properties{
			"colour":     marker.Colour,
			"popup_text": marker.PopupText,
			"price":      marker.Price,
		}
		fc.Append(feature)
	}

	fc.Append(regionExtentFeature(layer.Region, jitterDegrees))
	return fc
}

// regionExtentFeature builds the bounding polygon inside which all
// synthesized coordinates for the region fall.
func regionExtentFeature(region string, jitterDegrees float64) *geojson.Feature {
	profile := config.LookupRegion(region)
	bound := RegionBound(profile, jitterDegrees)

	feature := geojson.NewFeature(bound.ToPolygon())
	feature.Properties = geojson.Properties{
		"region":        profile.Name,
		"geometry_type": "extent",
	}
	return feature
}

// RegionBound is the geographic box a region's synthesized coordinates are
// drawn from: the registered center padded by the jitter bound on each axis.
func RegionBound(profile config.RegionProfile, jitterDegrees float64) orb.Bound {
	center := orb.Point{profile.CenterLng, profile.CenterLat}
	return orb.Bound{Min: center, Max: center}.Pad(jitterDegrees)
}

// Contains reports whether a coordinate falls inside the region's
// generation extent.
func Contains(profile config.RegionProfile, jitterDegrees, lat, lng float64) bool {
	return RegionBound(profile, jitterDegrees).Contains(orb.Point{lng, lat})
}
