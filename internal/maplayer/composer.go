package maplayer

import (
	"errors"
	"math/rand"

	"houseprices/server/internal/heatmap"
	"houseprices/server/internal/models"
)

// ErrEmptyBatch is returned when a map layer is requested for zero records;
// the average price is undefined for an empty batch.
var ErrEmptyBatch = errors.New("cannot compose a map layer from zero properties")

// Compose aggregates a batch of properties into the per-region view-model:
// one marker per record, batch-relative heatmap points, average price and
// totals. The random source only feeds the heatmap expansion; marker
// derivation is pure.
func Compose(properties []models.Property, region string, rng *rand.Rand) (*models.MapLayerData, error) {
	if len(properties) == 0 {
		return nil, ErrEmptyBatch
	}

	markers := make([]models.PropertyMarker, len(properties))
	prices := make([]float64, len(properties))
	var totalPrice float64

	for i := range properties {
		p := &properties[i]
		markers[i] = models.PropertyMarker{
			Lat:       p.Latitude,
			Lng:       p.Longitude,
			Colour:    p.MarkerColour(),
			PopupText: p.PopupText(),
			Price:     p.Price,
		}
		prices[i] = p.Price
		totalPrice += p.Price
	}

	return &models.MapLayerData{
		Markers:         markers,
		HeatmapPoints:   heatPoints(properties, prices, rng),
		Region:          region,
		AveragePrice:    totalPrice / float64(len(properties)),
		TotalProperties: len(properties),
	}, nil
}

// heatPoints normalizes prices relative to the batch, shapes them through
// the contrast curve and expands each into a neighbor ring.
func heatPoints(properties []models.Property, prices []float64, rng *rand.Rand) []models.HeatmapPoint {
	intensities := heatmap.NormalizeBatch(prices)

	points := make([]models.HeatmapPoint, len(properties))
	for i := range properties {
		points[i] = models.HeatmapPoint{
			Lat:       properties[i].Latitude,
			Lng:       properties[i].Longitude,
			Intensity: intensities[i],
		}
	}

	return heatmap.Expand(points, rng)
}
