package heatmap

import (
	"math"
	"math/rand"

	"houseprices/server/internal/models"
)

// lngSpreadFactor widens longitude offsets relative to latitude offsets,
// compensating for meridian convergence at mid-latitudes.
const lngSpreadFactor = 1.2

// expansionBucket pairs a neighbor count with a geographic spread. Sparse
// inputs get more synthetic coverage per real point; dense inputs already
// provide coverage and too many synthetic points would blur real signal.
type expansionBucket struct {
	neighbors int
	spread    float64
}

func expansionFor(totalPoints int) expansionBucket {
	switch {
	case totalPoints < 50:
		return expansionBucket{neighbors: 8, spread: 0.015}
	case totalPoints < 200:
		return expansionBucket{neighbors: 5, spread: 0.01}
	default:
		return expansionBucket{neighbors: 3, spread: 0.007}
	}
}

// Expand emits every input point unchanged plus a ring of jittered neighbor
// points around it, so sparse data still renders as continuous heat. Neighbor
// count and spread depend on the total input size; neighbor intensity is a
// random fraction (40-70%) of the seed point's.
func Expand(points []models.HeatmapPoint, rng *rand.Rand) []models.HeatmapPoint {
	if len(points) == 0 {
		return nil
	}

	bucket := expansionFor(len(points))
	expanded := make([]models.HeatmapPoint, 0, len(points)*(bucket.neighbors+1))

	for _, point := range points {
		expanded = append(expanded, point)

		for i := 0; i < bucket.neighbors; i++ {
			angle := float64(i) / float64(bucket.neighbors) * 2 * math.Pi
			distance := bucket.spread * (0.5 + rng.Float64()*0.5)

			expanded = append(expanded, models.HeatmapPoint{
				Lat:       point.Lat + math.Cos(angle)*distance,
				Lng:       point.Lng + math.Sin(angle)*distance*lngSpreadFactor,
				Intensity: point.Intensity * (0.4 + rng.Float64()*0.3),
			})
		}
	}

	return expanded
}
