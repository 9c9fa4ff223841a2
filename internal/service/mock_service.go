package service

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"houseprices/server/config"
	"houseprices/server/internal/heatmap"
	"houseprices/server/internal/maplayer"
	"houseprices/server/internal/models"
	"houseprices/server/internal/synthesizer"
)

// MockPropertyDataService synthesizes a fresh dataset on every call, standing
// in for a real listing source. Each request gets its own seeded random
// source, so concurrent requests never interleave draws and tests can pin
// the seed.
type MockPropertyDataService struct {
	cfg    *config.Config
	logger *logrus.Logger

	// seed, when non-nil, makes every call reproducible. Left nil in
	// production so each request draws a fresh dataset.
	seed *int64
}

// NewMockPropertyDataService builds the mock data source. A nil logger gets
// a default JSON logger.
func NewMockPropertyDataService(cfg *config.Config, logger *logrus.Logger) *MockPropertyDataService {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &MockPropertyDataService{cfg: cfg, logger: logger}
}

// SetSeed pins the random seed for every subsequent call. Test-only.
func (s *MockPropertyDataService) SetSeed(seed int64) {
	s.seed = &seed
}

// rng returns the per-request random source.
func (s *MockPropertyDataService) rng() *rand.Rand {
	if s.seed != nil {
		return rand.New(rand.NewSource(*s.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// simulateLatency stands in for the response time of a real upstream source.
func (s *MockPropertyDataService) simulateLatency() {
	if s.cfg.Mock.LatencyMS > 0 {
		time.Sleep(time.Duration(s.cfg.Mock.LatencyMS) * time.Millisecond)
	}
}

func (s *MockPropertyDataService) newSynthesizer(rng *rand.Rand) *synthesizer.Synthesizer {
	synth := synthesizer.NewSynthesizer(rng, s.logger)
	synth.SetJitter(s.cfg.Mock.JitterDegrees)
	return synth
}

// GetProperties returns a fresh batch of records for the region, sized by
// the configured default count.
func (s *MockPropertyDataService) GetProperties(region string) ([]models.Property, error) {
	s.simulateLatency()
	return s.newSynthesizer(s.rng()).Generate(region, s.cfg.Mock.DefaultPropertyCount)
}

// GetHeatmapData returns an absolute-intensity point cloud around the
// region's center. Intensities come from synthetic price draws clipped
// against the fixed ceiling; no comparison set exists on this path.
func (s *MockPropertyDataService) GetHeatmapData(region string) ([]models.HeatmapPoint, error) {
	s.simulateLatency()

	profile := config.LookupRegion(region)
	rng := s.rng()
	jitter := s.cfg.Mock.JitterDegrees

	points := make([]models.HeatmapPoint, s.cfg.Mock.HeatmapCloudSize)
	for i := range points {
		variance := 0.6 + rng.Float64()*0.8
		price := math.Round(profile.BasePrice*variance/10_000) * 10_000
		points[i] = models.HeatmapPoint{
			Lat:       profile.CenterLat + (rng.Float64()-0.5)*2*jitter,
			Lng:       profile.CenterLng + (rng.Float64()-0.5)*2*jitter,
			Intensity: heatmap.AbsoluteIntensity(price),
		}
	}
	return points, nil
}

// GetMapLayerData generates count records for the region and composes the
// full view-model. A count of zero or less falls back to the configured
// default.
func (s *MockPropertyDataService) GetMapLayerData(region string, count int) (*models.MapLayerData, error) {
	if count <= 0 {
		count = s.cfg.Mock.DefaultPropertyCount
	}

	rng := s.rng()
	properties, err := s.newSynthesizer(rng).Generate(region, count)
	if err != nil {
		return nil, err
	}

	layer, err := maplayer.Compose(properties, region, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to compose map layer: %w", err)
	}
	return layer, nil
}

// Search generates a batch for the criteria's region and keeps the records
// matching every bound that is set. A nil listing type matches all listing
// types; the HTTP layer applies the "Sale" default.
func (s *MockPropertyDataService) Search(criteria *models.SearchCriteria) ([]models.Property, error) {
	region := criteria.Region
	if region == "" {
		region = "Sydney"
	}

	properties, err := s.GetProperties(region)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Property, 0, len(properties))
	for i := range properties {
		if criteria.Matches(&properties[i]) {
			matched = append(matched, properties[i])
		}
	}
	return matched, nil
}

// GetByID returns a freshly synthesized record carrying the requested id.
// Ids that do not parse as UUIDs have no corresponding record and report
// ErrNotFound.
func (s *MockPropertyDataService) GetByID(id string) (*models.Property, error) {
	s.simulateLatency()

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	property := s.newSynthesizer(s.rng()).GenerateOne("Sydney")
	property.ID = id
	return &property, nil
}
