package synthesizer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"houseprices/server/config"
	"houseprices/server/internal/models"
)

// ErrInvalidCount is returned when a caller asks for a negative number of
// properties.
var ErrInvalidCount = errors.New("property count must not be negative")

// DefaultJitterDegrees bounds the coordinate scatter around a region center.
const DefaultJitterDegrees = 0.15

var streetNames = []string{
	"George", "King", "Queen", "Elizabeth", "Collins",
	"Flinders", "Bourke", "Little", "Spring", "Summer",
}

var streetTypes = []string{
	"Street", "Road", "Avenue", "Lane", "Drive", "Court", "Place",
}

// Synthesizer generates internally consistent mock property records for a
// region. All randomness comes from the injected source, so a seeded
// generator yields a reproducible batch.
type Synthesizer struct {
	rng    *rand.Rand
	logger *logrus.Logger
	jitter float64
}

// NewSynthesizer creates a synthesizer drawing from the given random source.
// A nil logger gets a default JSON logger, matching the API handler setup.
func NewSynthesizer(rng *rand.Rand, logger *logrus.Logger) *Synthesizer {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Synthesizer{
		rng:    rng,
		logger: logger,
		jitter: DefaultJitterDegrees,
	}
}

// SetJitter overrides the coordinate scatter bound in degrees.
func (s *Synthesizer) SetJitter(degrees float64) {
	if degrees > 0 {
		s.jitter = degrees
	}
}

// Generate produces count property records scattered around the region's
// center. Unknown regions use the default profile. A count of zero yields an
// empty slice; a negative count is an error.
func (s *Synthesizer) Generate(region string, count int) ([]models.Property, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	profile := config.LookupRegion(region)
	properties := make([]models.Property, 0, count)

	for i := 0; i < count; i++ {
		properties = append(properties, s.generateOne(profile, i))
	}

	s.logger.WithFields(logrus.Fields{
		"region": profile.Name,
		"count":  count,
	}).Debug("Generated mock properties")

	return properties, nil
}

// GenerateOne produces a single record for the region, used by lookups that
// need a standalone property.
func (s *Synthesizer) GenerateOne(region string) models.Property {
	return s.generateOne(config.LookupRegion(region), 0)
}

func (s *Synthesizer) generateOne(profile config.RegionProfile, index int) models.Property {
	landSize := float64(s.rng.Intn(800) + 200)
	floorSize := float64(s.rng.Intn(270) + 80)

	return models.Property{
		ID:      uuid.NewString(),
		Address: s.generateAddress(),

		Latitude:  profile.CenterLat + (s.rng.Float64()-0.5)*2*s.jitter,
		Longitude: profile.CenterLng + (s.rng.Float64()-0.5)*2*s.jitter,
		Suburb:    profile.Suburbs[s.rng.Intn(len(profile.Suburbs))],
		State:     profile.State,
		PostCode:  fmt.Sprintf("%d", profile.PostcodeBase+s.rng.Intn(profile.PostcodeRange)),

		Bedrooms:     s.rng.Intn(5) + 1,
		Bathrooms:    s.rng.Intn(3) + 1,
		CarSpaces:    s.rng.Intn(3),
		PropertyType: models.PropertyTypes[s.rng.Intn(len(models.PropertyTypes))],
		LandSize:     &landSize,
		FloorSize:    &floorSize,

		Price:       s.generatePrice(profile.BasePrice),
		ListingDate: time.Now().AddDate(0, 0, -s.rng.Intn(365)),
		ListingType: models.ListingTypes[s.rng.Intn(len(models.ListingTypes))],
		Description: "Beautiful property in great location with modern amenities.",

		AgentName:  fmt.Sprintf("Agent %d", index%10+1),
		AgencyName: fmt.Sprintf("Real Estate Agency %d", index%5+1),
	}
}

// generatePrice draws 60% to 140% of the base price, rounded to the nearest
// 10k currency units.
func (s *Synthesizer) generatePrice(basePrice float64) float64 {
	variance := 0.6 + s.rng.Float64()*0.8
	return math.Round(basePrice*variance/10_000) * 10_000
}

func (s *Synthesizer) generateAddress() string {
	return fmt.Sprintf("%d %s %s",
		s.rng.Intn(998)+1,
		streetNames[s.rng.Intn(len(streetNames))],
		streetTypes[s.rng.Intn(len(streetTypes))])
}
