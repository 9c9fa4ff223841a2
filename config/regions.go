package config

import (
	"sort"
	"strings"
	"sync"
)

// RegionProfile holds the static geographic and pricing metadata for a named
// region. Profiles are read-only once loaded.
type RegionProfile struct {
	Name          string   `json:"name"`
	CenterLat     float64  `json:"center_lat"`
	CenterLng     float64  `json:"center_lng"`
	BasePrice     float64  `json:"base_price"`
	Suburbs       []string `json:"suburbs"`
	State         string   `json:"state"`
	PostcodeBase  int      `json:"postcode_base"`
	PostcodeRange int      `json:"postcode_range"`
}

// defaultSuburbs is used for regions without a curated suburb list.
var defaultSuburbs = []string{"Central", "North", "South", "East", "West"}

var (
	regionLock sync.RWMutex

	// regionProfiles is the shipped region table, keyed by lower-cased name.
	// LoadRegionOverrides may add or replace entries at startup.
	regionProfiles = map[string]RegionProfile{
		"sydney": {
			Name:      "Sydney",
			CenterLat: -33.8688, CenterLng: 151.2093,
			BasePrice: 1_200_000,
			Suburbs: []string{
				"Bondi", "Surry Hills", "Paddington", "Newtown",
				"Manly", "Chatswood", "Parramatta",
			},
			State:        "NSW",
			PostcodeBase: 2000, PostcodeRange: 300,
		},
		"melbourne": {
			Name:      "Melbourne",
			CenterLat: -37.8136, CenterLng: 144.9631,
			BasePrice: 950_000,
			Suburbs: []string{
				"Richmond", "Fitzroy", "St Kilda", "Prahran",
				"Carlton", "Toorak", "South Yarra",
			},
			State:        "VIC",
			PostcodeBase: 3000, PostcodeRange: 200,
		},
		"brisbane": {
			Name:      "Brisbane",
			CenterLat: -27.4698, CenterLng: 153.0251,
			BasePrice: 750_000,
			Suburbs: []string{
				"Fortitude Valley", "New Farm", "West End",
				"Paddington", "Kangaroo Point", "Teneriffe",
			},
			State:        "QLD",
			PostcodeBase: 4000, PostcodeRange: 200,
		},
		"perth": {
			Name:      "Perth",
			CenterLat: -31.9505, CenterLng: 115.8605,
			BasePrice:    650_000,
			Suburbs:      defaultSuburbs,
			State:        "WA",
			PostcodeBase: 6000, PostcodeRange: 200,
		},
		"adelaide": {
			Name:      "Adelaide",
			CenterLat: -34.9285, CenterLng: 138.6007,
			BasePrice:    600_000,
			Suburbs:      defaultSuburbs,
			State:        "SA",
			PostcodeBase: 5000, PostcodeRange: 200,
		},
	}

	// fallbackProfile is returned for unknown region names. It keeps the
	// Sydney center so an unrecognised query still lands somewhere sensible
	// on the map.
	fallbackProfile = RegionProfile{
		Name:      "Sydney",
		CenterLat: -33.8688, CenterLng: 151.2093,
		BasePrice:    800_000,
		Suburbs:      defaultSuburbs,
		State:        "NSW",
		PostcodeBase: 2000, PostcodeRange: 1,
	}
)

// LookupRegion returns the profile for a region name. Matching is
// case-insensitive; unknown names fall back to the default profile rather
// than failing.
func LookupRegion(name string) RegionProfile {
	regionLock.RLock()
	defer regionLock.RUnlock()

	if profile, ok := regionProfiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return profile
	}
	return fallbackProfile
}

// RegionNames returns the names of all registered regions, sorted.
func RegionNames() []string {
	regionLock.RLock()
	defer regionLock.RUnlock()

	names := make([]string, 0, len(regionProfiles))
	for _, profile := range regionProfiles {
		names = append(names, profile.Name)
	}
	sort.Strings(names)
	return names
}
