package models

// PropertyMarker is the marker descriptor consumed by the map renderer.
// Field names and colour values are a wire contract.
type PropertyMarker struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Colour    string  `json:"colour"`
	PopupText string  `json:"popup_text"`
	Price     float64 `json:"price"`
}

// HeatmapPoint is one weighted coordinate of the heat layer. Intensity is
// always in [0,1].
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}

// MapLayerData is the aggregate view-model for one region query. It is built
// fresh per request and owned by the caller.
type MapLayerData struct {
	Markers         []PropertyMarker `json:"markers"`
	HeatmapPoints   []HeatmapPoint   `json:"heatmap_points"`
	Region          string           `json:"region"`
	AveragePrice    float64          `json:"average_price"`
	TotalProperties int              `json:"total_properties"`
}

// SearchCriteria is a conjunction of optional bounds. Nil fields do not
// filter. ListingType nil matches all listing types; the HTTP layer applies
// the "Sale" default for callers that omit it.
type SearchCriteria struct {
	Region       string        `json:"region,omitempty"`
	MinPrice     *float64      `json:"min_price,omitempty"`
	MaxPrice     *float64      `json:"max_price,omitempty"`
	MinBedrooms  *int          `json:"min_bedrooms,omitempty"`
	MaxBedrooms  *int          `json:"max_bedrooms,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	ListingType  *ListingType  `json:"listing_type,omitempty"`
}

// Matches reports whether the property satisfies every bound that is set.
func (c *SearchCriteria) Matches(p *Property) bool {
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MaxBedrooms != nil && p.Bedrooms > *c.MaxBedrooms {
		return false
	}
	if c.PropertyType != nil && p.PropertyType != *c.PropertyType {
		return false
	}
	if c.ListingType != nil && p.ListingType != *c.ListingType {
		return false
	}
	return true
}
