package models

import (
	"fmt"
	"time"
)

// PropertyType is the physical category of a listing.
type PropertyType string

const (
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
	TypeTownhouse PropertyType = "Townhouse"
	TypeVilla     PropertyType = "Villa"
	TypeUnit      PropertyType = "Unit"
	TypeDuplex    PropertyType = "Duplex"
	TypeStudio    PropertyType = "Studio"
	TypeOther     PropertyType = "Other"
)

// PropertyTypes lists the categories the synthesizer draws from.
var PropertyTypes = []PropertyType{
	TypeHouse, TypeApartment, TypeTownhouse, TypeVilla,
	TypeUnit, TypeDuplex, TypeStudio, TypeOther,
}

// ListingType is the sale status of a listing.
type ListingType string

const (
	ListingSale    ListingType = "Sale"
	ListingRent    ListingType = "Rent"
	ListingSold    ListingType = "Sold"
	ListingAuction ListingType = "Auction"
)

// ListingTypes lists the categories the synthesizer draws from.
var ListingTypes = []ListingType{ListingSale, ListingRent, ListingSold, ListingAuction}

type Property struct {
	ID      string `json:"id"`
	Address string `json:"address"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Suburb    string  `json:"suburb"`
	State     string  `json:"state"`
	PostCode  string  `json:"post_code"`

	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	CarSpaces    int          `json:"car_spaces"`
	PropertyType PropertyType `json:"property_type"`
	LandSize     *float64     `json:"land_size"`  // square meters
	FloorSize    *float64     `json:"floor_size"` // square meters

	Price       float64     `json:"price"`
	ListingDate time.Time   `json:"listing_date"`
	ListingType ListingType `json:"listing_type"`
	Description string      `json:"description,omitempty"`

	AgentName  string `json:"agent_name,omitempty"`
	AgencyName string `json:"agency_name,omitempty"`
}

// Price band thresholds shared by PriceCategory and MarkerColour.
const (
	budgetCeiling   = 500_000
	midRangeCeiling = 1_000_000
	premiumCeiling  = 2_000_000
)

// intensityCeiling is the price at which absolute heatmap intensity saturates.
const intensityCeiling = 3_000_000

// PriceCategory sorts the property into one of four fixed price bands.
func (p *Property) PriceCategory() string {
	switch {
	case p.Price < budgetCeiling:
		return "Budget"
	case p.Price < midRangeCeiling:
		return "Mid-range"
	case p.Price < premiumCeiling:
		return "Premium"
	default:
		return "Luxury"
	}
}

// MarkerColour maps the price category onto the colour names the map
// renderer understands. The string values are a wire contract.
func (p *Property) MarkerColour() string {
	switch p.PriceCategory() {
	case "Budget":
		return "green"
	case "Mid-range":
		return "blue"
	case "Premium":
		return "orange"
	case "Luxury":
		return "red"
	default:
		return "gray"
	}
}

// HeatmapIntensity is the absolute-mode intensity: price clipped against a
// fixed ceiling, in [0,1].
func (p *Property) HeatmapIntensity() float64 {
	intensity := p.Price / intensityCeiling
	if intensity > 1.0 {
		return 1.0
	}
	return intensity
}

// PopupText renders the marker popup markup for this property.
func (p *Property) PopupText() string {
	return fmt.Sprintf("<strong>%s</strong><br/>Price: $%s<br/>%dbed %dbath<br/>%s",
		p.Address, formatPrice(p.Price), p.Bedrooms, p.Bathrooms, p.PropertyType)
}

// IsNewListing reports whether the listing date falls within the trailing
// 30-day window.
func (p *Property) IsNewListing() bool {
	return p.ListingDate.After(time.Now().AddDate(0, 0, -30))
}

// PricePerSqm formats the floor-size-relative price, or "N/A" when no floor
// size is known.
func (p *Property) PricePerSqm() string {
	if p.FloorSize == nil || *p.FloorSize <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%s/m²", formatPrice(p.Price / *p.FloorSize))
}

// formatPrice renders a currency amount with thousands separators and no
// decimal places.
func formatPrice(amount float64) string {
	whole := int64(amount + 0.5)
	s := fmt.Sprintf("%d", whole)
	if whole < 1000 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, byte(c))
	}
	return string(out)
}
