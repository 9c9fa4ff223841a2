package service

import (
	"errors"

	"houseprices/server/internal/models"
)

// ErrNotFound is returned when a property id has no corresponding record.
var ErrNotFound = errors.New("property not found")

// PropertyDataService is the query surface consumed by the API layer. The
// mock implementation re-randomizes on every call, so repeated calls for the
// same region return different records.
type PropertyDataService interface {
	GetProperties(region string) ([]models.Property, error)
	GetHeatmapData(region string) ([]models.HeatmapPoint, error)
	GetMapLayerData(region string, count int) (*models.MapLayerData, error)
	Search(criteria *models.SearchCriteria) ([]models.Property, error)
	GetByID(id string) (*models.Property, error)
}
