package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"houseprices/server/config"
	"houseprices/server/internal/models"
	"houseprices/server/internal/service"
)

// MockDataService is a mock implementation of service.PropertyDataService
type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) GetProperties(region string) ([]models.Property, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockDataService) GetHeatmapData(region string) ([]models.HeatmapPoint, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HeatmapPoint), args.Error(1)
}

func (m *MockDataService) GetMapLayerData(region string, count int) (*models.MapLayerData, error) {
	args := m.Called(region, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MapLayerData), args.Error(1)
}

func (m *MockDataService) Search(criteria *models.SearchCriteria) ([]models.Property, error) {
	args := m.Called(criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockDataService) GetByID(id string) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func setupTestRouter(svc service.PropertyDataService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Mock.JitterDegrees = 0.15

	router := gin.New()
	SetupRoutes(router, svc, cfg, nil)
	return router
}

func TestGetProperties_DefaultsToSydney(t *testing.T) {
	mockSvc := &MockDataService{}
	mockSvc.On("GetProperties", "Sydney").Return([]models.Property{{ID: "a"}}, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/properties", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetProperties_RegionParam(t *testing.T) {
	mockSvc := &MockDataService{}
	mockSvc.On("GetProperties", "Melbourne").Return([]models.Property{}, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/properties?region=Melbourne", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	mockSvc := &MockDataService{}
	mockSvc.On("GetByID", "bogus").Return(nil, service.ErrNotFound).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/properties/bogus", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetMapLayerData(t *testing.T) {
	layer := &models.MapLayerData{Region: "Sydney", TotalProperties: 2}
	mockSvc := &MockDataService{}
	mockSvc.On("GetMapLayerData", "Sydney", 50).Return(layer, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/map-layer/Sydney?count=50", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.MapLayerData
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Sydney", got.Region)
	assert.Equal(t, 2, got.TotalProperties)
	mockSvc.AssertExpectations(t)
}

func TestGetMapLayerData_InvalidCount(t *testing.T) {
	mockSvc := &MockDataService{}

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/map-layer/Sydney?count=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetMapLayerData", mock.Anything, mock.Anything)
}

func TestGetRenderParams(t *testing.T) {
	router := setupTestRouter(&MockDataService{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/render-params?count=100&zoom=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Base struct {
			Radius float64 `json:"radius"`
			Blur   float64 `json:"blur"`
		} `json:"base"`
		Scaled struct {
			Radius float64 `json:"radius"`
			Blur   float64 `json:"blur"`
		} `json:"scaled"`
		Gradient map[string]string `json:"gradient"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 40.0, body.Base.Radius)
	assert.Equal(t, 30.0, body.Base.Blur)
	// zoom 9 doubles radius and blur
	assert.Equal(t, 80.0, body.Scaled.Radius)
	assert.Equal(t, 60.0, body.Scaled.Blur)
	assert.Equal(t, "#ff0000", body.Gradient["1.0"])
}

func TestSearchProperties_DefaultListingType(t *testing.T) {
	mockSvc := &MockDataService{}
	mockSvc.On("Search", mock.MatchedBy(func(c *models.SearchCriteria) bool {
		return c.ListingType != nil && *c.ListingType == models.ListingSale
	})).Return([]models.Property{}, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search?minPrice=1000000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSearchProperties_ExplicitEmptyListingTypeMatchesAll(t *testing.T) {
	mockSvc := &MockDataService{}
	mockSvc.On("Search", mock.MatchedBy(func(c *models.SearchCriteria) bool {
		return c.ListingType == nil &&
			c.MinPrice != nil && *c.MinPrice == 1_000_000
	})).Return([]models.Property{}, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search?minPrice=1000000&listingType=", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSearchProperties_InvalidParams(t *testing.T) {
	router := setupTestRouter(&MockDataService{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search?minPrice=lots", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRegions(t *testing.T) {
	router := setupTestRouter(&MockDataService{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/regions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Regions []string `json:"regions"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Regions, "Sydney")
}

func TestGetHeatmapData(t *testing.T) {
	points := []models.HeatmapPoint{{Lat: -33.8, Lng: 151.2, Intensity: 0.4}}
	mockSvc := &MockDataService{}
	mockSvc.On("GetHeatmapData", "Brisbane").Return(points, nil).Once()

	router := setupTestRouter(mockSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/heatmap?region=Brisbane", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.HeatmapPoint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, 0.4, got[0].Intensity)
	mockSvc.AssertExpectations(t)
}
