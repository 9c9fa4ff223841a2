package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"houseprices/server/config"
	"houseprices/server/internal/geometry"
	"houseprices/server/internal/heatmap"
	"houseprices/server/internal/models"
	"houseprices/server/internal/service"
	"houseprices/server/internal/synthesizer"
)

type Handler struct {
	service service.PropertyDataService
	cfg     *config.Config
	logger  *logrus.Logger
}

func NewHandler(svc service.PropertyDataService, cfg *config.Config, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		service: svc,
		cfg:     cfg,
		logger:  logger,
	}
}

// defaultRegion is used when a caller omits the region query parameter.
const defaultRegion = "Sydney"

func (h *Handler) regionParam(c *gin.Context) string {
	return c.DefaultQuery("region", defaultRegion)
}

func (h *Handler) GetProperties(c *gin.Context) {
	region := h.regionParam(c)

	properties, err := h.service.GetProperties(region)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")

	property, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) GetHeatmapData(c *gin.Context) {
	region := h.regionParam(c)

	points, err := h.service.GetHeatmapData(region)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get heatmap data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get heatmap data"})
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *Handler) GetMapLayerData(c *gin.Context) {
	region := c.Param("region")

	count := 0
	if countStr := c.Query("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
			return
		}
		count = parsed
	}

	layer, err := h.service.GetMapLayerData(region, count)
	if err != nil {
		if errors.Is(err, synthesizer.ErrInvalidCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
			return
		}
		h.logger.WithError(err).Error("Failed to get map layer data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get map layer data"})
		return
	}

	c.JSON(http.StatusOK, layer)
}

// GetMapLayerGeoJSON returns the same layer as GetMapLayerData, re-shaped as
// a GeoJSON feature collection.
func (h *Handler) GetMapLayerGeoJSON(c *gin.Context) {
	region := c.Param("region")

	layer, err := h.service.GetMapLayerData(region, 0)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get map layer data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get map layer data"})
		return
	}

	c.JSON(http.StatusOK, geometry.MapLayerFeatureCollection(layer, h.cfg.Mock.JitterDegrees))
}

// GetRenderParams returns the heat-layer render options for a point count
// and zoom level. Out-of-range values clamp to the nearest bucket, never
// fail.
func (h *Handler) GetRenderParams(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
		return
	}

	zoom, err := strconv.Atoi(c.DefaultQuery("zoom", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zoom parameter"})
		return
	}

	base := heatmap.BaseRenderParams(count)
	c.JSON(http.StatusOK, gin.H{
		"base":     base,
		"scaled":   heatmap.RescaleForZoom(base, zoom),
		"gradient": heatmap.DefaultGradient,
	})
}

func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": config.RegionNames()})
}

// SearchProperties filters a fresh batch by the criteria in the query
// string. A missing listingType defaults to "Sale"; an explicitly empty one
// matches all listing types.
func (h *Handler) SearchProperties(c *gin.Context) {
	criteria := &models.SearchCriteria{Region: c.Query("region")}

	var parseErr error
	criteria.MinPrice = floatParam(c, "minPrice", &parseErr)
	criteria.MaxPrice = floatParam(c, "maxPrice", &parseErr)
	criteria.MinBedrooms = intParam(c, "minBedrooms", &parseErr)
	criteria.MaxBedrooms = intParam(c, "maxBedrooms", &parseErr)
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters"})
		return
	}

	if propertyType := c.Query("propertyType"); propertyType != "" {
		pt := models.PropertyType(propertyType)
		criteria.PropertyType = &pt
	}

	listingType, present := c.GetQuery("listingType")
	if !present {
		listingType = string(models.ListingSale)
	}
	if listingType != "" {
		lt := models.ListingType(listingType)
		criteria.ListingType = &lt
	}

	properties, err := h.service.Search(criteria)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func floatParam(c *gin.Context, name string, parseErr *error) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = err
		return nil
	}
	return &value
}

func intParam(c *gin.Context, name string, parseErr *error) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*parseErr = err
		return nil
	}
	return &value
}
