package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"houseprices/server/config"
	"houseprices/server/internal/service"
)

func SetupRoutes(router *gin.Engine, svc service.PropertyDataService, cfg *config.Config, logger *logrus.Logger) {
	handler := NewHandler(svc, cfg, logger)

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id", handler.GetPropertyByID)
		api.GET("/heatmap", handler.GetHeatmapData)
		api.GET("/map-layer/:region", handler.GetMapLayerData)
		api.GET("/map-layer/:region/geojson", handler.GetMapLayerGeoJSON)
		api.GET("/render-params", handler.GetRenderParams)
		api.GET("/regions", handler.GetRegions)
		api.GET("/search", handler.SearchProperties)
	}
}
