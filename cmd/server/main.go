package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"houseprices/server/config"
	"houseprices/server/internal/api"
	"houseprices/server/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Merge optional region profiles over the built-in table
	if cfg.RegionOverridesPath != "" {
		logger.Infof("Loading region overrides from: %s", cfg.RegionOverridesPath)
		if err := config.LoadRegionOverrides(cfg.RegionOverridesPath); err != nil {
			logger.WithError(err).Fatal("Failed to load region overrides")
		}
	}

	svc := service.NewMockPropertyDataService(cfg, logger)

	router := gin.Default()
	router.Use(cors.Default())

	api.SetupRoutes(router, svc, cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Starting server on port %d", cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
