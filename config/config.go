package config

import "github.com/caarlos0/env/v6"

type Config struct {
    // Server configuration
    Server struct {
        // Port the HTTP API listens on
        Port int `env:"SERVER_PORT" envDefault:"5250"`
    }

    // Mock data source configuration
    Mock struct {
        // Number of properties generated for a plain region query
        DefaultPropertyCount int `env:"MOCK_PROPERTY_COUNT" envDefault:"100"`

        // Number of points in the standalone heatmap cloud
        HeatmapCloudSize int `env:"MOCK_HEATMAP_POINTS" envDefault:"500"`

        // Artificial response latency in milliseconds (0 disables it)
        LatencyMS int `env:"MOCK_LATENCY_MS" envDefault:"0"`

        // Coordinate jitter bound around the region center, in degrees
        JitterDegrees float64 `env:"MOCK_JITTER_DEGREES" envDefault:"0.15"`
    }

    // Optional JSON file with extra region profiles
    RegionOverridesPath string `env:"REGION_OVERRIDES_PATH"`
}

func LoadConfig() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, err
    }
    return cfg, nil
}
