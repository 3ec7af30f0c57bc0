// Package config provides configuration management for the shipping
// optimizer service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Optimizer OptimizerConfig
	Rate      RateConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// OptimizerConfig holds packing engine configuration.
type OptimizerConfig struct {
	DimDivisor     float64
	CostWeight     float64
	VoidWeight     float64
	DimWeight      float64
	CountWeight    float64
	MaxLayerRounds int
	// Custom fallback box heuristic
	CustomBoxBaseCost     float64
	CustomBoxMarginIn     float64
	CustomBoxMinMaxWeight float64
}

// RateConfig holds rate provider configuration.
type RateConfig struct {
	// Provider selects the rate backend: "static" or "easypost".
	Provider         string
	EasyPostAPIKey   string
	OriginCountry    string
	OriginPostalCode string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Optimizer: OptimizerConfig{
			DimDivisor:            getEnvFloat("DIM_DIVISOR", 139.0),
			CostWeight:            getEnvFloat("SCORE_COST_WEIGHT", 0.6),
			VoidWeight:            getEnvFloat("SCORE_VOID_WEIGHT", 0.25),
			DimWeight:             getEnvFloat("SCORE_DIM_WEIGHT", 0.1),
			CountWeight:           getEnvFloat("SCORE_COUNT_WEIGHT", 0.05),
			MaxLayerRounds:        getEnvInt("MAX_LAYER_ROUNDS", 256),
			CustomBoxBaseCost:     getEnvFloat("CUSTOM_BOX_BASE_COST", 25.0),
			CustomBoxMarginIn:     getEnvFloat("CUSTOM_BOX_MARGIN_IN", 2.0),
			CustomBoxMinMaxWeight: getEnvFloat("CUSTOM_BOX_MIN_MAX_WEIGHT", 10.0),
		},
		Rate: RateConfig{
			Provider:         getEnv("RATE_PROVIDER", "static"),
			EasyPostAPIKey:   getEnv("EASYPOST_API_KEY", ""),
			OriginCountry:    getEnv("ORIGIN_COUNTRY", "US"),
			OriginPostalCode: getEnv("ORIGIN_POSTAL_CODE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
