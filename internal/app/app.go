// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/shipping-optimizer/config"
	"github.com/guttosm/shipping-optimizer/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	services := InitializeServices(cfg)

	handler := http.NewHandler(services.Optimizer, services.RateProvider, services.ProviderName, cfg.Optimizer.DimDivisor)
	healthHandler := http.NewHealthHandler()

	routerCfg := http.RouterConfig{
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return http.NewRouter(handler, healthHandler, routerCfg)
}
