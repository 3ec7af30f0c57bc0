// Package main is the entry point for the shipping-optimizer service.
//
// @title           Shipping Optimizer API
// @version         1.0.0
// @description     API for packing multi-item shipments into boxes.
//
//	Given a product list, the service chooses box types, item orientations
//	and 3D positions, and returns a costed shipment plan plus optional
//	carrier rate quotes.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/shipping-optimizer
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Shipments
// @tag.description Shipment packing operations
//
// @tag.name        Rates
// @tag.description Carrier rate quoting
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/guttosm/shipping-optimizer/config"
	"github.com/guttosm/shipping-optimizer/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port, cfg.Server.ShutdownTimeout)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
