// Package app provides service initialization.
package app

import (
	"github.com/guttosm/shipping-optimizer/config"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
	"github.com/guttosm/shipping-optimizer/internal/rate"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer    *optimizer.Optimizer
	RateProvider rate.Provider
	// ProviderName labels rate metrics and logs.
	ProviderName string
}

// InitializeServices initializes the packing engine and the rate provider.
func InitializeServices(cfg config.Config) *ServiceComponents {
	opts := []optimizer.Option{
		optimizer.WithDimDivisor(cfg.Optimizer.DimDivisor),
		optimizer.WithScoreWeights(optimizer.ScoreWeights{
			Cost:  cfg.Optimizer.CostWeight,
			Void:  cfg.Optimizer.VoidWeight,
			Dim:   cfg.Optimizer.DimWeight,
			Count: cfg.Optimizer.CountWeight,
		}),
		optimizer.WithCustomBox(optimizer.CustomBoxSpec{
			MarginIn:     cfg.Optimizer.CustomBoxMarginIn,
			BaseCost:     cfg.Optimizer.CustomBoxBaseCost,
			MinMaxWeight: cfg.Optimizer.CustomBoxMinMaxWeight,
		}),
	}
	if cfg.Optimizer.MaxLayerRounds > 0 {
		opts = append(opts, optimizer.WithMaxLayerRounds(cfg.Optimizer.MaxLayerRounds))
	}

	origin := rate.Destination{
		Country:    cfg.Rate.OriginCountry,
		PostalCode: cfg.Rate.OriginPostalCode,
	}

	return &ServiceComponents{
		Optimizer:    optimizer.New(opts...),
		RateProvider: rate.NewProvider(cfg.Rate.Provider, cfg.Rate.EasyPostAPIKey, origin),
		ProviderName: cfg.Rate.Provider,
	}
}
