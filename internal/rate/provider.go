// Package rate translates a finalized shipment plan into carrier rate
// quotes. Providers are pluggable: a static in-process table (the
// no-network fallback) or the EasyPost API. Quoting is strictly
// downstream of packing and never feeds back into it.
package rate

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// Destination is where a shipment is going. Country is an ISO 3166-1
// alpha-2 code; the remaining fields matter only to network providers.
type Destination struct {
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postalCode,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
}

// BoxCharge is the cost attributed to a single box within a quote.
type BoxCharge struct {
	BoxID  string          `json:"boxId"`
	Amount decimal.Decimal `json:"amount"`
}

// Quote is one carrier service option for the whole shipment.
type Quote struct {
	Carrier  string          `json:"carrier"`
	Service  string          `json:"service"`
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	PerBox   []BoxCharge     `json:"perBox"`
}

// Provider quotes carrier rates for a packed box list.
type Provider interface {
	Quote(ctx context.Context, boxes []model.BoxPacking, dest Destination) ([]Quote, error)
}

// NewProvider returns a Provider by name. Unknown names and an
// "easypost" selection without an API key fall back to the static
// table so quoting keeps working without network access.
func NewProvider(name, easyPostAPIKey string, origin Destination) Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easypost":
		if easyPostAPIKey != "" {
			return NewEasyPostProvider(easyPostAPIKey, origin)
		}
		return NewStaticProvider()
	case "static", "":
		return NewStaticProvider()
	default:
		return NewStaticProvider()
	}
}
