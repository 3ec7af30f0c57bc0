package rate

import (
	"context"
	"testing"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packedBox(id string, l, w, h, weight, chargeable float64) model.BoxPacking {
	return model.BoxPacking{
		BoxID:               id,
		InnerDims:           model.Dimensions{Length: l, Width: w, Height: h},
		PackedWeight:        weight,
		DimChargeableWeight: chargeable,
	}
}

func TestStaticProviderQuoteUS(t *testing.T) {
	p := NewStaticProvider()
	boxes := []model.BoxPacking{
		// Billable weight rounds 3.2 lb up to 4 lb.
		packedBox("large", 16, 13, 13, 1.6, 3.2),
	}

	quotes, err := p.Quote(context.Background(), boxes, Destination{Country: "US"})

	require.NoError(t, err)
	require.Len(t, quotes, 4, "one quote per US rate card")

	byService := make(map[string]Quote, len(quotes))
	for _, q := range quotes {
		byService[q.Carrier+"/"+q.Service] = q
	}

	ga, ok := byService["USPS/GroundAdvantage"]
	require.True(t, ok)
	// 4.50 base + 0.55 * 4 lb, no oversize fee at 16 inches.
	assert.True(t, ga.Total.Equal(decimal.RequireFromString("6.70")), "got %s", ga.Total)
	require.Len(t, ga.PerBox, 1)
	assert.Equal(t, "large", ga.PerBox[0].BoxID)
	assert.Equal(t, "USD", ga.Currency)
}

func TestStaticProviderOversizeFee(t *testing.T) {
	p := NewStaticProvider()
	boxes := []model.BoxPacking{
		packedBox("oversize", 28, 22, 20, 10, 10),
	}

	quotes, err := p.Quote(context.Background(), boxes, Destination{Country: "US"})

	require.NoError(t, err)
	for _, q := range quotes {
		if q.Carrier == "USPS" && q.Service == "GroundAdvantage" {
			// 4.50 + 0.55 * 10 + 4.00 oversize surcharge.
			assert.True(t, q.Total.Equal(decimal.RequireFromString("14.00")), "got %s", q.Total)
			return
		}
	}
	t.Fatal("USPS GroundAdvantage quote missing")
}

func TestStaticProviderInternationalFallback(t *testing.T) {
	p := NewStaticProvider()
	boxes := []model.BoxPacking{packedBox("small", 9, 7, 4, 1, 1.8)}

	quotes, err := p.Quote(context.Background(), boxes, Destination{Country: "JP"})

	require.NoError(t, err)
	require.NotEmpty(t, quotes)
	for _, q := range quotes {
		assert.Contains(t, []string{"USPS", "DHL"}, q.Carrier)
	}
}

func TestStaticProviderCountryNormalized(t *testing.T) {
	p := NewStaticProvider()
	boxes := []model.BoxPacking{packedBox("small", 9, 7, 4, 1, 1.8)}

	upper, err := p.Quote(context.Background(), boxes, Destination{Country: "US"})
	require.NoError(t, err)
	lower, err := p.Quote(context.Background(), boxes, Destination{Country: " us "})
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestStaticProviderMultiBoxTotal(t *testing.T) {
	p := NewStaticProvider()
	boxes := []model.BoxPacking{
		packedBox("a", 9, 7, 4, 1, 1.8),
		packedBox("b", 16, 13, 13, 2, 3.2),
	}

	quotes, err := p.Quote(context.Background(), boxes, Destination{Country: "US"})

	require.NoError(t, err)
	for _, q := range quotes {
		require.Len(t, q.PerBox, 2)
		sum := decimal.Zero
		for _, pb := range q.PerBox {
			sum = sum.Add(pb.Amount)
		}
		assert.True(t, q.Total.Equal(sum), "%s/%s total %s != per-box sum %s", q.Carrier, q.Service, q.Total, sum)
	}
}

func TestNewProvider(t *testing.T) {
	origin := Destination{Country: "US", PostalCode: "94107"}

	tests := []struct {
		name       string
		provider   string
		apiKey     string
		wantStatic bool
	}{
		{name: "static by name", provider: "static", wantStatic: true},
		{name: "empty name defaults to static", provider: "", wantStatic: true},
		{name: "unknown name falls back to static", provider: "carrier-x", wantStatic: true},
		{name: "easypost without key falls back to static", provider: "easypost", wantStatic: true},
		{name: "easypost with key", provider: "easypost", apiKey: "EZTK-test", wantStatic: false},
		{name: "name is case insensitive", provider: "EasyPost", apiKey: "EZTK-test", wantStatic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.provider, tt.apiKey, origin)
			_, isStatic := p.(*StaticProvider)
			assert.Equal(t, tt.wantStatic, isStatic)
		})
	}
}
