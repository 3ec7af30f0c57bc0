package dto

import (
	"testing"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuoteRequest() QuoteRequest {
	return QuoteRequest{
		Boxes: []QuoteBox{
			{BoxID: "large", InnerDims: model.Dimensions{Length: 16, Width: 13, Height: 13}, Weight: 1.6},
		},
		Destination: rate.Destination{Country: "US", PostalCode: "94107"},
	}
}

func TestQuoteRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*QuoteRequest)
		wantField string
	}{
		{
			name:   "valid request passes",
			mutate: func(r *QuoteRequest) {},
		},
		{
			name:      "empty boxes",
			mutate:    func(r *QuoteRequest) { r.Boxes = nil },
			wantField: "boxes",
		},
		{
			name:      "zero box dimension",
			mutate:    func(r *QuoteRequest) { r.Boxes[0].InnerDims.Length = 0 },
			wantField: "boxes[0].innerDims.length",
		},
		{
			name:      "zero weight",
			mutate:    func(r *QuoteRequest) { r.Boxes[0].Weight = 0 },
			wantField: "boxes[0].weight",
		},
		{
			name:      "missing country",
			mutate:    func(r *QuoteRequest) { r.Destination.Country = "" },
			wantField: "destination.country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuoteRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestQuoteRequestPackings(t *testing.T) {
	req := QuoteRequest{
		Boxes: []QuoteBox{
			{BoxID: "a", InnerDims: model.Dimensions{Length: 16, Width: 13, Height: 13}, Weight: 1.6},
			{BoxID: "b", InnerDims: model.Dimensions{Length: 10, Width: 10, Height: 10}, Weight: 9, ChargeableWeight: 12},
		},
	}

	got := req.Packings(139)

	require.Len(t, got, 2)
	// Derived chargeable weight: volume / divisor beats the 1.6 lb actual.
	assert.InDelta(t, 16*13*13/139.0, got[0].DimChargeableWeight, 1e-9)
	// Explicit chargeable weight passes through untouched.
	assert.InDelta(t, 12.0, got[1].DimChargeableWeight, 1e-9)
	assert.InDelta(t, 9.0, got[1].PackedWeight, 1e-9)
}

func TestQuoteRequestPackingsActualWeightFloor(t *testing.T) {
	req := QuoteRequest{
		Boxes: []QuoteBox{
			// Tiny but heavy: actual weight exceeds the volumetric figure.
			{BoxID: "dense", InnerDims: model.Dimensions{Length: 5, Width: 5, Height: 5}, Weight: 20},
		},
	}

	got := req.Packings(139)

	require.Len(t, got, 1)
	assert.InDelta(t, 20.0, got[0].DimChargeableWeight, 1e-9)
}
