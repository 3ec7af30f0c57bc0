package dto

import (
	"testing"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() OptimizeRequest {
	return OptimizeRequest{
		Products: []ProductSpec{
			{ID: "tote", Dimensions: model.Dimensions{Length: 15, Width: 12, Height: 6}, Weight: 0.8, Quantity: 3},
		},
	}
}

func TestOptimizeRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OptimizeRequest)
		wantField string
	}{
		{
			name:   "valid request passes",
			mutate: func(r *OptimizeRequest) {},
		},
		{
			name:      "empty products",
			mutate:    func(r *OptimizeRequest) { r.Products = nil },
			wantField: "products",
		},
		{
			name:      "missing product id",
			mutate:    func(r *OptimizeRequest) { r.Products[0].ID = "" },
			wantField: "products[0].id",
		},
		{
			name:      "zero width",
			mutate:    func(r *OptimizeRequest) { r.Products[0].Dimensions.Width = 0 },
			wantField: "products[0].dimensions.width",
		},
		{
			name:      "negative height",
			mutate:    func(r *OptimizeRequest) { r.Products[0].Dimensions.Height = -2 },
			wantField: "products[0].dimensions.height",
		},
		{
			name:      "zero weight",
			mutate:    func(r *OptimizeRequest) { r.Products[0].Weight = 0 },
			wantField: "products[0].weight",
		},
		{
			name:      "negative quantity",
			mutate:    func(r *OptimizeRequest) { r.Products[0].Quantity = -1 },
			wantField: "products[0].quantity",
		},
		{
			name:   "zero quantity is allowed and defaults to one",
			mutate: func(r *OptimizeRequest) { r.Products[0].Quantity = 0 },
		},
		{
			name: "box without id",
			mutate: func(r *OptimizeRequest) {
				r.Boxes = []BoxSpec{{InnerDims: model.Dimensions{Length: 10, Width: 10, Height: 10}, MaxWeight: 50}}
			},
			wantField: "boxes[0].id",
		},
		{
			name: "box with zero max weight",
			mutate: func(r *OptimizeRequest) {
				r.Boxes = []BoxSpec{{ID: "b", InnerDims: model.Dimensions{Length: 10, Width: 10, Height: 10}}}
			},
			wantField: "boxes[0].maxWeight",
		},
		{
			name: "box with negative cost",
			mutate: func(r *OptimizeRequest) {
				r.Boxes = []BoxSpec{{ID: "b", Cost: -1, InnerDims: model.Dimensions{Length: 10, Width: 10, Height: 10}, MaxWeight: 50}}
			},
			wantField: "boxes[0].cost",
		},
		{
			name: "negative dim divisor",
			mutate: func(r *OptimizeRequest) {
				r.Options = &PlanOptions{DimDivisor: -1}
			},
			wantField: "options.dimDivisor",
		},
		{
			name: "negative score weight",
			mutate: func(r *OptimizeRequest) {
				r.Options = &PlanOptions{Weights: &ScoreWeights{Cost: -0.5}}
			},
			wantField: "options.weights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
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

func TestOptimizeRequestItems(t *testing.T) {
	req := OptimizeRequest{
		Products: []ProductSpec{
			{ID: "a", Dimensions: model.Dimensions{Length: 1, Width: 1, Height: 1}, Weight: 0.5},
			{ID: "b", Dimensions: model.Dimensions{Length: 2, Width: 2, Height: 2}, Weight: 1, Quantity: 4, Material: "glass"},
		},
	}

	items := req.Items()

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity, "omitted quantity defaults to 1")
	assert.Equal(t, 4, items[1].Quantity)
	assert.Equal(t, "glass", items[1].Material)
}

func TestOptimizeRequestCatalog(t *testing.T) {
	req := validRequest()
	assert.Nil(t, req.Catalog(), "no boxes means no catalog override")

	req.Boxes = []BoxSpec{{ID: "crate", Cost: 5, InnerDims: model.Dimensions{Length: 20, Width: 20, Height: 20}, MaxWeight: 100}}
	catalog := req.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, model.BoxType{ID: "crate", Cost: 5, InnerDims: model.Dimensions{Length: 20, Width: 20, Height: 20}, MaxWeight: 100}, catalog[0])
}

func TestPlanOptionsToPlanOptions(t *testing.T) {
	var none *PlanOptions
	assert.Nil(t, none.ToPlanOptions())

	shipSeparately := false
	opts := &PlanOptions{
		DimDivisor:   166,
		Weights:      &ScoreWeights{Cost: 1},
		ShipTogether: &shipSeparately,
	}
	got := opts.ToPlanOptions()
	require.NotNil(t, got)
	assert.InDelta(t, 166.0, got.DimDivisor, 1e-9)
	assert.Equal(t, optimizer.ScoreWeights{Cost: 1}, got.Weights)
	assert.False(t, got.ShipTogether)

	partial := (&PlanOptions{}).ToPlanOptions()
	require.NotNil(t, partial)
	assert.InDelta(t, optimizer.DefaultDimDivisor, partial.DimDivisor, 1e-9)
	assert.True(t, partial.ShipTogether)
	assert.Equal(t, optimizer.DefaultScoreWeights(), partial.Weights)
}
