// Package dto defines Data Transfer Objects for HTTP request and
// response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication. The optimize
// request doubles as the CLI input file format.
package dto

import (
	"fmt"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
)

// OptimizeRequest is the JSON body of the optimize endpoint and the CLI
// input file.
//
// @Description Items to pack, optional box catalog override, and optional tuning options
// @Example {"products": [{"id": "tote", "dimensions": {"length": 15, "width": 12, "height": 6}, "weight": 0.8, "quantity": 3}]}
type OptimizeRequest struct {
	// Boxes optionally overrides the server's box catalog.
	Boxes []BoxSpec `json:"boxes,omitempty"`
	// Products is the list of items to pack. Required.
	Products []ProductSpec `json:"products" binding:"required"`
	// Options tunes scoring and consolidation behavior.
	Options *PlanOptions `json:"options,omitempty"`
} // @name OptimizeRequest

// BoxSpec is one candidate box type supplied with a request.
type BoxSpec struct {
	ID        string           `json:"id" binding:"required"`
	Cost      float64          `json:"cost"`
	InnerDims model.Dimensions `json:"innerDims"`
	MaxWeight float64          `json:"maxWeight"`
} // @name BoxSpec

// ProductSpec is one item line of a request.
type ProductSpec struct {
	ID         string           `json:"id" binding:"required"`
	Dimensions model.Dimensions `json:"dimensions"`
	Weight     float64          `json:"weight"`
	// Quantity defaults to 1 when omitted.
	Quantity int    `json:"quantity"`
	Fragile  bool   `json:"fragile,omitempty"`
	Material string `json:"material,omitempty"`
} // @name ProductSpec

// ScoreWeights are the trial scoring weights; all must be non-negative.
type ScoreWeights struct {
	Cost  float64 `json:"cost"`
	Void  float64 `json:"void"`
	Dim   float64 `json:"dim"`
	Count float64 `json:"count"`
} // @name ScoreWeights

// PlanOptions are the optional per-request tuning knobs.
type PlanOptions struct {
	// DimDivisor is the dimensional-weight divisor in cubic inches per
	// pound; 0 keeps the server default.
	DimDivisor float64 `json:"dimDivisor,omitempty"`
	// Weights overrides the scoring weights.
	Weights *ScoreWeights `json:"weights,omitempty"`
	// ShipTogether, when false, packs every item unit into its own box.
	// Defaults to true.
	ShipTogether *bool `json:"shipTogether,omitempty"`
} // @name PlanOptions

// ToPlanOptions maps the request options onto the engine defaults;
// nil when the request carries no options.
func (o *PlanOptions) ToPlanOptions() *optimizer.PlanOptions {
	if o == nil {
		return nil
	}
	po := optimizer.DefaultPlanOptions()
	if o.DimDivisor > 0 {
		po.DimDivisor = o.DimDivisor
	}
	if o.Weights != nil {
		po.Weights = optimizer.ScoreWeights{
			Cost:  o.Weights.Cost,
			Void:  o.Weights.Void,
			Dim:   o.Weights.Dim,
			Count: o.Weights.Count,
		}
	}
	if o.ShipTogether != nil {
		po.ShipTogether = *o.ShipTogether
	}
	return &po
}

// ValidationError reports the first invalid field of a request.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the request field by field and reports the first
// offending field. No packing is attempted on an invalid request.
func (r *OptimizeRequest) Validate() error {
	if len(r.Products) == 0 {
		return &ValidationError{Field: "products", Message: "at least one product is required"}
	}
	for i, p := range r.Products {
		prefix := fmt.Sprintf("products[%d]", i)
		if p.ID == "" {
			return &ValidationError{Field: prefix + ".id", Message: "must not be empty"}
		}
		if err := validateDims(prefix+".dimensions", p.Dimensions); err != nil {
			return err
		}
		if p.Weight <= 0 {
			return &ValidationError{Field: prefix + ".weight", Message: "must be a positive number"}
		}
		if p.Quantity < 0 {
			return &ValidationError{Field: prefix + ".quantity", Message: "must be a positive integer"}
		}
	}
	for i, b := range r.Boxes {
		prefix := fmt.Sprintf("boxes[%d]", i)
		if b.ID == "" {
			return &ValidationError{Field: prefix + ".id", Message: "must not be empty"}
		}
		if err := validateDims(prefix+".innerDims", b.InnerDims); err != nil {
			return err
		}
		if b.Cost < 0 {
			return &ValidationError{Field: prefix + ".cost", Message: "must not be negative"}
		}
		if b.MaxWeight <= 0 {
			return &ValidationError{Field: prefix + ".maxWeight", Message: "must be a positive number"}
		}
	}
	if o := r.Options; o != nil {
		if o.DimDivisor < 0 {
			return &ValidationError{Field: "options.dimDivisor", Message: "must not be negative"}
		}
		if w := o.Weights; w != nil {
			if w.Cost < 0 || w.Void < 0 || w.Dim < 0 || w.Count < 0 {
				return &ValidationError{Field: "options.weights", Message: "weights must not be negative"}
			}
		}
	}
	return nil
}

func validateDims(field string, d model.Dimensions) error {
	if d.Positive() {
		return nil
	}
	if d.Length <= 0 {
		return &ValidationError{Field: field + ".length", Message: "must be a positive number"}
	}
	if d.Width <= 0 {
		return &ValidationError{Field: field + ".width", Message: "must be a positive number"}
	}
	return &ValidationError{Field: field + ".height", Message: "must be a positive number"}
}

// Items converts the request products into domain items, defaulting
// omitted quantities to 1.
func (r *OptimizeRequest) Items() []model.Item {
	items := make([]model.Item, 0, len(r.Products))
	for _, p := range r.Products {
		qty := p.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, model.Item{
			ID:       p.ID,
			Dims:     p.Dimensions,
			Weight:   p.Weight,
			Quantity: qty,
			Fragile:  p.Fragile,
			Material: p.Material,
		})
	}
	return items
}

// Catalog converts the request boxes into domain box types; nil when
// the request does not override the catalog.
func (r *OptimizeRequest) Catalog() []model.BoxType {
	if len(r.Boxes) == 0 {
		return nil
	}
	boxes := make([]model.BoxType, 0, len(r.Boxes))
	for _, b := range r.Boxes {
		boxes = append(boxes, model.BoxType{
			ID:        b.ID,
			Cost:      b.Cost,
			InnerDims: b.InnerDims,
			MaxWeight: b.MaxWeight,
		})
	}
	return boxes
}
