package dto

import (
	"fmt"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/rate"
)

// QuoteRequest asks for carrier rate quotes for an already-packed box
// list. Boxes usually come straight from a plan's shipments.
//
// @Description Packed boxes and a destination to quote carrier rates for
type QuoteRequest struct {
	Boxes       []QuoteBox       `json:"boxes" binding:"required"`
	Destination rate.Destination `json:"destination" binding:"required"`
} // @name QuoteRequest

// QuoteBox is the subset of a packed box that rating needs.
type QuoteBox struct {
	BoxID     string           `json:"boxId"`
	InnerDims model.Dimensions `json:"innerDims"`
	Weight    float64          `json:"weight"`
	// ChargeableWeight is optional; when 0 it is derived from the box
	// volume and the default dimensional divisor.
	ChargeableWeight float64 `json:"chargeableWeight,omitempty"`
} // @name QuoteBox

// Validate checks the quote request and reports the first offending
// field.
func (r *QuoteRequest) Validate() error {
	if len(r.Boxes) == 0 {
		return &ValidationError{Field: "boxes", Message: "at least one box is required"}
	}
	for i, b := range r.Boxes {
		prefix := fmt.Sprintf("boxes[%d]", i)
		if err := validateDims(prefix+".innerDims", b.InnerDims); err != nil {
			return err
		}
		if b.Weight <= 0 {
			return &ValidationError{Field: prefix + ".weight", Message: "must be a positive number"}
		}
	}
	if r.Destination.Country == "" {
		return &ValidationError{Field: "destination.country", Message: "must not be empty"}
	}
	return nil
}

// Packings converts the quote boxes into the plan shape the rate
// providers consume, deriving chargeable weight where it was omitted.
func (r *QuoteRequest) Packings(dimDivisor float64) []model.BoxPacking {
	boxes := make([]model.BoxPacking, 0, len(r.Boxes))
	for _, b := range r.Boxes {
		chargeable := b.ChargeableWeight
		if chargeable <= 0 {
			chargeable = b.InnerDims.Volume() / dimDivisor
			if b.Weight > chargeable {
				chargeable = b.Weight
			}
		}
		boxes = append(boxes, model.BoxPacking{
			BoxID:               b.BoxID,
			InnerDims:           b.InnerDims,
			BoxVolume:           b.InnerDims.Volume(),
			PackedWeight:        b.Weight,
			DimChargeableWeight: chargeable,
		})
	}
	return boxes
}
