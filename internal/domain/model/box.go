package model

// BoxType is one entry of the shipping box catalog. The catalog is
// read-only to the optimizer; trial packings always work on copies.
//
// @Description Candidate shipping box with inner dimensions, cost and weight limit
// @Example {"id": "large", "cost": 9.0, "innerDims": {"length": 16, "width": 13, "height": 13}, "maxWeight": 50}
type BoxType struct {
	// ID identifies the box type ("envelope", "small", ...)
	ID string `json:"id"`
	// Cost is the monetary cost of using one box of this type
	Cost float64 `json:"cost"`
	// InnerDims are the usable interior dimensions
	InnerDims Dimensions `json:"innerDims"`
	// MaxWeight is the maximum payload weight in pounds
	MaxWeight float64 `json:"maxWeight"`
}

// Volume returns the interior volume of the box in cubic inches.
func (b BoxType) Volume() float64 {
	return b.InnerDims.Volume()
}
