package model

// FragileMaterials lists material tags that exclude an item from envelope
// shipping regardless of its fragile flag.
var FragileMaterials = map[string]bool{
	"glass":     true,
	"ceramic":   true,
	"porcelain": true,
	"crystal":   true,
}

// Item is a physical product to be packed. Dimensions are in inches,
// weight in pounds. Items are immutable once constructed; the optimizer
// always works on expanded per-unit copies.
type Item struct {
	// ID identifies the product this item was created from
	ID string `json:"id"`
	// Dims are the item's outer dimensions
	Dims Dimensions `json:"dimensions"`
	// Weight is the per-unit weight in pounds
	Weight float64 `json:"weight"`
	// Quantity is the number of identical units to ship
	Quantity int `json:"quantity"`
	// Fragile marks items that must not be grouped into envelopes
	Fragile bool `json:"fragile,omitempty"`
	// Material is an optional material tag ("glass", "cardboard", ...)
	Material string `json:"material,omitempty"`
	// Contents is set on synthetic envelope items and records the
	// original items the envelope carries
	Contents []ItemRef `json:"contents,omitempty"`
}

// ItemRef counts units of an original item inside a synthetic grouping.
type ItemRef struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// IsFragile reports whether the item is flagged fragile or made of a
// fragile material.
func (i Item) IsFragile() bool {
	return i.Fragile || FragileMaterials[i.Material]
}
