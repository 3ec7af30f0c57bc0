// Package model defines the core domain entities for the shipping optimizer.
package model

// Dimensions describes an axis-aligned cuboid in inches.
//
// @Description Length, width and height of a cuboid in inches
// @Example {"length": 15, "width": 12, "height": 6}
type Dimensions struct {
	// Length is the extent along the box length axis
	Length float64 `json:"length" example:"15"`
	// Width is the extent along the box width axis
	Width float64 `json:"width" example:"12"`
	// Height is the vertical extent
	Height float64 `json:"height" example:"6"`
}

// Volume returns the cuboid volume in cubic inches.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// SortedDesc returns the three extents ordered largest to smallest.
func (d Dimensions) SortedDesc() [3]float64 {
	s := [3]float64{d.Length, d.Width, d.Height}
	if s[0] < s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] < s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] < s[1] {
		s[0], s[1] = s[1], s[0]
	}
	return s
}

// Positive reports whether all three extents are strictly positive.
func (d Dimensions) Positive() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}
