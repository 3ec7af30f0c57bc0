// Package optimizer implements the shipment packing engine: orientation
// search, per-box layered 3D packing on top of a 2D guillotine sub-packer,
// envelope pre-grouping of small flat items, and the greedy multi-box
// selection loop.
package optimizer

import "github.com/guttosm/shipping-optimizer/internal/domain/model"

// heightTol absorbs floating-point noise when comparing heights and
// footprint extents.
const heightTol = 1e-6

// Orientations returns the 6 axis-aligned rotations of a cuboid, in a
// fixed order so orientation selection is deterministic.
func Orientations(d model.Dimensions) [6]model.Dimensions {
	l, w, h := d.Length, d.Width, d.Height
	return [6]model.Dimensions{
		{Length: l, Width: w, Height: h},
		{Length: w, Width: l, Height: h},
		{Length: l, Width: h, Height: w},
		{Length: h, Width: l, Height: w},
		{Length: w, Width: h, Height: l},
		{Length: h, Width: w, Height: l},
	}
}

// footprintArea is the area an orientation occupies on a layer floor.
func footprintArea(d model.Dimensions) float64 {
	return d.Length * d.Width
}
