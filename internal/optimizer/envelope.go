package optimizer

import (
	"fmt"
	"math"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// EnvelopeSpec bounds what may ship in a padded envelope instead of a
// box, and how flat items are clustered into shared envelopes.
type EnvelopeSpec struct {
	// MaxLength and MaxWidth are the envelope footprint maxima in inches.
	MaxLength float64
	MaxWidth  float64
	// MaxThickness is the largest minimum-dimension an item may have and
	// still count as flat.
	MaxThickness float64
	// MaxWeight caps both a single item and a whole cluster, in pounds.
	MaxWeight float64
	// ThicknessTol is how far an item's thickness may deviate from a
	// cluster's established thickness and still join it.
	ThicknessTol float64
}

// DefaultEnvelopeSpec mirrors common carrier flat-envelope limits.
func DefaultEnvelopeSpec() EnvelopeSpec {
	return EnvelopeSpec{
		MaxLength:    15,
		MaxWidth:     12,
		MaxThickness: 1.0,
		MaxWeight:    2.0,
		ThicknessTol: 0.25,
	}
}

// Eligible reports whether a single item qualifies for envelope
// shipping: flat, light, within the footprint maxima, and not fragile.
func (s EnvelopeSpec) Eligible(it model.Item) bool {
	d := it.Dims.SortedDesc()
	return d[2] <= s.MaxThickness &&
		it.Weight <= s.MaxWeight &&
		d[0] <= s.MaxLength &&
		d[1] <= s.MaxWidth &&
		!it.IsFragile()
}

type envelopeCluster struct {
	// base is the thickness of the opening member and anchors the
	// joinability band; it never moves as thicker members join.
	base      float64
	length    float64
	width     float64
	thickness float64
	weight    float64
	contents  []model.ItemRef
}

func (c *envelopeCluster) add(ref string, spec EnvelopeSpec, d [3]float64, weight float64) {
	c.weight += weight
	c.length = math.Min(math.Max(c.length, d[0]), spec.MaxLength)
	c.width = math.Min(math.Max(c.width, d[1]), spec.MaxWidth)
	if d[2] > c.thickness {
		c.thickness = d[2]
	}
	for i := range c.contents {
		if c.contents[i].ID == ref {
			c.contents[i].Quantity++
			return
		}
	}
	c.contents = append(c.contents, model.ItemRef{ID: ref, Quantity: 1})
}

// groupEnvelopes partitions the item list into envelope clusters and
// pass-through items. Eligible units are scanned in order and join the
// first cluster whose weight budget and thickness band accept them;
// otherwise they open a new cluster. The band is anchored to the
// opening member's thickness, so a run of gradually thicker items
// cannot drag a cluster past the tolerance one step at a time. Each finished cluster becomes one
// synthetic quantity-1 item carrying the member references, so item
// conservation stays auditable through the final plan. Ineligible items
// pass through unchanged.
func groupEnvelopes(items []model.Item, spec EnvelopeSpec) []model.Item {
	var out []model.Item
	var clusters []*envelopeCluster

	for _, it := range items {
		if !spec.Eligible(it) {
			out = append(out, it)
			continue
		}
		d := it.Dims.SortedDesc()
		for unit := 0; unit < it.Quantity; unit++ {
			var target *envelopeCluster
			for _, c := range clusters {
				if c.weight+it.Weight <= spec.MaxWeight && math.Abs(d[2]-c.base) <= spec.ThicknessTol {
					target = c
					break
				}
			}
			if target == nil {
				target = &envelopeCluster{base: d[2], thickness: d[2]}
				clusters = append(clusters, target)
			}
			target.add(it.ID, spec, d, it.Weight)
		}
	}

	for i, c := range clusters {
		out = append(out, model.Item{
			ID:       fmt.Sprintf("envelope-%d", i+1),
			Dims:     model.Dimensions{Length: c.length, Width: c.width, Height: c.thickness},
			Weight:   c.weight,
			Quantity: 1,
			Contents: c.contents,
		})
	}
	return out
}
