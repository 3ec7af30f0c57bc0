package optimizer

import (
	"errors"
	"math"
	"sort"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// errWeightExceeded marks a box trial that overflowed the box's weight
// limit mid-pack. It never escapes the selector round.
var errWeightExceeded = errors.New("box weight limit exceeded")

// instance is one expanded item unit in the arena. The arena index is
// the instance's stable identity; placement and removal operate on it,
// so identical items stay unambiguous without tag generation.
type instance struct {
	idx      int
	id       string
	dims     model.Dimensions
	weight   float64
	contents []model.ItemRef
}

// placement is an instance placed inside a box trial, in oriented
// dimensions at a concrete position.
type placement struct {
	inst *instance
	dims model.Dimensions
	x, y float64
	z    float64
}

// boxTrial is the outcome of packing a set of instances into one box.
type boxTrial struct {
	box        model.BoxType
	custom     bool
	placements []placement
	usedVolume float64
	weight     float64
}

// bestOrientation picks an instance's preferred orientation for the
// current round: the lowest height that fits the remaining vertical
// space with a footprint inside the box floor, ties broken toward the
// larger footprint area.
func bestOrientation(in *instance, box model.BoxType, remainingHeight float64) (model.Dimensions, bool) {
	var best model.Dimensions
	found := false
	for _, o := range Orientations(in.dims) {
		if o.Height > remainingHeight+heightTol {
			continue
		}
		if o.Length > box.InnerDims.Length+heightTol || o.Width > box.InnerDims.Width+heightTol {
			continue
		}
		if !found {
			best = o
			found = true
			continue
		}
		switch {
		case o.Height < best.Height-heightTol:
			best = o
		case math.Abs(o.Height-best.Height) <= heightTol && footprintArea(o) > footprintArea(best):
			best = o
		}
	}
	return best, found
}

// packBox packs as many of the remaining instances as fit into a single
// box, building horizontal layers. Each round picks the smallest
// preferred orientation height among the remaining instances as the
// shared layer height, hands every instance matching that height to the
// 2D guillotine packer against the box floor, and stacks the layer at
// the current z offset. The round count is bounded so a pathological
// stall (the 2D packer rejecting everything) cannot spin forever; a
// stalled round still advances z by the layer height to guarantee
// progress. Exceeding the box weight limit aborts the whole trial.
func packBox(box model.BoxType, remaining []*instance, maxRounds int) (*boxTrial, error) {
	pool := make([]*instance, len(remaining))
	copy(pool, remaining)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].dims.Volume() > pool[j].dims.Volume()
	})

	trial := &boxTrial{box: box}
	z := 0.0

	for round := 0; round < maxRounds && len(pool) > 0; round++ {
		remHeight := box.InnerDims.Height - z
		if remHeight <= heightTol {
			break
		}

		type layerCand struct {
			inst *instance
			dims model.Dimensions
		}
		var cands []layerCand
		layerH := math.MaxFloat64
		for _, in := range pool {
			o, ok := bestOrientation(in, box, remHeight)
			if !ok {
				continue
			}
			cands = append(cands, layerCand{inst: in, dims: o})
			if o.Height < layerH {
				layerH = o.Height
			}
		}
		if len(cands) == 0 {
			break
		}

		var rects []sheetRect
		var layer []layerCand
		for _, c := range cands {
			if math.Abs(c.dims.Height-layerH) > heightTol {
				continue
			}
			rects = append(rects, sheetRect{ref: len(layer), w: c.dims.Width, l: c.dims.Length})
			layer = append(layer, c)
		}

		res := packSheet(box.InnerDims.Width, box.InnerDims.Length, rects)

		placedIdx := make(map[int]bool, len(res.placed))
		for _, pr := range res.placed {
			c := layer[pr.ref]
			trial.placements = append(trial.placements, placement{
				inst: c.inst,
				dims: c.dims,
				x:    pr.x,
				y:    pr.y,
				z:    z,
			})
			trial.usedVolume += c.dims.Volume()
			trial.weight += c.inst.weight
			if trial.weight > box.MaxWeight+heightTol {
				return nil, errWeightExceeded
			}
			placedIdx[c.inst.idx] = true
		}

		if len(placedIdx) > 0 {
			next := pool[:0]
			for _, in := range pool {
				if !placedIdx[in.idx] {
					next = append(next, in)
				}
			}
			pool = next
		}

		// Advance even on a stalled round (fragmented floor) so the
		// loop always makes vertical progress.
		z += layerH
	}

	return trial, nil
}
