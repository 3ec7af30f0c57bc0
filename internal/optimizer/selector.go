package optimizer

import (
	"math"
	"sort"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// expandInstances flattens items (sorted by total volume descending)
// into the per-unit instance arena. The arena index is each instance's
// stable identity for the rest of the run; instances sharing an item ID
// are fungible, so removal by index is equivalent to the id-and-count
// matching the scoring loop relies on.
func expandInstances(items []model.Item) []*instance {
	sorted := append([]model.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		qi, qj := sorted[i].Quantity, sorted[j].Quantity
		if qi < 1 {
			qi = 1
		}
		if qj < 1 {
			qj = 1
		}
		return sorted[i].Dims.Volume()*float64(qi) > sorted[j].Dims.Volume()*float64(qj)
	})

	var arena []*instance
	for _, it := range sorted {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		for u := 0; u < qty; u++ {
			arena = append(arena, &instance{
				idx:      len(arena),
				id:       it.ID,
				dims:     it.Dims,
				weight:   it.Weight,
				contents: it.Contents,
			})
		}
	}
	return arena
}

// selectBoxes runs the greedy multi-box loop: trial-pack every box type
// against all remaining instances, score the trials, commit the winner,
// remove what it consumed, repeat. Every committed box consumes at
// least one instance, so the loop terminates.
func (o *Optimizer) selectBoxes(items []model.Item, boxes []model.BoxType, po PlanOptions) (*model.ShipmentPlan, error) {
	remaining := expandInstances(items)
	plan := &model.ShipmentPlan{Shipments: []model.BoxPacking{}}

	if !po.ShipTogether {
		for _, in := range remaining {
			t, err := o.bestTrial([]*instance{in}, boxes, po)
			if err != nil {
				return nil, err
			}
			plan.Shipments = append(plan.Shipments, buildPacking(t, po.DimDivisor))
		}
		plan.Summarize()
		return plan, nil
	}

	for len(remaining) > 0 {
		t, err := o.bestTrial(remaining, boxes, po)
		if err != nil {
			return nil, err
		}
		plan.Shipments = append(plan.Shipments, buildPacking(t, po.DimDivisor))
		remaining = removePlaced(remaining, t)
	}
	plan.Summarize()
	return plan, nil
}

// bestTrial packs the remaining instances into every candidate box and
// returns the lowest-scoring successful trial. Weight overflows and
// empty packings simply exclude a box from the round. When nothing
// succeeds, a custom box is synthesized around the first remaining
// instance; if even that fails, packing is impossible.
func (o *Optimizer) bestTrial(remaining []*instance, boxes []model.BoxType, po PlanOptions) (*boxTrial, error) {
	var trials []*boxTrial
	for _, box := range boxes {
		t, err := packBox(box, remaining, o.maxLayerRounds)
		if err != nil || len(t.placements) == 0 {
			continue
		}
		trials = append(trials, t)
	}
	if len(trials) > 0 {
		return pickTrial(trials, po), nil
	}

	first := remaining[0]
	custom := o.customBoxFor(first)
	t, err := packBox(custom, remaining[:1], o.maxLayerRounds)
	if err != nil || len(t.placements) == 0 {
		return nil, &UnpackableError{ItemID: first.id}
	}
	t.custom = true
	return t, nil
}

// customBoxFor synthesizes an oversized single-item box around an
// instance, with a configurable margin, base cost, and weight floor.
func (o *Optimizer) customBoxFor(in *instance) model.BoxType {
	m := o.customBox.MarginIn
	return model.BoxType{
		ID:   "custom-" + in.id,
		Cost: o.customBox.BaseCost,
		InnerDims: model.Dimensions{
			Length: in.dims.Length + m,
			Width:  in.dims.Width + m,
			Height: in.dims.Height + m,
		},
		MaxWeight: math.Max(2*in.weight, o.customBox.MinMaxWeight),
	}
}

// pickTrial scores one round of trials and returns the winner. Cost and
// dimensional weight are min-max normalized across the round (a round
// where every trial shares the same value normalizes to zero instead of
// dividing by zero); void ratio is already in [0,1]; box count is 1 for
// every trial. Lowest score wins, first wins on ties, so rounds are
// deterministic.
func pickTrial(trials []*boxTrial, po PlanOptions) *boxTrial {
	type features struct {
		cost, void, dim float64
	}
	feats := make([]features, len(trials))
	costMin, costMax := math.MaxFloat64, -math.MaxFloat64
	dimMin, dimMax := math.MaxFloat64, -math.MaxFloat64

	for i, t := range trials {
		boxVol := t.box.Volume()
		f := features{
			cost: t.box.Cost,
			void: 1 - t.usedVolume/boxVol,
			dim:  math.Max(boxVol/po.DimDivisor, t.weight),
		}
		feats[i] = f
		costMin = math.Min(costMin, f.cost)
		costMax = math.Max(costMax, f.cost)
		dimMin = math.Min(dimMin, f.dim)
		dimMax = math.Max(dimMax, f.dim)
	}

	normalize := func(v, lo, hi float64) float64 {
		if hi-lo < 1e-12 {
			return 0
		}
		return (v - lo) / (hi - lo)
	}

	best := 0
	bestScore := math.MaxFloat64
	w := po.Weights
	for i, f := range feats {
		score := w.Cost*normalize(f.cost, costMin, costMax) +
			w.Void*f.void +
			w.Dim*normalize(f.dim, dimMin, dimMax) +
			w.Count*1.0
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	return trials[best]
}

// removePlaced filters the arena slice down to instances the committed
// trial did not consume.
func removePlaced(remaining []*instance, t *boxTrial) []*instance {
	placed := make(map[int]bool, len(t.placements))
	for _, p := range t.placements {
		placed[p.inst.idx] = true
	}
	out := remaining[:0]
	for _, in := range remaining {
		if !placed[in.idx] {
			out = append(out, in)
		}
	}
	return out
}

// buildPacking materializes a committed trial into the plan shape,
// computing fill, void, and chargeable weight once.
func buildPacking(t *boxTrial, divisor float64) model.BoxPacking {
	boxVol := t.box.Volume()
	b := model.BoxPacking{
		BoxID:               t.box.ID,
		Cost:                t.box.Cost,
		InnerDims:           t.box.InnerDims,
		BoxVolume:           boxVol,
		UsedVolume:          t.usedVolume,
		FillPercent:         t.usedVolume / boxVol * 100,
		VoidRatio:           1 - t.usedVolume/boxVol,
		PackedWeight:        t.weight,
		DimChargeableWeight: math.Max(boxVol/divisor, t.weight),
		Custom:              t.custom,
		MaxWeight:           t.box.MaxWeight,
		Items:               make([]model.Placement, 0, len(t.placements)),
	}
	for _, p := range t.placements {
		b.Items = append(b.Items, model.Placement{
			ID:       p.inst.id,
			Pos:      model.Position{X: p.x, Y: p.y, Z: p.z},
			Dims:     p.dims,
			Contents: p.inst.contents,
		})
	}
	return b
}
