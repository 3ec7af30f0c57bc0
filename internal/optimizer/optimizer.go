package optimizer

import (
	"fmt"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// DefaultCatalog is the standard 7-box catalog, envelope through
// oversize, used when a request does not supply its own box types.
var DefaultCatalog = []model.BoxType{
	{ID: "envelope", Cost: 2.50, InnerDims: model.Dimensions{Length: 15, Width: 12, Height: 1}, MaxWeight: 2},
	{ID: "small", Cost: 4.00, InnerDims: model.Dimensions{Length: 9, Width: 7, Height: 4}, MaxWeight: 20},
	{ID: "medium", Cost: 6.50, InnerDims: model.Dimensions{Length: 13, Width: 11, Height: 7}, MaxWeight: 40},
	{ID: "large", Cost: 9.00, InnerDims: model.Dimensions{Length: 16, Width: 13, Height: 13}, MaxWeight: 50},
	{ID: "xl", Cost: 12.00, InnerDims: model.Dimensions{Length: 19, Width: 15, Height: 15}, MaxWeight: 60},
	{ID: "xxl", Cost: 15.50, InnerDims: model.Dimensions{Length: 23, Width: 19, Height: 17}, MaxWeight: 70},
	{ID: "oversize", Cost: 19.00, InnerDims: model.Dimensions{Length: 28, Width: 22, Height: 20}, MaxWeight: 80},
}

// DefaultDimDivisor is the carrier dimensional-weight divisor
// (cubic inches per pound).
const DefaultDimDivisor = 139.0

// ScoreWeights are the non-negative weights of the trial scoring
// function. Lower total score wins.
type ScoreWeights struct {
	Cost  float64
	Void  float64
	Dim   float64
	Count float64
}

// DefaultScoreWeights favors money over wasted volume over dimensional
// weight over box count.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Cost: 0.6, Void: 0.25, Dim: 0.1, Count: 0.05}
}

// CustomBoxSpec controls the synthesized fallback box used when no
// catalog box can hold a remaining item. The margin and cost heuristic
// is not validated against real carrier minimums, so it stays
// configurable rather than baked in.
type CustomBoxSpec struct {
	// MarginIn is added to each item dimension.
	MarginIn float64
	// BaseCost is the monetary cost assigned to the custom box.
	BaseCost float64
	// MinMaxWeight is the floor for the custom box weight limit; the
	// limit is at least double the item weight.
	MinMaxWeight float64
}

// DefaultCustomBoxSpec returns the fallback box heuristic defaults.
func DefaultCustomBoxSpec() CustomBoxSpec {
	return CustomBoxSpec{MarginIn: 2.0, BaseCost: 25.0, MinMaxWeight: 10.0}
}

// PlanOptions are the per-request knobs of an optimization run.
type PlanOptions struct {
	DimDivisor   float64
	Weights      ScoreWeights
	ShipTogether bool
}

// DefaultPlanOptions returns the options used when a request supplies
// none.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		DimDivisor:   DefaultDimDivisor,
		Weights:      DefaultScoreWeights(),
		ShipTogether: true,
	}
}

// UnpackableError is the fatal packing failure: neither any catalog box
// nor the synthesized custom box can hold an item. No partial plan is
// returned alongside it.
type UnpackableError struct {
	ItemID string
}

func (e *UnpackableError) Error() string {
	return fmt.Sprintf("unable to package item %q: no catalog or custom box can hold it", e.ItemID)
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// Optimizer is the multi-box shipment packing service. It is stateless
// across calls; concurrent Optimize calls need no locking because the
// catalog and items are copied per request.
type Optimizer struct {
	catalog        []model.BoxType
	defaults       PlanOptions
	envelope       EnvelopeSpec
	customBox      CustomBoxSpec
	maxLayerRounds int
}

// New creates an Optimizer with the given options.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		catalog:        append([]model.BoxType(nil), DefaultCatalog...),
		defaults:       DefaultPlanOptions(),
		envelope:       DefaultEnvelopeSpec(),
		customBox:      DefaultCustomBoxSpec(),
		maxLayerRounds: 256,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCatalog replaces the default box catalog.
func WithCatalog(catalog []model.BoxType) Option {
	return func(o *Optimizer) {
		if len(catalog) > 0 {
			o.catalog = append([]model.BoxType(nil), catalog...)
		}
	}
}

// WithDimDivisor sets the dimensional-weight divisor.
func WithDimDivisor(divisor float64) Option {
	return func(o *Optimizer) {
		if divisor > 0 {
			o.defaults.DimDivisor = divisor
		}
	}
}

// WithScoreWeights sets the trial scoring weights.
func WithScoreWeights(w ScoreWeights) Option {
	return func(o *Optimizer) {
		o.defaults.Weights = w
	}
}

// WithEnvelopeSpec sets the envelope pre-grouping limits.
func WithEnvelopeSpec(spec EnvelopeSpec) Option {
	return func(o *Optimizer) {
		o.envelope = spec
	}
}

// WithCustomBox sets the custom fallback box heuristic.
func WithCustomBox(spec CustomBoxSpec) Option {
	return func(o *Optimizer) {
		o.customBox = spec
	}
}

// WithMaxLayerRounds bounds the layered packer's round loop. Pathological
// inputs with many near-identical tiny items otherwise drive excessive
// packing rounds.
func WithMaxLayerRounds(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.maxLayerRounds = n
		}
	}
}

// Optimize packs the given items using the configured catalog and
// default options.
func (o *Optimizer) Optimize(items []model.Item) (*model.ShipmentPlan, error) {
	return o.OptimizeWithCatalog(items, nil, nil)
}

// OptimizeWithCatalog packs the given items, overriding the configured
// catalog and options where the caller supplies them.
func (o *Optimizer) OptimizeWithCatalog(items []model.Item, catalog []model.BoxType, opts *PlanOptions) (*model.ShipmentPlan, error) {
	boxes := o.catalog
	if len(catalog) > 0 {
		boxes = append([]model.BoxType(nil), catalog...)
	}
	po := o.defaults
	if opts != nil {
		po = *opts
		if po.DimDivisor <= 0 {
			po.DimDivisor = o.defaults.DimDivisor
		}
	}

	grouped := groupEnvelopes(items, o.envelope)
	return o.selectBoxes(grouped, boxes, po)
}
