package model

// Position locates a placement inside a box. Z is the cumulative layer
// offset from the box floor; X and Y are the footprint origin reported
// by the 2D packer.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Placement records one packed item unit: which item, at which position,
// in which orientation (Dims are the oriented dimensions).
type Placement struct {
	ID       string     `json:"id"`
	Pos      Position   `json:"pos"`
	Dims     Dimensions `json:"dims"`
	Contents []ItemRef  `json:"contents,omitempty"`
}

// BoxPacking is one chosen box instance with everything packed into it.
// Derived figures (fill, void, chargeable weight) are materialized when
// the trial is committed so the plan serializes directly.
type BoxPacking struct {
	BoxID               string      `json:"boxId"`
	Cost                float64     `json:"cost"`
	InnerDims           Dimensions  `json:"innerDims"`
	BoxVolume           float64     `json:"boxVolume"`
	UsedVolume          float64     `json:"usedVolume"`
	FillPercent         float64     `json:"fillPercent"`
	VoidRatio           float64     `json:"voidRatio"`
	PackedWeight        float64     `json:"packedWeight"`
	DimChargeableWeight float64     `json:"dimChargeableWeight"`
	Custom              bool        `json:"custom,omitempty"`
	Items               []Placement `json:"items"`

	// MaxWeight carries the box weight limit for downstream consumers
	// without appearing in the serialized plan.
	MaxWeight float64 `json:"-"`
}

// PlanSummary aggregates the whole shipment.
type PlanSummary struct {
	TotalBoxes            int     `json:"totalBoxes"`
	TotalCost             float64 `json:"totalCost"`
	TotalActualWeight     float64 `json:"totalActualWeight"`
	TotalChargeableWeight float64 `json:"totalChargeableWeight"`
}

// ShipmentPlan is the optimizer's final output: the ordered list of
// packed boxes plus the aggregate summary.
type ShipmentPlan struct {
	Summary   PlanSummary  `json:"summary"`
	Shipments []BoxPacking `json:"shipments"`
}

// Summarize recomputes the aggregate summary from the shipment list.
func (p *ShipmentPlan) Summarize() {
	s := PlanSummary{TotalBoxes: len(p.Shipments)}
	for _, b := range p.Shipments {
		s.TotalCost += b.Cost
		s.TotalActualWeight += b.PackedWeight
		s.TotalChargeableWeight += b.DimChargeableWeight
	}
	p.Summary = s
}
