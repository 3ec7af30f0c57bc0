package rate

import (
	"context"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// rateCard is one row of the static rate table: base price plus a
// per-pound charge on billable weight, with a surcharge for boxes whose
// longest side exceeds the oversize threshold.
type rateCard struct {
	carrier        string
	service        string
	currency       string
	base           decimal.Decimal
	perPound       decimal.Decimal
	oversizeFee    decimal.Decimal
	oversizeOverIn float64
}

func usd(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// defaultRateTable is keyed by destination country; "*" is the
// international fallback. Values are indicative, not any carrier's
// published tariff.
var defaultRateTable = map[string][]rateCard{
	"US": {
		{carrier: "USPS", service: "GroundAdvantage", currency: "USD", base: usd("4.50"), perPound: usd("0.55"), oversizeFee: usd("4.00"), oversizeOverIn: 22},
		{carrier: "USPS", service: "PriorityMail", currency: "USD", base: usd("8.10"), perPound: usd("0.75"), oversizeFee: usd("4.00"), oversizeOverIn: 22},
		{carrier: "UPS", service: "Ground", currency: "USD", base: usd("7.25"), perPound: usd("0.65"), oversizeFee: usd("6.50"), oversizeOverIn: 22},
		{carrier: "FedEx", service: "HomeDelivery", currency: "USD", base: usd("7.60"), perPound: usd("0.70"), oversizeFee: usd("6.00"), oversizeOverIn: 22},
	},
	"CA": {
		{carrier: "USPS", service: "PriorityInternational", currency: "USD", base: usd("14.25"), perPound: usd("1.40"), oversizeFee: usd("8.00"), oversizeOverIn: 22},
		{carrier: "UPS", service: "Standard", currency: "USD", base: usd("12.80"), perPound: usd("1.10"), oversizeFee: usd("9.00"), oversizeOverIn: 22},
	},
	"*": {
		{carrier: "USPS", service: "PriorityInternational", currency: "USD", base: usd("22.50"), perPound: usd("2.20"), oversizeFee: usd("12.00"), oversizeOverIn: 22},
		{carrier: "DHL", service: "ExpressWorldwide", currency: "USD", base: usd("28.00"), perPound: usd("2.60"), oversizeFee: usd("14.00"), oversizeOverIn: 22},
	},
}

// StaticProvider quotes from an in-process rate table. It issues no
// I/O and is the default provider.
type StaticProvider struct {
	table map[string][]rateCard
}

// NewStaticProvider creates a StaticProvider backed by the default table.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{table: defaultRateTable}
}

// Quote prices every rate card available for the destination country.
// Billable weight per box is the chargeable weight rounded up to the
// next whole pound.
func (p *StaticProvider) Quote(_ context.Context, boxes []model.BoxPacking, dest Destination) ([]Quote, error) {
	cards, ok := p.table[strings.ToUpper(strings.TrimSpace(dest.Country))]
	if !ok {
		cards = p.table["*"]
	}

	quotes := make([]Quote, 0, len(cards))
	for _, card := range cards {
		q := Quote{
			Carrier:  card.carrier,
			Service:  card.service,
			Currency: card.currency,
			PerBox:   make([]BoxCharge, 0, len(boxes)),
		}
		total := decimal.Zero
		for _, box := range boxes {
			billable := math.Ceil(math.Max(box.DimChargeableWeight, box.PackedWeight))
			amount := card.base.Add(card.perPound.Mul(decimal.NewFromFloat(billable)))
			if box.InnerDims.SortedDesc()[0] > card.oversizeOverIn {
				amount = amount.Add(card.oversizeFee)
			}
			amount = amount.Round(2)
			q.PerBox = append(q.PerBox, BoxCharge{BoxID: box.BoxID, Amount: amount})
			total = total.Add(amount)
		}
		q.Total = total.Round(2)
		quotes = append(quotes, q)
	}
	return quotes, nil
}
