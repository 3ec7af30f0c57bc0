package rate

import (
	"context"
	"fmt"
	"strings"

	"github.com/EasyPost/easypost-go/v5"
	"github.com/shopspring/decimal"

	"github.com/guttosm/shipping-optimizer/internal/domain/model"
)

// EasyPostProvider quotes through the EasyPost API. Each packed box
// becomes one EasyPost shipment; rates are aggregated across boxes by
// carrier and service, and a service is only offered when every box in
// the plan received a rate for it.
type EasyPostProvider struct {
	client *easypost.Client
	origin Destination
}

// NewEasyPostProvider creates an EasyPost-backed provider.
func NewEasyPostProvider(apiKey string, origin Destination) *EasyPostProvider {
	return &EasyPostProvider{
		client: easypost.New(apiKey),
		origin: origin,
	}
}

// Quote creates one shipment per box and merges the returned rates.
func (p *EasyPostProvider) Quote(ctx context.Context, boxes []model.BoxPacking, dest Destination) ([]Quote, error) {
	from := &easypost.Address{
		Country: p.origin.Country,
		Zip:     p.origin.PostalCode,
		State:   p.origin.State,
		City:    p.origin.City,
	}
	to := &easypost.Address{
		Country: dest.Country,
		Zip:     dest.PostalCode,
		State:   dest.State,
		City:    dest.City,
	}

	type bucket struct {
		currency string
		total    decimal.Decimal
		perBox   []BoxCharge
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, box := range boxes {
		shipment, err := p.client.CreateShipmentWithContext(ctx, &easypost.Shipment{
			FromAddress: from,
			ToAddress:   to,
			Parcel: &easypost.Parcel{
				Length: box.InnerDims.Length,
				Width:  box.InnerDims.Width,
				Height: box.InnerDims.Height,
				// EasyPost parcels weigh in ounces.
				Weight: box.PackedWeight * 16,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("easypost: create shipment for box %q: %w", box.BoxID, err)
		}

		for _, r := range shipment.Rates {
			amount, err := decimal.NewFromString(r.Rate)
			if err != nil {
				continue
			}
			key := r.Carrier + "/" + r.Service
			b, ok := buckets[key]
			if !ok {
				b = &bucket{currency: r.Currency}
				buckets[key] = b
				order = append(order, key)
			}
			b.total = b.total.Add(amount)
			b.perBox = append(b.perBox, BoxCharge{BoxID: box.BoxID, Amount: amount})
		}
	}

	quotes := make([]Quote, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		// A service missing for any box cannot ship the whole plan.
		if len(b.perBox) != len(boxes) {
			continue
		}
		carrier, service, _ := strings.Cut(key, "/")
		quotes = append(quotes, Quote{
			Carrier:  carrier,
			Service:  service,
			Currency: b.currency,
			Total:    b.total.Round(2),
			PerBox:   b.perBox,
		})
	}
	return quotes, nil
}
