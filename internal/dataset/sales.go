package dataset

import (
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
	"github.com/shopspring/decimal"
)

// Sales generates N sales, each from an offer picked with replacement.
// The returned totals reuse the stored selling price so purchases match the
// sales table exactly.
func (g *Generator) Sales(offers []Offer) ([]Sale, []SaleTotal, error) {
	if len(offers) == 0 {
		return nil, nil, ErrNoOffers
	}

	sales := make([]Sale, 0, g.count)
	totals := make([]SaleTotal, 0, g.count)

	for i := 1; i <= g.count; i++ {
		offer := sampler.Pick(g.s, offers)

		selling := SellingPrice(offer.Price, offer.Percent)
		margin := selling.Sub(offer.Price)

		costs := sampleDecimal(g.s.Float(g.bounds.Costs.Min, g.bounds.Costs.Max), CostsDigits)
		if err := checkDecimal(Sales.Name, "costs", costs, g.bounds.Costs); err != nil {
			return nil, nil, err
		}

		quantity := g.s.Int(g.bounds.Quantity.Min, g.bounds.Quantity.Max)
		if err := checkInt(Sales.Name, "wine_number", quantity, g.bounds.Quantity); err != nil {
			return nil, nil, err
		}
		qty := decimal.NewFromInt(int64(quantity))

		s := Sale{
			ID:            SaleID(i),
			PurchasePrice: offer.Price,
			SellingPrice:  selling,
			Margin:        margin,
			Costs:         costs,
			Profit:        margin.Sub(costs).Mul(qty),
			Quantity:      quantity,
			Date:          g.faker.Date(g.dateFrom, g.dateTo),
			PurchaseID:    PurchaseID(i),
			OfferID:       offer.ID,
		}
		sales = append(sales, s)
		totals = append(totals, SaleTotal{Sale: s.ID, Price: selling.Mul(qty)})
	}
	return sales, totals, nil
}
