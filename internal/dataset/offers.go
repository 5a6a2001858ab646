package dataset

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
)

// SupplierWines generates exactly counts[w] offers for every wine w. Each
// wine draws its suppliers without replacement from a fresh pool of
// 1..suppliers, so a supplier appears at most once per wine but may serve
// many wines.
func (g *Generator) SupplierWines(counts OfferCounts, suppliers int) ([]SupplierWine, []Offer, error) {
	rows := make([]SupplierWine, 0, counts.Total())
	offers := make([]Offer, 0, counts.Total())

	for _, wineID := range counts.WineIDs() {
		candidates := pool.New(fmt.Sprintf("suppliers[wine=%d]", wineID), suppliers, 1, g.s)
		picked, err := candidates.DrawN(counts[wineID])
		if err != nil {
			return nil, nil, err
		}

		for _, supplierID := range picked {
			price := sampleDecimal(g.s.Float(g.bounds.Price.Min, g.bounds.Price.Max), PriceDigits)
			if err := checkDecimal(SupplierWines.Name, "price", price, g.bounds.Price); err != nil {
				return nil, nil, err
			}

			percent := g.s.Int(g.bounds.Percent.Min, g.bounds.Percent.Max)
			if err := checkInt(SupplierWines.Name, "percent", percent, g.bounds.Percent); err != nil {
				return nil, nil, err
			}

			rating := sampleDecimal(g.s.Float(g.bounds.Rating.Min, g.bounds.Rating.Max), RatingDigits)
			if err := checkDecimal(SupplierWines.Name, "rating", rating, g.bounds.Rating); err != nil {
				return nil, nil, err
			}

			row := SupplierWine{
				ID:         OfferID(len(rows) + 1),
				SupplierID: SupplierID(supplierID),
				WineID:     wineID,
				Price:      price,
				Percent:    percent,
				Rating:     rating,
			}
			rows = append(rows, row)
			offers = append(offers, Offer{ID: row.ID, Price: row.Price, Percent: row.Percent})
		}
	}
	return rows, offers, nil
}
