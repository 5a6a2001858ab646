package dataset

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
)

// Purchases generates one active purchase per sale total, then N canceled
// purchases with sampled prices. Active rows take customers from active and
// canceled rows from canceled, so neither group repeats a customer.
//
// A purchase does not store the id of its sale. The active purchase at
// position i carries the total of sale i, and sale i stores purchase_id i.
func (g *Generator) Purchases(totals []SaleTotal, active, canceled *pool.Pool) ([]Purchase, error) {
	purchases := make([]Purchase, 0, len(totals)+g.count)

	for _, total := range totals {
		customer, err := active.Draw()
		if err != nil {
			return nil, fmt.Errorf("active purchase for sale %d: %w", total.Sale, err)
		}
		purchases = append(purchases, Purchase{
			ID:         PurchaseID(len(purchases) + 1),
			Price:      total.Price,
			Status:     Active,
			CustomerID: CustomerID(customer),
		})
	}

	for i := 0; i < g.count; i++ {
		customer, err := canceled.Draw()
		if err != nil {
			return nil, fmt.Errorf("canceled purchase %d: %w", i+1, err)
		}

		price := sampleDecimal(g.s.Float(g.bounds.Price.Min, g.bounds.Price.Max), PriceDigits)
		if err := checkDecimal(Purchases.Name, "price", price, g.bounds.Price); err != nil {
			return nil, err
		}

		purchases = append(purchases, Purchase{
			ID:         PurchaseID(len(purchases) + 1),
			Price:      price,
			Status:     Canceled,
			CustomerID: CustomerID(customer),
		})
	}
	return purchases, nil
}
