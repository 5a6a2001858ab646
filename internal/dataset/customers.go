package dataset

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
)

// BonusCards generates N cards with unique phone numbers.
func (g *Generator) BonusCards() ([]BonusCard, error) {
	phones := sampler.NewUnique("bonus_cards.phone", g.maxAttempts)
	cards := make([]BonusCard, 0, g.count)

	for i := 1; i <= g.count; i++ {
		bonuses := g.s.Int(g.bounds.Bonuses.Min, g.bounds.Bonuses.Max)
		if err := checkInt(BonusCards.Name, "bonuses", bonuses, g.bounds.Bonuses); err != nil {
			return nil, err
		}

		phone, err := phones.Token(g.s, phonePattern)
		if err != nil {
			return nil, err
		}

		cards = append(cards, BonusCard{ID: BonusCardID(i), Bonuses: bonuses, Phone: phone})
	}
	return cards, nil
}

// Customers generates one customer per card left in cards, each holding a
// distinct card.
func (g *Generator) Customers(cards *pool.Pool) ([]Customer, error) {
	customers := make([]Customer, 0, g.count)

	for i := 1; i <= g.count; i++ {
		card, err := cards.Draw()
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", i, err)
		}
		customers = append(customers, Customer{
			ID:          CustomerID(i),
			Name:        g.faker.FirstName(),
			Surname:     g.faker.LastName(),
			BonusCardID: BonusCardID(card),
		})
	}
	return customers, nil
}
