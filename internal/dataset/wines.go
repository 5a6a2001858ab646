package dataset

import (
	"sort"

	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
)

// OfferCounts maps each wine to the number of supplier offers it must get.
type OfferCounts map[WineID]int

// WineIDs returns the keys in ascending order.
func (c OfferCounts) WineIDs() []WineID {
	ids := make([]WineID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c OfferCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Wines generates N wines. The kind is drawn from the vocabulary of the
// drawn color.
func (g *Generator) Wines() ([]Wine, OfferCounts, error) {
	wines := make([]Wine, 0, g.count)
	counts := make(OfferCounts, g.count)

	for i := 1; i <= g.count; i++ {
		color := sampler.Pick(g.s, Colors)
		sugar := sampler.Pick(g.s, Sugars)
		volume := sampler.Pick(g.s, Volumes)

		alcohol := sampleDecimal(g.s.Float(g.bounds.Alcohol.Min, g.bounds.Alcohol.Max), AlcoholDigits)
		if err := checkDecimal(Wines.Name, "alcohol", alcohol, g.bounds.Alcohol); err != nil {
			return nil, nil, err
		}

		aging := g.s.Int(g.bounds.Aging.Min, g.bounds.Aging.Max)
		if err := checkInt(Wines.Name, "aging", aging, g.bounds.Aging); err != nil {
			return nil, nil, err
		}

		required := g.s.Int(g.bounds.OfferCount.Min, g.bounds.OfferCount.Max)
		if err := checkInt(Wines.Name, "number", required, g.bounds.OfferCount); err != nil {
			return nil, nil, err
		}

		w := Wine{
			ID:             WineID(i),
			Kind:           sampler.Pick(g.s, KindsByColor[color]),
			Color:          color,
			Sugar:          sugar,
			Volume:         volume,
			Alcohol:        alcohol,
			Aging:          aging,
			RequiredOffers: required,
		}
		wines = append(wines, w)
		counts[w.ID] = required
	}
	return wines, counts, nil
}
