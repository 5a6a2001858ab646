package dataset

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type IntRange struct {
	Min int `json:"min" mapstructure:"min" yaml:"min"`
	Max int `json:"max" mapstructure:"max" yaml:"max"`
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

type FloatRange struct {
	Min float64 `json:"min" mapstructure:"min" yaml:"min"`
	Max float64 `json:"max" mapstructure:"max" yaml:"max"`
}

func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type DateRange struct {
	From string `json:"from" mapstructure:"from" yaml:"from"`
	To   string `json:"to" mapstructure:"to" yaml:"to"`
}

func (r DateRange) Parse() (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date_from %q: %w", r.From, err)
	}
	to, err := time.Parse(dateLayout, r.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date_to %q: %w", r.To, err)
	}
	return from, to, nil
}

// Bounds holds the sampling range of every attribute.
type Bounds struct {
	Bonuses        IntRange   `json:"bonuses" mapstructure:"bonuses" yaml:"bonuses"`
	Experience     FloatRange `json:"experience" mapstructure:"experience" yaml:"experience"`
	Alcohol        FloatRange `json:"alcohol" mapstructure:"alcohol" yaml:"alcohol"`
	Aging          IntRange   `json:"aging" mapstructure:"aging" yaml:"aging"`
	OfferCount     IntRange   `json:"offer_count" mapstructure:"offer_count" yaml:"offer_count"`
	Price          FloatRange `json:"price" mapstructure:"price" yaml:"price"`
	Percent        IntRange   `json:"percent" mapstructure:"percent" yaml:"percent"`
	Rating         FloatRange `json:"rating" mapstructure:"rating" yaml:"rating"`
	Costs          FloatRange `json:"costs" mapstructure:"costs" yaml:"costs"`
	Quantity       IntRange   `json:"quantity" mapstructure:"quantity" yaml:"quantity"`
	PasswordLength IntRange   `json:"password_length" mapstructure:"password_length" yaml:"password_length"`
	SaleDate       DateRange  `json:"sale_date" mapstructure:"sale_date" yaml:"sale_date"`
}

func DefaultBounds() Bounds {
	return Bounds{
		Bonuses:        IntRange{Min: 0, Max: 1000},
		Experience:     FloatRange{Min: 1, Max: 100},
		Alcohol:        FloatRange{Min: 7.5, Max: 22},
		Aging:          IntRange{Min: 2, Max: 10},
		OfferCount:     IntRange{Min: 1, Max: 5},
		Price:          FloatRange{Min: 118, Max: 1000},
		Percent:        IntRange{Min: 43, Max: 100},
		Rating:         FloatRange{Min: 0, Max: 10},
		Costs:          FloatRange{Min: 10, Max: 50},
		Quantity:       IntRange{Min: 1, Max: 5},
		PasswordLength: IntRange{Min: 8, Max: 16},
		SaleDate:       DateRange{From: "2015-01-01", To: "2022-12-31"},
	}
}

// Validate checks every range in a fixed order. Float bounds must already be
// written at their column's precision, otherwise rounding a sample taken
// inside the range could move it outside.
func (b Bounds) Validate() error {
	ints := []struct {
		name string
		r    IntRange
	}{
		{"bonuses", b.Bonuses},
		{"aging", b.Aging},
		{"offer_count", b.OfferCount},
		{"percent", b.Percent},
		{"quantity", b.Quantity},
		{"password_length", b.PasswordLength},
	}
	for _, f := range ints {
		if f.r.Min > f.r.Max {
			return fmt.Errorf("bounds.%s: min %d is greater than max %d", f.name, f.r.Min, f.r.Max)
		}
	}

	floats := []struct {
		name   string
		r      FloatRange
		digits int
	}{
		{"experience", b.Experience, ExperienceDigits},
		{"alcohol", b.Alcohol, AlcoholDigits},
		{"price", b.Price, PriceDigits},
		{"rating", b.Rating, RatingDigits},
		{"costs", b.Costs, CostsDigits},
	}
	for _, f := range floats {
		if f.r.Min > f.r.Max {
			return fmt.Errorf("bounds.%s: min %v is greater than max %v", f.name, f.r.Min, f.r.Max)
		}
		for _, v := range []float64{f.r.Min, f.r.Max} {
			if !exactAt(v, f.digits) {
				return fmt.Errorf("bounds.%s: %v needs more than %d significant digits", f.name, v, f.digits)
			}
		}
	}

	if b.OfferCount.Min < 1 {
		return fmt.Errorf("bounds.offer_count: every wine needs at least one offer")
	}
	if b.Quantity.Min < 1 {
		return fmt.Errorf("bounds.quantity: min must be at least 1")
	}
	if b.PasswordLength.Min < 1 {
		return fmt.Errorf("bounds.password_length: min must be at least 1")
	}

	from, to, err := b.SaleDate.Parse()
	if err != nil {
		return fmt.Errorf("bounds.sale_date: %w", err)
	}
	if to.Before(from) {
		return fmt.Errorf("bounds.sale_date: %s is before %s", b.SaleDate.To, b.SaleDate.From)
	}
	return nil
}

func exactAt(v float64, sig int) bool {
	d := decimal.NewFromFloat(v)
	return RoundSignificant(d, sig).Equal(d)
}
