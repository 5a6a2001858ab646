package dataset

import (
	"math"

	"github.com/shopspring/decimal"
)

// Significant digits kept for persisted numbers.
const (
	PriceDigits      = 4
	SellingDigits    = 5
	CostsDigits      = 4
	RatingDigits     = 3
	AlcoholDigits    = 3
	ExperienceDigits = 3
)

var hundred = decimal.NewFromInt(100)

// RoundSignificant rounds d to sig significant digits without switching to
// exponent notation.
func RoundSignificant(d decimal.Decimal, sig int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	f, _ := d.Abs().Float64()
	exp := int(math.Floor(math.Log10(f)))
	return d.Round(int32(sig - 1 - exp))
}

func sampleDecimal(f float64, sig int) decimal.Decimal {
	return RoundSignificant(decimal.NewFromFloat(f), sig)
}

// SellingPrice applies a percent markup to a purchase price and rounds the
// result to SellingDigits.
func SellingPrice(purchase decimal.Decimal, percent int) decimal.Decimal {
	markup := decimal.NewFromInt(int64(100 + percent)).Div(hundred)
	return RoundSignificant(purchase.Mul(markup), SellingDigits)
}
