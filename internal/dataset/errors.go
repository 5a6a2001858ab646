package dataset

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrNoOffers = errors.New("no supplier offers to sell from")

// RangeViolationError means a generated value fell outside its bound. It is a
// bug in the generator or its configuration, never clamped.
type RangeViolationError struct {
	Table string
	Field string
	Value string
	Min   string
	Max   string
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("%s.%s = %s outside [%s, %s]", e.Table, e.Field, e.Value, e.Min, e.Max)
}

func checkInt(table, field string, v int, r IntRange) error {
	if r.Contains(v) {
		return nil
	}
	return &RangeViolationError{
		Table: table, Field: field, Value: itoa(v),
		Min: itoa(r.Min), Max: itoa(r.Max),
	}
}

func checkDecimal(table, field string, v decimal.Decimal, r FloatRange) error {
	if v.GreaterThanOrEqual(decimal.NewFromFloat(r.Min)) && v.LessThanOrEqual(decimal.NewFromFloat(r.Max)) {
		return nil
	}
	return &RangeViolationError{
		Table: table, Field: field, Value: v.String(),
		Min: decimal.NewFromFloat(r.Min).String(), Max: decimal.NewFromFloat(r.Max).String(),
	}
}
