// Package verify re-checks a generated dataset against the rules the
// generator promises: table sizes, id sequences, permutations, value
// ranges and sale arithmetic.
package verify

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/shopspring/decimal"
)

type Violation struct {
	Table   string
	Row     int
	Column  string
	Message string
}

func (v Violation) String() string {
	if v.Row == 0 {
		return fmt.Sprintf("%s: %s", v.Table, v.Message)
	}
	return fmt.Sprintf("%s row %d %s: %s", v.Table, v.Row, v.Column, v.Message)
}

type Report struct {
	Count      int
	Rows       map[string]int
	Violations []Violation
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Check runs every rule over snap. The record count N is taken from the
// bonus_cards table.
func Check(snap dataset.Snapshot, bounds dataset.Bounds) *Report {
	c := &checker{
		snap:   snap,
		bounds: bounds,
		report: &Report{Count: len(snap[dataset.BonusCards.Name]), Rows: make(map[string]int)},
	}
	c.n = c.report.Count
	c.from, c.to, _ = bounds.SaleDate.Parse()

	for _, table := range dataset.Tables() {
		rows, ok := snap[table.Name]
		if !ok {
			c.tableFail(table.Name, "table is missing")
			continue
		}
		c.report.Rows[table.Name] = len(rows)
		c.checkShape(table, rows)
	}

	c.checkBonusCards()
	c.checkCustomers()
	c.checkSuppliers()
	c.checkUsers()
	c.checkWines()
	c.checkSupplierWines()
	c.checkSales()
	c.checkPurchases()
	return c.report
}

type checker struct {
	snap     dataset.Snapshot
	bounds   dataset.Bounds
	report   *Report
	n        int
	from, to time.Time

	// filled while checking, read by later tables
	required map[int]int
	offers   map[int]offer
	totals   map[int]decimal.Decimal
}

type offer struct {
	price   decimal.Decimal
	percent int
}

func (c *checker) tableFail(table, format string, args ...any) {
	c.report.Violations = append(c.report.Violations, Violation{Table: table, Message: fmt.Sprintf(format, args...)})
}

// checkShape verifies row counts, arity and that ids run 1..len in order.
func (c *checker) checkShape(table dataset.Table, rows [][]string) {
	want := c.n
	if table.Name == dataset.Users.Name || table.Name == dataset.Purchases.Name {
		want = 2 * c.n
	}
	if table.Name != dataset.SupplierWines.Name && len(rows) != want {
		c.tableFail(table.Name, "expected %d rows, found %d", want, len(rows))
	}

	for i, fields := range rows {
		if len(fields) != len(table.Columns) {
			c.tableFail(table.Name, "row %d has %d fields, want %d", i+1, len(fields), len(table.Columns))
			continue
		}
		if fields[0] != strconv.Itoa(i+1) {
			c.report.Violations = append(c.report.Violations, Violation{
				Table: table.Name, Row: i + 1, Column: "id",
				Message: fmt.Sprintf("expected id %d, found %q", i+1, fields[0]),
			})
		}
	}
}

// each calls fn for every well-formed row of table.
func (c *checker) each(table dataset.Table, fn func(r row)) {
	for i, fields := range c.snap[table.Name] {
		if len(fields) != len(table.Columns) {
			continue
		}
		fn(row{c: c, table: table, num: i + 1, fields: fields})
	}
}

// permutation reports unless values is exactly a permutation of 1..n.
func (c *checker) permutation(table, column string, values []int) {
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v < 1 || v > c.n {
			c.tableFail(table, "%s value %d outside [1, %d]", column, v, c.n)
			continue
		}
		if seen[v] {
			c.tableFail(table, "%s value %d appears more than once", column, v)
		}
		seen[v] = true
	}
	if len(values) != c.n {
		c.tableFail(table, "%s has %d values, want a permutation of %d", column, len(values), c.n)
	}
}

type row struct {
	c      *checker
	table  dataset.Table
	num    int
	fields []string
}

func (r row) fail(column, format string, args ...any) {
	r.c.report.Violations = append(r.c.report.Violations, Violation{
		Table: r.table.Name, Row: r.num, Column: column, Message: fmt.Sprintf(format, args...),
	})
}

func (r row) str(column string) string {
	return r.fields[r.table.Index(column)]
}

func (r row) int(column string) (int, bool) {
	v, err := strconv.Atoi(r.str(column))
	if err != nil {
		r.fail(column, "not an integer: %q", r.str(column))
		return 0, false
	}
	return v, true
}

func (r row) dec(column string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(r.str(column))
	if err != nil {
		r.fail(column, "not a number: %q", r.str(column))
		return decimal.Zero, false
	}
	return v, true
}

func (r row) intIn(column string, b dataset.IntRange) (int, bool) {
	v, ok := r.int(column)
	if ok && !b.Contains(v) {
		r.fail(column, "%d outside [%d, %d]", v, b.Min, b.Max)
	}
	return v, ok
}

func (r row) decIn(column string, b dataset.FloatRange) (decimal.Decimal, bool) {
	v, ok := r.dec(column)
	if !ok {
		return v, false
	}
	f, _ := v.Float64()
	if !b.Contains(f) {
		r.fail(column, "%s outside [%v, %v]", v, b.Min, b.Max)
	}
	return v, true
}

func (r row) ref(column string, max int) (int, bool) {
	v, ok := r.int(column)
	if ok && (v < 1 || v > max) {
		r.fail(column, "reference %d outside [1, %d]", v, max)
		return v, false
	}
	return v, ok
}
