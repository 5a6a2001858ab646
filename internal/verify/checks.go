package verify

import (
	"slices"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/shopspring/decimal"
)

const phoneLength = 11

func (c *checker) checkBonusCards() {
	phones := make(map[string]int)
	c.each(dataset.BonusCards, func(r row) {
		r.intIn("bonuses", c.bounds.Bonuses)

		phone := r.str("phone")
		if len(phone) != phoneLength || !onlyDigits(phone, '1') {
			r.fail("phone", "expected %d digits 1-9, got %q", phoneLength, phone)
		}
		if first, dup := phones[phone]; dup {
			r.fail("phone", "duplicate of row %d", first)
		}
		phones[phone] = r.num
	})
}

func (c *checker) checkCustomers() {
	var cards []int
	c.each(dataset.Customers, func(r row) {
		if v, ok := r.int("bonus_card_id"); ok {
			cards = append(cards, v)
		}
	})
	c.permutation(dataset.Customers.Name, "bonus_card_id", cards)
}

func (c *checker) checkSuppliers() {
	names := make(map[string]int)
	c.each(dataset.Suppliers, func(r row) {
		name := r.str("name")
		if first, dup := names[name]; dup {
			r.fail("name", "duplicate of row %d", first)
		}
		names[name] = r.num

		if !slices.Contains(dataset.Countries, r.str("country")) {
			r.fail("country", "unknown country %q", r.str("country"))
		}
		r.decIn("experience", c.bounds.Experience)
		if _, err := strconv.ParseBool(r.str("license")); err != nil {
			r.fail("license", "not a boolean: %q", r.str("license"))
		}
	})
}

func (c *checker) checkUsers() {
	logins := make(map[string]int)
	owners := map[string][]int{string(dataset.RoleCustomer): nil, string(dataset.RoleSupplier): nil}

	c.each(dataset.Users, func(r row) {
		login := r.str("login")
		if first, dup := logins[login]; dup {
			r.fail("login", "duplicate of row %d", first)
		}
		logins[login] = r.num

		password := r.str("password")
		if !c.bounds.PasswordLength.Contains(len(password)) {
			r.fail("password", "length %d outside [%d, %d]", len(password), c.bounds.PasswordLength.Min, c.bounds.PasswordLength.Max)
		}

		role := r.str("role")
		ids, known := owners[role]
		if !known {
			r.fail("role", "unknown role %q", role)
			return
		}
		if v, ok := r.int("owner_id"); ok {
			owners[role] = append(ids, v)
		}
	})

	for role, ids := range owners {
		c.permutation(dataset.Users.Name, "owner_id["+role+"]", ids)
	}
}

func (c *checker) checkWines() {
	c.required = make(map[int]int)
	c.each(dataset.Wines, func(r row) {
		color := r.str("color")
		if !slices.Contains(dataset.Colors, color) {
			r.fail("color", "unknown color %q", color)
		} else if !dataset.KindAllowed(color, r.str("kind")) {
			r.fail("kind", "%q is not a %s wine", r.str("kind"), color)
		}
		if !slices.Contains(dataset.Sugars, r.str("sugar")) {
			r.fail("sugar", "unknown sugar %q", r.str("sugar"))
		}

		volume, err := strconv.ParseFloat(r.str("volume"), 64)
		if err != nil || !slices.Contains(dataset.Volumes, volume) {
			r.fail("volume", "not a catalog volume: %q", r.str("volume"))
		}

		r.decIn("alcohol", c.bounds.Alcohol)
		r.intIn("aging", c.bounds.Aging)
		if n, ok := r.intIn("number", c.bounds.OfferCount); ok {
			c.required[r.num] = n
		}
	})
}

func (c *checker) checkSupplierWines() {
	wines := len(c.snap[dataset.Wines.Name])
	got := make(map[int]int)
	suppliers := make(map[int]map[int]bool)
	c.offers = make(map[int]offer)

	c.each(dataset.SupplierWines, func(r row) {
		wine, wineOK := r.ref("wine_id", wines)
		supplier, supplierOK := r.ref("supplier_id", c.n)
		if wineOK && supplierOK {
			got[wine]++
			if suppliers[wine] == nil {
				suppliers[wine] = make(map[int]bool)
			}
			if suppliers[wine][supplier] {
				r.fail("supplier_id", "supplier %d already offers wine %d", supplier, wine)
			}
			suppliers[wine][supplier] = true
		}

		price, priceOK := r.decIn("price", c.bounds.Price)
		percent, percentOK := r.intIn("percent", c.bounds.Percent)
		r.decIn("rating", c.bounds.Rating)
		if priceOK && percentOK {
			c.offers[r.num] = offer{price: price, percent: percent}
		}
	})

	for wine, want := range c.required {
		if got[wine] != want {
			c.tableFail(dataset.SupplierWines.Name, "wine %d has %d offers, want %d", wine, got[wine], want)
		}
	}
}

func (c *checker) checkSales() {
	offers := len(c.snap[dataset.SupplierWines.Name])
	c.totals = make(map[int]decimal.Decimal)

	c.each(dataset.Sales, func(r row) {
		if id, ok := r.int("purchase_id"); ok && id != r.num {
			r.fail("purchase_id", "expected %d, found %d", r.num, id)
		}

		date, err := time.Parse(time.DateOnly, r.str("date"))
		if err != nil {
			r.fail("date", "not a date: %q", r.str("date"))
		} else if date.Before(c.from) || date.After(c.to) {
			r.fail("date", "%s outside [%s, %s]", r.str("date"), c.bounds.SaleDate.From, c.bounds.SaleDate.To)
		}

		costs, costsOK := r.decIn("costs", c.bounds.Costs)
		quantity, quantityOK := r.intIn("wine_number", c.bounds.Quantity)
		purchase, purchaseOK := r.dec("purchase_price")
		selling, sellingOK := r.dec("selling_price")
		margin, marginOK := r.dec("margin")
		profit, profitOK := r.dec("profit")

		if !costsOK || !quantityOK || !purchaseOK || !sellingOK || !marginOK || !profitOK {
			return
		}
		qty := decimal.NewFromInt(int64(quantity))
		c.totals[r.num] = selling.Mul(qty)

		if id, ok := r.ref("supplier_wine_id", offers); ok {
			if o, known := c.offers[id]; known {
				if !purchase.Equal(o.price) {
					r.fail("purchase_price", "%s differs from offer price %s", purchase, o.price)
				}
				if want := dataset.SellingPrice(o.price, o.percent); !selling.Equal(want) {
					r.fail("selling_price", "expected %s, found %s", want, selling)
				}
			}
		}
		if want := selling.Sub(purchase); !margin.Equal(want) {
			r.fail("margin", "expected %s, found %s", want, margin)
		}
		if want := margin.Sub(costs).Mul(qty); !profit.Equal(want) {
			r.fail("profit", "expected %s, found %s", want, profit)
		}
	})
}

func (c *checker) checkPurchases() {
	var active, canceled []int

	c.each(dataset.Purchases, func(r row) {
		status, ok := r.int("status")
		if !ok {
			return
		}
		wantStatus := int(dataset.Active)
		if r.num > c.n {
			wantStatus = int(dataset.Canceled)
		}
		if status != wantStatus {
			r.fail("status", "expected %d, found %d", wantStatus, status)
		}

		if r.num > c.n {
			r.decIn("price", c.bounds.Price)
		} else if total, known := c.totals[r.num]; known {
			if price, ok := r.dec("price"); ok && !price.Equal(total) {
				r.fail("price", "expected sale total %s, found %s", total, price)
			}
		}

		if customer, ok := r.int("customer_id"); ok {
			if r.num <= c.n {
				active = append(active, customer)
			} else {
				canceled = append(canceled, customer)
			}
		}
	})

	c.permutation(dataset.Purchases.Name, "customer_id[active]", active)
	c.permutation(dataset.Purchases.Name, "customer_id[canceled]", canceled)
}

// onlyDigits reports whether s consists of digits no smaller than lo.
func onlyDigits(s string, lo byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < lo || s[i] > '9' {
			return false
		}
	}
	return true
}
