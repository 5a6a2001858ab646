package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
	"github.com/shopspring/decimal"
)

func newTestGenerator(t *testing.T, seed int64, n int, bounds Bounds) *Generator {
	t.Helper()
	g, err := NewGenerator(sampler.New(seed), bounds, n)
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	return g
}

func TestNewGeneratorRejectsBadInput(t *testing.T) {
	if _, err := NewGenerator(sampler.New(1), DefaultBounds(), 0); err == nil {
		t.Error("Expected count 0 to be rejected")
	}

	b := DefaultBounds()
	b.Price = FloatRange{Min: 10, Max: 5}
	if _, err := NewGenerator(sampler.New(1), b, 10); err == nil {
		t.Error("Expected inverted price bounds to be rejected")
	}
}

func TestCustomersFormBijectionWithCards(t *testing.T) {
	const n = 200
	g := newTestGenerator(t, 1, n, DefaultBounds())

	cards, err := g.BonusCards()
	if err != nil {
		t.Fatalf("BonusCards failed: %v", err)
	}
	phones := make(map[string]bool)
	for _, c := range cards {
		if c.Bonuses < 0 || c.Bonuses > 1000 {
			t.Errorf("card %d has %d bonuses", c.ID, c.Bonuses)
		}
		if len(c.Phone) != 11 {
			t.Errorf("card %d phone %q is not 11 digits", c.ID, c.Phone)
		}
		if phones[c.Phone] {
			t.Errorf("phone %s repeated", c.Phone)
		}
		phones[c.Phone] = true
	}

	customers, err := g.Customers(g.NewPool("bonus_cards", len(cards)))
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if len(customers) != n {
		t.Fatalf("Expected %d customers, got %d", n, len(customers))
	}

	used := make(map[BonusCardID]int)
	for i, c := range customers {
		if c.ID != CustomerID(i+1) {
			t.Errorf("customer at %d has id %d", i, c.ID)
		}
		used[c.BonusCardID]++
	}
	for id := 1; id <= n; id++ {
		if used[BonusCardID(id)] != 1 {
			t.Errorf("card %d used %d times", id, used[BonusCardID(id)])
		}
	}
}

func TestCustomersExhaustSmallPool(t *testing.T) {
	g := newTestGenerator(t, 1, 5, DefaultBounds())

	_, err := g.Customers(g.NewPool("bonus_cards", 4))
	var exhausted *pool.ExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustionError, got %v", err)
	}
}

func TestSuppliersAreUniqueAndBounded(t *testing.T) {
	g := newTestGenerator(t, 2, 300, DefaultBounds())

	suppliers, err := g.Suppliers()
	if err != nil {
		t.Fatalf("Suppliers failed: %v", err)
	}
	names := make(map[string]bool)
	lo, hi := decimal.NewFromInt(1), decimal.NewFromInt(100)
	for _, s := range suppliers {
		if names[s.Name] {
			t.Errorf("supplier name %q repeated", s.Name)
		}
		names[s.Name] = true
		if s.Experience.LessThan(lo) || s.Experience.GreaterThan(hi) {
			t.Errorf("supplier %d experience %s out of range", s.ID, s.Experience)
		}
		if !contains(Countries, s.Country) {
			t.Errorf("supplier %d has unknown country %q", s.ID, s.Country)
		}
	}
}

func TestUsersCoverEveryOwnerOnce(t *testing.T) {
	const n = 150
	g := newTestGenerator(t, 3, n, DefaultBounds())

	users, err := g.Users(n, n)
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 2*n {
		t.Fatalf("Expected %d users, got %d", 2*n, len(users))
	}

	logins := make(map[string]bool)
	owners := map[Role]map[int]bool{RoleCustomer: {}, RoleSupplier: {}}
	for _, u := range users {
		if logins[u.Login] {
			t.Errorf("login %q repeated", u.Login)
		}
		logins[u.Login] = true

		if l := len(u.Password); l < 8 || l > 16 {
			t.Errorf("user %d password length %d", u.ID, l)
		}
		if owners[u.Role][u.OwnerID] {
			t.Errorf("%s %d has two users", u.Role, u.OwnerID)
		}
		owners[u.Role][u.OwnerID] = true
	}
	for _, role := range []Role{RoleCustomer, RoleSupplier} {
		if len(owners[role]) != n {
			t.Errorf("Expected %d %s users, got %d", n, role, len(owners[role]))
		}
	}
}

func TestUsersFailWhenLoginSpaceIsTooSmall(t *testing.T) {
	g := newTestGenerator(t, 3, 10, DefaultBounds()).WithMaxAttempts(1)

	// With one attempt per login, a few thousand users must collide.
	_, err := g.Users(3000, 3000)
	var collision *sampler.UniquenessCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("Expected UniquenessCollisionError, got %v", err)
	}
}

func TestWineKindMatchesColor(t *testing.T) {
	g := newTestGenerator(t, 5, 5, DefaultBounds())

	wines, counts, err := g.Wines()
	if err != nil {
		t.Fatalf("Wines failed: %v", err)
	}
	if len(wines) != 5 || len(counts) != 5 {
		t.Fatalf("Expected 5 wines and counts, got %d and %d", len(wines), len(counts))
	}
	for _, w := range wines {
		if !KindAllowed(w.Color, w.Kind) {
			t.Errorf("wine %d: kind %q is not a %s wine", w.ID, w.Kind, w.Color)
		}
		if counts[w.ID] != w.RequiredOffers {
			t.Errorf("wine %d: count %d != required %d", w.ID, counts[w.ID], w.RequiredOffers)
		}
		if w.RequiredOffers < 1 || w.RequiredOffers > 5 {
			t.Errorf("wine %d requires %d offers", w.ID, w.RequiredOffers)
		}
	}
}

func TestSupplierWinesMatchRequiredCounts(t *testing.T) {
	const n = 100
	g := newTestGenerator(t, 6, n, DefaultBounds())

	_, counts, err := g.Wines()
	if err != nil {
		t.Fatalf("Wines failed: %v", err)
	}
	rows, offers, err := g.SupplierWines(counts, n)
	if err != nil {
		t.Fatalf("SupplierWines failed: %v", err)
	}
	if len(rows) != counts.Total() || len(offers) != len(rows) {
		t.Fatalf("Expected %d offers, got %d rows and %d offers", counts.Total(), len(rows), len(offers))
	}

	perWine := make(map[WineID]map[SupplierID]bool)
	for i, r := range rows {
		if r.ID != OfferID(i+1) || offers[i].ID != r.ID {
			t.Errorf("offer at %d has id %d / %d", i, r.ID, offers[i].ID)
		}
		if perWine[r.WineID] == nil {
			perWine[r.WineID] = make(map[SupplierID]bool)
		}
		if perWine[r.WineID][r.SupplierID] {
			t.Errorf("wine %d has supplier %d twice", r.WineID, r.SupplierID)
		}
		perWine[r.WineID][r.SupplierID] = true
		if r.Percent < 43 || r.Percent > 100 {
			t.Errorf("offer %d percent %d", r.ID, r.Percent)
		}
	}
	for id, want := range counts {
		if got := len(perWine[id]); got != want {
			t.Errorf("wine %d has %d offers, want %d", id, got, want)
		}
	}
}

func TestSupplierWinesExhaustWithTooFewSuppliers(t *testing.T) {
	g := newTestGenerator(t, 1, 1, DefaultBounds())

	_, _, err := g.SupplierWines(OfferCounts{1: 3}, 1)
	var exhausted *pool.ExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustionError, got %v", err)
	}
	if exhausted.Requested != 3 || exhausted.Available != 1 {
		t.Errorf("unexpected exhaustion details: %+v", exhausted)
	}
}

func TestSalesArithmetic(t *testing.T) {
	const n = 300
	g := newTestGenerator(t, 7, n, DefaultBounds())

	_, counts, _ := g.Wines()
	_, offers, err := g.SupplierWines(counts, n)
	if err != nil {
		t.Fatalf("SupplierWines failed: %v", err)
	}
	byID := make(map[OfferID]Offer)
	for _, o := range offers {
		byID[o.ID] = o
	}

	sales, totals, err := g.Sales(offers)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	if len(sales) != n || len(totals) != n {
		t.Fatalf("Expected %d sales and totals, got %d and %d", n, len(sales), len(totals))
	}

	tolerance := decimal.NewFromFloat(0.05)
	for i, s := range sales {
		o, ok := byID[s.OfferID]
		if !ok {
			t.Fatalf("sale %d references unknown offer %d", s.ID, s.OfferID)
		}
		if !s.PurchasePrice.Equal(o.Price) {
			t.Errorf("sale %d purchase price %s != offer price %s", s.ID, s.PurchasePrice, o.Price)
		}

		exact := o.Price.Mul(decimal.NewFromInt(int64(100 + o.Percent))).Div(decimal.NewFromInt(100))
		if s.SellingPrice.Sub(exact).Abs().GreaterThan(tolerance) {
			t.Errorf("sale %d selling price %s too far from %s", s.ID, s.SellingPrice, exact)
		}
		if !s.Margin.Equal(s.SellingPrice.Sub(s.PurchasePrice)) {
			t.Errorf("sale %d margin %s", s.ID, s.Margin)
		}

		qty := decimal.NewFromInt(int64(s.Quantity))
		if !s.Profit.Equal(s.Margin.Sub(s.Costs).Mul(qty)) {
			t.Errorf("sale %d profit %s != (%s - %s) * %d", s.ID, s.Profit, s.Margin, s.Costs, s.Quantity)
		}
		if s.PurchaseID != PurchaseID(i+1) {
			t.Errorf("sale %d purchase id %d", s.ID, s.PurchaseID)
		}
		if totals[i].Sale != s.ID || !totals[i].Price.Equal(s.SellingPrice.Mul(qty)) {
			t.Errorf("total %d = %s does not match sale", i, totals[i].Price)
		}
	}
}

func TestSalesNeedOffers(t *testing.T) {
	g := newTestGenerator(t, 1, 3, DefaultBounds())
	if _, _, err := g.Sales(nil); !errors.Is(err, ErrNoOffers) {
		t.Errorf("Expected ErrNoOffers, got %v", err)
	}
}

func TestPurchasesUseTwoPermutations(t *testing.T) {
	const n = 120
	g := newTestGenerator(t, 8, n, DefaultBounds())

	totals := make([]SaleTotal, n)
	for i := range totals {
		totals[i] = SaleTotal{Sale: SaleID(i + 1), Price: decimal.NewFromInt(int64(i + 500))}
	}

	purchases, err := g.Purchases(totals, g.NewPool("a", n), g.NewPool("b", n))
	if err != nil {
		t.Fatalf("Purchases failed: %v", err)
	}
	if len(purchases) != 2*n {
		t.Fatalf("Expected %d purchases, got %d", 2*n, len(purchases))
	}

	seen := map[PurchaseStatus]map[CustomerID]bool{Active: {}, Canceled: {}}
	for i, p := range purchases {
		if p.ID != PurchaseID(i+1) {
			t.Errorf("purchase at %d has id %d", i, p.ID)
		}
		if i < n {
			if p.Status != Active || !p.Price.Equal(totals[i].Price) {
				t.Errorf("purchase %d should be active with price %s, got %s %s", p.ID, totals[i].Price, p.Status, p.Price)
			}
		} else if p.Status != Canceled {
			t.Errorf("purchase %d should be canceled", p.ID)
		}
		if seen[p.Status][p.CustomerID] {
			t.Errorf("customer %d repeated among %s purchases", p.CustomerID, p.Status)
		}
		seen[p.Status][p.CustomerID] = true
	}
	for status, customers := range seen {
		if len(customers) != n {
			t.Errorf("%s purchases cover %d customers, want %d", status, len(customers), n)
		}
	}
}

func TestRoundSignificant(t *testing.T) {
	cases := []struct {
		in   string
		sig  int
		want string
	}{
		{"1234.5678", 4, "1235"},
		{"123.456", 4, "123.5"},
		{"9.87654", 3, "9.88"},
		{"0.012345", 3, "0.0123"},
		{"9999.6", 4, "10000"},
		{"0", 4, "0"},
	}
	for _, c := range cases {
		got := RoundSignificant(decimal.RequireFromString(c.in), c.sig)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("RoundSignificant(%s, %d) = %s, want %s", c.in, c.sig, got, c.want)
		}
	}
}

// fixedFloat returns the same value from every Float call.
type fixedFloat struct {
	*sampler.Rand
	value float64
}

func (f fixedFloat) Float(min, max float64) float64 {
	return f.value
}

func TestRangeViolationIsReportedNotClamped(t *testing.T) {
	g := newTestGenerator(t, 1, 3, DefaultBounds())
	g.s = fixedFloat{Rand: sampler.New(1), value: 99.96}
	g.bounds.Experience = FloatRange{Min: 1, Max: 99.96}

	suppliers, err := g.Suppliers()
	var violation *RangeViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("Expected RangeViolationError, got %v", err)
	}
	if suppliers != nil {
		t.Errorf("Expected no suppliers on failure, got %d", len(suppliers))
	}
	if violation.Table != "suppliers" || violation.Field != "experience" {
		t.Errorf("Unexpected violation location %s.%s", violation.Table, violation.Field)
	}
	if violation.Value != "100" || violation.Max != "99.96" {
		t.Errorf("Expected 100 reported against max 99.96, got %s", violation)
	}
}

func TestBoundsRejectLimitsFinerThanColumnPrecision(t *testing.T) {
	cases := []struct {
		name   string
		modify func(b *Bounds)
		want   string
	}{
		{"experience max", func(b *Bounds) { b.Experience.Max = 99.96 }, "bounds.experience"},
		{"price min", func(b *Bounds) { b.Price.Min = 118.04 }, "bounds.price"},
		{"rating max", func(b *Bounds) { b.Rating.Max = 9.995 }, "bounds.rating"},
		{"alcohol min", func(b *Bounds) { b.Alcohol.Min = 7.555 }, "bounds.alcohol"},
		{"costs max", func(b *Bounds) { b.Costs.Max = 49.995 }, "bounds.costs"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := DefaultBounds()
			c.modify(&b)
			err := b.Validate()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("Expected error mentioning %s, got %v", c.want, err)
			}
		})
	}

	b := DefaultBounds()
	b.Price = FloatRange{Min: 118.5, Max: 999.9}
	b.Experience = FloatRange{Min: 1.25, Max: 99.9}
	if err := b.Validate(); err != nil {
		t.Errorf("Expected limits at column precision to pass, got %v", err)
	}
}

func TestBoundsValidateReportsFirstProblemInOrder(t *testing.T) {
	b := DefaultBounds()
	b.Aging = IntRange{Min: 9, Max: 2}
	b.PasswordLength = IntRange{Min: 9, Max: 2}
	b.Price = FloatRange{Min: 10, Max: 5}

	for i := 0; i < 20; i++ {
		err := b.Validate()
		if err == nil || !strings.HasPrefix(err.Error(), "bounds.aging:") {
			t.Fatalf("Expected bounds.aging to be reported first, got %v", err)
		}
	}
}

func TestSuppliersStayInsideRoundedBounds(t *testing.T) {
	b := DefaultBounds()
	b.Experience = FloatRange{Min: 1, Max: 99.9}

	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGenerator(t, seed, 200, b)
		if _, err := g.Suppliers(); err != nil {
			t.Fatalf("seed %d: Suppliers failed: %v", seed, err)
		}
	}
}
