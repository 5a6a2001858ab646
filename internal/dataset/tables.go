package dataset

type ColumnType string

const (
	TypeInteger ColumnType = "integer"
	TypeReal    ColumnType = "real"
	TypeDecimal ColumnType = "decimal"
	TypeText    ColumnType = "text"
	TypeBoolean ColumnType = "boolean"
	TypeDate    ColumnType = "date"
)

type Column struct {
	Name string
	Type ColumnType
	// References names the table whose id this column points at, if any.
	References string
}

type Table struct {
	Name    string
	Columns []Column
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if c.Name == column {
			return i
		}
	}
	return -1
}

var (
	BonusCards = Table{Name: "bonus_cards", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "bonuses", Type: TypeInteger},
		{Name: "phone", Type: TypeText},
	}}

	Customers = Table{Name: "customers", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "name", Type: TypeText},
		{Name: "surname", Type: TypeText},
		{Name: "bonus_card_id", Type: TypeInteger, References: "bonus_cards"},
	}}

	Suppliers = Table{Name: "suppliers", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "name", Type: TypeText},
		{Name: "country", Type: TypeText},
		{Name: "experience", Type: TypeDecimal},
		{Name: "license", Type: TypeBoolean},
	}}

	// owner_id points at customers or suppliers depending on role, so it
	// carries no reference.
	Users = Table{Name: "users", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "owner_id", Type: TypeInteger},
		{Name: "login", Type: TypeText},
		{Name: "password", Type: TypeText},
		{Name: "role", Type: TypeText},
	}}

	Wines = Table{Name: "wines", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "kind", Type: TypeText},
		{Name: "color", Type: TypeText},
		{Name: "sugar", Type: TypeText},
		{Name: "volume", Type: TypeReal},
		{Name: "alcohol", Type: TypeDecimal},
		{Name: "aging", Type: TypeInteger},
		{Name: "number", Type: TypeInteger},
	}}

	SupplierWines = Table{Name: "supplier_wines", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "supplier_id", Type: TypeInteger, References: "suppliers"},
		{Name: "wine_id", Type: TypeInteger, References: "wines"},
		{Name: "price", Type: TypeDecimal},
		{Name: "percent", Type: TypeInteger},
		{Name: "rating", Type: TypeDecimal},
	}}

	// purchase_id is matched to purchases by position and price only.
	Sales = Table{Name: "sales", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "purchase_price", Type: TypeDecimal},
		{Name: "selling_price", Type: TypeDecimal},
		{Name: "margin", Type: TypeDecimal},
		{Name: "costs", Type: TypeDecimal},
		{Name: "profit", Type: TypeDecimal},
		{Name: "wine_number", Type: TypeInteger},
		{Name: "date", Type: TypeDate},
		{Name: "purchase_id", Type: TypeInteger},
		{Name: "supplier_wine_id", Type: TypeInteger, References: "supplier_wines"},
	}}

	Purchases = Table{Name: "purchases", Columns: []Column{
		{Name: "id", Type: TypeInteger},
		{Name: "price", Type: TypeDecimal},
		{Name: "status", Type: TypeInteger},
		{Name: "customer_id", Type: TypeInteger, References: "customers"},
	}}
)

// Tables lists every table in generation order, which is also a valid
// creation order for foreign keys.
func Tables() []Table {
	return []Table{BonusCards, Customers, Suppliers, Users, Wines, SupplierWines, Sales, Purchases}
}

func TableByName(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
