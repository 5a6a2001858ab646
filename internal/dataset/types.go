package dataset

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type (
	BonusCardID int
	CustomerID  int
	SupplierID  int
	WineID      int
	OfferID     int
	SaleID      int
	PurchaseID  int
	UserID      int
)

type PurchaseStatus int

const (
	Canceled PurchaseStatus = 0
	Active   PurchaseStatus = 1
)

func (s PurchaseStatus) String() string {
	if s == Active {
		return "ACTIVE"
	}
	return "CANCELED"
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
)

const dateLayout = "2006-01-02"

type BonusCard struct {
	ID      BonusCardID
	Bonuses int
	Phone   string
}

func (b BonusCard) Fields() []string {
	return []string{itoa(int(b.ID)), itoa(b.Bonuses), b.Phone}
}

type Customer struct {
	ID          CustomerID
	Name        string
	Surname     string
	BonusCardID BonusCardID
}

func (c Customer) Fields() []string {
	return []string{itoa(int(c.ID)), c.Name, c.Surname, itoa(int(c.BonusCardID))}
}

type Supplier struct {
	ID         SupplierID
	Name       string
	Country    string
	Experience decimal.Decimal
	License    bool
}

func (s Supplier) Fields() []string {
	return []string{itoa(int(s.ID)), s.Name, s.Country, s.Experience.String(), strconv.FormatBool(s.License)}
}

type User struct {
	ID       UserID
	OwnerID  int
	Login    string
	Password string
	Role     Role
}

func (u User) Fields() []string {
	return []string{itoa(int(u.ID)), itoa(u.OwnerID), u.Login, u.Password, string(u.Role)}
}

type Wine struct {
	ID      WineID
	Kind    string
	Color   string
	Sugar   string
	Volume  float64
	Alcohol decimal.Decimal
	Aging   int
	// RequiredOffers is the exact number of supplier offers the wine gets.
	RequiredOffers int
}

func (w Wine) Fields() []string {
	return []string{
		itoa(int(w.ID)), w.Kind, w.Color, w.Sugar,
		strconv.FormatFloat(w.Volume, 'f', -1, 64),
		w.Alcohol.String(), itoa(w.Aging), itoa(w.RequiredOffers),
	}
}

// SupplierWine is one offer: a supplier's price, markup and rating for a wine.
type SupplierWine struct {
	ID         OfferID
	SupplierID SupplierID
	WineID     WineID
	Price      decimal.Decimal
	Percent    int
	Rating     decimal.Decimal
}

func (o SupplierWine) Fields() []string {
	return []string{
		itoa(int(o.ID)), itoa(int(o.SupplierID)), itoa(int(o.WineID)),
		o.Price.String(), itoa(o.Percent), o.Rating.String(),
	}
}

// Offer is the part of a SupplierWine the sale stage needs.
type Offer struct {
	ID      OfferID
	Price   decimal.Decimal
	Percent int
}

type Sale struct {
	ID            SaleID
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Margin        decimal.Decimal
	Costs         decimal.Decimal
	Profit        decimal.Decimal
	Quantity      int
	Date          time.Time
	// PurchaseID is the sale's own sequence number; the active purchase in
	// the same position carries the sale's total.
	PurchaseID PurchaseID
	OfferID    OfferID
}

func (s Sale) Fields() []string {
	return []string{
		itoa(int(s.ID)),
		s.PurchasePrice.String(), s.SellingPrice.String(), s.Margin.String(),
		s.Costs.String(), s.Profit.String(), itoa(s.Quantity),
		s.Date.Format(dateLayout), itoa(int(s.PurchaseID)), itoa(int(s.OfferID)),
	}
}

// SaleTotal is what a sale hands to the purchase stage.
type SaleTotal struct {
	Sale  SaleID
	Price decimal.Decimal
}

type Purchase struct {
	ID         PurchaseID
	Price      decimal.Decimal
	Status     PurchaseStatus
	CustomerID CustomerID
}

func (p Purchase) Fields() []string {
	return []string{itoa(int(p.ID)), p.Price.String(), itoa(int(p.Status)), itoa(int(p.CustomerID))}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
