package sampler

import (
	"fmt"
	"strings"
	"time"
)

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
		"Anthony", "Betty", "Mark", "Margaret", "Donald", "Sandra", "Steven", "Ashley",
		"Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna", "Kenneth", "Michelle",
		"Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Edward", "Deborah",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	}
	companyHeads = []string{
		"Vine", "Cellar", "Barrel", "Harvest", "Oak", "Terroir", "Cork", "Grape",
		"Estate", "Valley", "Ridge", "Chateau", "Hill", "River", "Stone", "Sun",
		"Golden", "Crimson", "Silver", "Old", "North", "South", "Royal", "Wild",
	}
	companyTails = []string{
		"Traders", "Imports", "Wines", "Vintners", "Merchants", "Distributors", "Growers",
		"Partners", "Brothers", "Holdings", "Supply", "Collective", "Group", "Cellars",
		"Estates", "Vineyards", "Exports", "Company", "Syndicate", "House",
	}
	companySuffixes = []string{"Ltd", "LLC", "Inc", "GmbH", "S.A.", "S.r.l.", "Co", "PLC", "AG", "SAS"}
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Faker builds human-looking values on top of a Sampler.
type Faker struct {
	s Sampler
}

func NewFaker(s Sampler) *Faker {
	return &Faker{s: s}
}

func (f *Faker) FirstName() string {
	return Pick(f.s, firstNames)
}

func (f *Faker) LastName() string {
	return Pick(f.s, lastNames)
}

func (f *Faker) Company() string {
	head := Pick(f.s, companyHeads)
	if f.s.Intn(2) == 1 {
		head += " " + Pick(f.s, companyHeads)
	}
	return fmt.Sprintf("%s %s %s", head, Pick(f.s, companyTails), Pick(f.s, companySuffixes))
}

// Username mixes a first and last name in one of a few common shapes.
func (f *Faker) Username() string {
	first := strings.ToLower(f.FirstName())
	last := strings.ToLower(f.LastName())
	switch f.s.Intn(4) {
	case 0:
		return fmt.Sprintf("%s.%s", first, last)
	case 1:
		return fmt.Sprintf("%s%s%02d", first[:1], last, f.s.Intn(100))
	case 2:
		return fmt.Sprintf("%s_%s%d", last, first, f.s.Intn(1000))
	default:
		return fmt.Sprintf("%s%02d", first, f.s.Intn(100))
	}
}

// Password returns ASCII letters, length drawn from [minLen, maxLen].
func (f *Faker) Password(minLen, maxLen int) string {
	n := f.s.Int(minLen, maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[f.s.Intn(len(letters))]
	}
	return string(b)
}

// Date returns a day in [from, to], truncated to midnight UTC.
func (f *Faker) Date(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	return from.AddDate(0, 0, f.s.Int(0, days)).UTC().Truncate(24 * time.Hour)
}
