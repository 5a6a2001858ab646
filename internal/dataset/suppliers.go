package dataset

import "github.com/Lumos-Labs-HQ/winegen/internal/sampler"

// Suppliers generates N suppliers with unique company names.
func (g *Generator) Suppliers() ([]Supplier, error) {
	names := sampler.NewUnique("suppliers.name", g.maxAttempts)
	suppliers := make([]Supplier, 0, g.count)

	for i := 1; i <= g.count; i++ {
		name, err := names.Next(g.faker.Company)
		if err != nil {
			return nil, err
		}

		experience := sampleDecimal(g.s.Float(g.bounds.Experience.Min, g.bounds.Experience.Max), ExperienceDigits)
		if err := checkDecimal(Suppliers.Name, "experience", experience, g.bounds.Experience); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, Supplier{
			ID:         SupplierID(i),
			Name:       name,
			Country:    sampler.Pick(g.s, Countries),
			Experience: experience,
			License:    g.s.Intn(2) == 1,
		})
	}
	return suppliers, nil
}
