package dataset

import "github.com/Lumos-Labs-HQ/winegen/internal/sampler"

type owner struct {
	id   int
	role Role
}

// Users generates one account per customer id and one per supplier id, in
// shuffled order. Logins are unique across all of them.
func (g *Generator) Users(customers, suppliers int) ([]User, error) {
	owners := make([]owner, 0, customers+suppliers)
	for id := 1; id <= customers; id++ {
		owners = append(owners, owner{id: id, role: RoleCustomer})
	}
	for id := 1; id <= suppliers; id++ {
		owners = append(owners, owner{id: id, role: RoleSupplier})
	}
	g.s.Shuffle(len(owners), func(i, j int) { owners[i], owners[j] = owners[j], owners[i] })

	logins := sampler.NewUnique("users.login", g.maxAttempts)
	users := make([]User, 0, len(owners))

	for i, o := range owners {
		login, err := logins.Next(g.faker.Username)
		if err != nil {
			return nil, err
		}

		password := g.faker.Password(g.bounds.PasswordLength.Min, g.bounds.PasswordLength.Max)
		if err := checkInt(Users.Name, "password_length", len(password), g.bounds.PasswordLength); err != nil {
			return nil, err
		}

		users = append(users, User{
			ID:       UserID(i + 1),
			OwnerID:  o.id,
			Login:    login,
			Password: password,
			Role:     o.role,
		})
	}
	return users, nil
}
