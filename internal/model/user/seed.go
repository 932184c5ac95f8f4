package user

// SeedUser is a user before its password is hashed.
type SeedUser struct {
	Email    string
	FullName string
	Password string
	Roles    []string
}

// SeedUsers are the teslo accounts created by the seed. The first one owns
// every seeded product.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{
			Email:    "test1@google.com",
			FullName: "Test One",
			Password: "Abc123",
			Roles:    []string{string(RoleAdmin)},
		},
		{
			Email:    "test2@google.com",
			FullName: "Test Two",
			Password: "Abc123",
			Roles:    []string{string(RoleUser), string(RoleSuperUser)},
		},
	}
}
