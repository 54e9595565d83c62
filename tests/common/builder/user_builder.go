//go:build unit || e2e

package builder

import (
	"time"

	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/password"
)

type UserBuilder struct {
	Email       string
	Password    string
	Name        string
	IsSuperuser bool
	IsActive    bool
	CreatedAt   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:     "ana@example.com",
		Password:  "ana12345",
		Name:      "Ana Pérez",
		IsActive:  true,
		CreatedAt: time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.Account {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	hash, err := password.NewHasher(password.MinCost).Hash(u.Password)
	if err != nil {
		panic(err)
	}
	account := user.NewAccount(email, hash, u.Name, u.IsSuperuser, u.CreatedAt)
	if !u.IsActive {
		account.Deactivate()
	}
	return account
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsSuperuser() *UserBuilder {
	u.IsSuperuser = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
