package user

import (
	"time"

	"github.com/google/uuid"
)

// Account is a user known to the development backend.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	isSuperuser  bool
	isActive     bool
	createdAt    time.Time
}

func NewAccount(email Email, passwordHash, name string, isSuperuser bool, now time.Time) *Account {
	return &Account{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		isSuperuser:  isSuperuser,
		isActive:     true,
		createdAt:    now,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Name() string         { return a.name }
func (a *Account) IsSuperuser() bool    { return a.isSuperuser }
func (a *Account) IsActive() bool       { return a.isActive }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Deactivate() {
	a.isActive = false
}

// Profile is what the session probe returns about the current user.
type Profile struct {
	Email       string
	IsSuperuser bool
}

func (a *Account) Profile() Profile {
	return Profile{Email: a.email.Value(), IsSuperuser: a.isSuperuser}
}
