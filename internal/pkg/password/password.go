package password

import (
	"errors"

	"reservas-web/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinCost     = bcrypt.MinCost
)

// Hasher hashes the passwords of seeded accounts. Tests use MinCost.
type Hasher struct {
	cost int
}

// NewHasher clamps cost to the range bcrypt accepts.
func NewHasher(cost int) Hasher {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return Hasher{cost: cost}
}

// Hash rejects empty passwords and those longer than bcrypt's 72 bytes.
func (h Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrInvalidPassword
		}
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Compare fails with ErrComparisonFailed on a wrong password; a malformed
// hash is a different error.
func Compare(hashed, password string) error {
	if hashed == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password")
	}
}
