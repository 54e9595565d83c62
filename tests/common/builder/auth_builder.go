//go:build unit || e2e

package builder

import (
	"net/url"

	"reservas-web/internal/domain/user"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "ana@example.com",
		Password: "ana12345",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildCredentials() user.Credentials {
	creds, err := user.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}

// BuildForm returns the login form as the site posts it.
func (a *AuthBuilder) BuildForm() url.Values {
	form := url.Values{}
	if a.Email != "" {
		form.Set("username", a.Email)
	}
	if a.Password != "" {
		form.Set("password", a.Password)
	}
	return form
}
