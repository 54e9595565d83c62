package request

import (
	"reservas-web/internal/domain/user"
)

// LoginRequest is the OAuth2 password form: the email travels as username.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
