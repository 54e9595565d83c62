package response

import (
	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"nombre"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

func FromAccount(a *user.Account) (*UserResponse, error) {
	var res UserResponse
	if err := copier.CopyWithOption(&res, a, copyOption); err != nil {
		return nil, errs.Wrap(err, "convert account")
	}
	return &res, nil
}

type ContactResponse struct {
	Success bool `json:"success"`
}
