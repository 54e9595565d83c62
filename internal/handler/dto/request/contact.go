package request

import (
	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/patch"
)

type ContactRequest struct {
	Nombre   string  `form:"nombre" binding:"required"`
	Email    string  `form:"email" binding:"required"`
	Telefono *string `form:"telefono"`
	Asunto   string  `form:"asunto" binding:"required"`
	Mensaje  string  `form:"mensaje" binding:"required"`
}

func (r *ContactRequest) ToDomain() (contact.Message, error) {
	return contact.NewMessage(contact.Form{
		Name:    r.Nombre,
		Email:   r.Email,
		Phone:   patch.Text(r.Telefono),
		Subject: r.Asunto,
		Body:    r.Mensaje,
	})
}
