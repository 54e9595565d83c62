//go:build unit || e2e

package builder

import (
	"reservas-web/internal/domain/contact"
)

type ContactFormBuilder struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

func NewContactFormBuilder() *ContactFormBuilder {
	return &ContactFormBuilder{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Phone:   "099 123 456",
		Subject: "Consulta por talleres",
		Body:    "¿Hay talleres para niños?",
	}
}

func (c *ContactFormBuilder) With(mutate func(*ContactFormBuilder)) *ContactFormBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *ContactFormBuilder) Build() contact.Form {
	return contact.Form{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Body:    c.Body,
	}
}

func (c *ContactFormBuilder) BuildMessage() contact.Message {
	msg, err := contact.NewMessage(c.Build())
	if err != nil {
		panic(err)
	}
	return msg
}

// BuildFields returns the multipart form fields the page posts.
func (c *ContactFormBuilder) BuildFields() map[string]string {
	return map[string]string{
		contact.FieldName:    c.Name,
		contact.FieldEmail:   c.Email,
		contact.FieldPhone:   c.Phone,
		contact.FieldSubject: c.Subject,
		contact.FieldBody:    c.Body,
	}
}
