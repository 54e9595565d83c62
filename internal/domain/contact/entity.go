package contact

import "reservas-web/internal/pkg/errs"

const (
	MessageSent            = "¡Gracias por tu mensaje! Te contactaremos pronto."
	MessageNotSent         = "Hubo un problema al enviar tu mensaje."
	MessageConnection      = "Error al enviar el mensaje."
	MessageMissingRequired = "Por favor, completa todos los campos obligatorios."
)

// Field names as posted by the contact form.
const (
	FieldName    = "nombre"
	FieldEmail   = "email"
	FieldPhone   = "telefono"
	FieldSubject = "asunto"
	FieldBody    = "mensaje"
)

type Form struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

func (f *Form) Reset() {
	*f = Form{}
}

// Message is a contact form that passed client-side checks.
type Message struct {
	name    string
	email   string
	phone   string
	subject string
	body    string
}

// NewMessage requires name, email and subject; phone and body are optional
// on the client.
func NewMessage(form Form) (Message, error) {
	if err := errs.RequireFields(
		errs.Field{Name: FieldName, Value: form.Name},
		errs.Field{Name: FieldEmail, Value: form.Email},
		errs.Field{Name: FieldSubject, Value: form.Subject},
	); err != nil {
		return Message{}, err
	}
	return Message{
		name:    form.Name,
		email:   form.Email,
		phone:   form.Phone,
		subject: form.Subject,
		body:    form.Body,
	}, nil
}

func (m Message) Name() string    { return m.name }
func (m Message) Email() string   { return m.email }
func (m Message) Phone() string   { return m.phone }
func (m Message) Subject() string { return m.subject }
func (m Message) Body() string    { return m.body }

// Fields returns the form encoding of the message, optional fields included.
func (m Message) Fields() map[string]string {
	return map[string]string{
		FieldName:    m.name,
		FieldEmail:   m.email,
		FieldPhone:   m.phone,
		FieldSubject: m.subject,
		FieldBody:    m.body,
	}
}

// Result is the feedback shown after the contact form is posted.
type Result struct {
	Sent    bool
	Message string
}

func SentResult() Result {
	return Result{Sent: true, Message: MessageSent}
}

func NotSentResult() Result {
	return Result{Message: MessageNotSent}
}

func ConnectionResult() Result {
	return Result{Message: MessageConnection}
}

func ValidationResult() Result {
	return Result{Message: MessageMissingRequired}
}
