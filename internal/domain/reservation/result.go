package reservation

const (
	MessageSuccess         = "¡Reserva realizada con éxito!"
	MessageRejected        = "Error al reservar."
	MessageConnection      = "Error de conexión con el servidor."
	MessageMissingRequired = "Por favor, completa todos los campos obligatorios."
)

// Result is the user-facing feedback of one submission.
type Result struct {
	Outcome Outcome
	Message string
}

func SuccessResult() Result {
	return Result{Outcome: OutcomeSuccess, Message: MessageSuccess}
}

func ValidationResult() Result {
	return Result{Outcome: OutcomeValidation, Message: MessageMissingRequired}
}

// RejectedResult shows the server detail verbatim, or the generic message
// when the server sent none.
func RejectedResult(detail string) Result {
	if detail == "" {
		detail = MessageRejected
	}
	return Result{Outcome: OutcomeRejected, Message: detail}
}

func ConnectionResult() Result {
	return Result{Outcome: OutcomeConnection, Message: MessageConnection}
}

func (r Result) Success() bool {
	return r.Outcome == OutcomeSuccess
}

// Blocking reports whether the message must be acknowledged before the user
// continues, like a browser alert.
func (r Result) Blocking() bool {
	return r.Outcome == OutcomeValidation
}

// ResetsForm reports whether the form inputs must be cleared.
func (r Result) ResetsForm() bool {
	return r.Success()
}
