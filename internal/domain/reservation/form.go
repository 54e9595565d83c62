package reservation

import "reservas-web/internal/domain/event"

// Form holds the raw reservation inputs exactly as typed, plus the selected
// event's identifier in the form the backend listed it.
type Form struct {
	Name    string
	Email   string
	Seats   string
	EventID event.ID
}

// Reset clears every input, as after a successful booking.
func (f *Form) Reset() {
	*f = Form{}
}

func (f Form) IsEmpty() bool {
	return f == Form{}
}
