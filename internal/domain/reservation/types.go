package reservation

// Phase is the submitter's lifecycle for one page view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome classifies a submission for rendering.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeValidation Outcome = "validation"
	OutcomeRejected   Outcome = "rejected"
	OutcomeConnection Outcome = "connection"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeValidation, OutcomeRejected, OutcomeConnection:
		return true
	default:
		return false
	}
}
