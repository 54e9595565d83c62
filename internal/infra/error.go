package infra

import (
	"log/slog"

	"reservas-web/internal/pkg/errs"
)

// ErrorKind classifies failures of the development backend's store. Use
// cases branch on the kind, never on the message.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not found"
	KindDuplicateKey ErrorKind = "duplicate key"
	KindInvalidSeed  ErrorKind = "invalid seed"
)

type StoreError struct {
	Kind    ErrorKind
	Subject string
	err     error
}

func (e *StoreError) Error() string {
	msg := string(e.Kind) + ": " + e.Subject
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.err
}

func NewStoreErr(kind ErrorKind, subject string) error {
	return &StoreError{Kind: kind, Subject: subject}
}

// WrapStoreErr logs the failure and returns it as a StoreError. err may be
// nil when the store itself detected the problem.
func WrapStoreErr(logger *slog.Logger, kind ErrorKind, subject string, err error) error {
	attrs := []any{slog.String("kind", string(kind)), slog.String("subject", subject)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, subject)
	}
	logger.Error("Store error", attrs...)

	return &StoreError{Kind: kind, Subject: subject, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *StoreError
	return errs.As(err, &e) && e.Kind == kind
}
