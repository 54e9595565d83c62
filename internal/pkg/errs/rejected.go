package errs

import (
	"errors"
	"fmt"
)

// RejectedError is a non-2xx answer from the backend. Detail holds the
// server-provided message and may be empty.
type RejectedError struct {
	Status int
	Detail string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server responded with status %d", e.Status)
	}
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Detail)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func NewRejected(status int, detail string) error {
	return &RejectedError{Status: status, Detail: detail}
}

// RejectionDetail returns the server detail carried by err, if any.
func RejectionDetail(err error) (string, bool) {
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		return "", false
	}
	return rejected.Detail, rejected.Detail != ""
}

func RejectionStatus(err error) int {
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		return 0
	}
	return rejected.Status
}
