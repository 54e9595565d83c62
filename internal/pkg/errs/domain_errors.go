package errs

import "errors"

// Sentinel errors shared by the client, the use cases and the terminal page
var (
	// Form errors
	ErrValidation = errors.New("validation failed")

	// Backend errors
	ErrConnection        = errors.New("connection to server failed")
	ErrRejected          = errors.New("request rejected by server")
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnauthenticated   = errors.New("unauthenticated")

	// Submission errors
	ErrSubmissionInProgress = errors.New("submission already in progress")
)
