package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"reservas-web/internal/pkg/errs"
)

// DecodeError is returned when a response body does not match the schema the
// endpoint promises. It matches errs.ErrMalformedResponse.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == errs.ErrMalformedResponse
}

func decodeErr(endpoint string, err error) error {
	return &DecodeError{Endpoint: endpoint, Err: err}
}

// errorBody is the backend's error envelope. Detail is either a string or a
// list of validation items carrying a msg.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

// parseDetail extracts the human-readable detail from an error body. Bodies
// that are not JSON or carry no usable detail yield "".
func parseDetail(body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	raw := bytes.TrimSpace(payload.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []validationItem
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

func rejected(status int, body []byte) error {
	return errs.NewRejected(status, parseDetail(body))
}
