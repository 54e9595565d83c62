//go:build unit || e2e

package httptest

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertHeaders compares only the listed headers; an empty value asserts the
// header is absent.
func AssertHeaders(t *testing.T, h http.Header, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, h.Get(k), "header %s mismatch", k)
	}
}

// AssertRequestID checks the response carries a request ID and returns it.
func AssertRequestID(t *testing.T, h http.Header) string {
	t.Helper()
	id := h.Get("X-Request-ID")
	_, err := uuid.Parse(id)
	require.NoError(t, err, "X-Request-ID %q is not a UUID", id)
	return id
}
