//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"reservas-web/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status and, when expectedDetail is set,
// that the string detail contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse struct {
		Detail string `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedDetail != "" {
		assert.Contains(t, errorResponse.Detail, expectedDetail,
			"Response detail doesn't contain expected text")
	}
}

// AssertValidationError checks for a 422 whose detail list locates an error
// on field.
func AssertValidationError(t *testing.T, w *httptest.ResponseRecorder, field string) []httperr.ValidationItem {
	t.Helper()

	require.Equal(t, 422, w.Code, "Response: %s", w.Body.String())

	var errorResponse struct {
		Detail []httperr.ValidationItem `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse), w.Body.String())

	found := false
	for _, item := range errorResponse.Detail {
		if len(item.Loc) > 0 && item.Loc[len(item.Loc)-1] == field {
			found = true
		}
	}
	assert.True(t, found, "no validation error for %q in %s", field, w.Body.String())
	return errorResponse.Detail
}
