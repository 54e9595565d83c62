//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"reservas-web/internal/pkg/cookie"
	"reservas-web/tests/common/builder"
	"reservas-web/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the cookie transport and returns the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	form := (&builder.AuthBuilder{Email: email, Password: password}).BuildForm()
	w := httptest.PerformFormRequest(t, router, "/auth/jwt/login", form, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "Session cookie not found")
	require.NotEmpty(t, session.Value, "Session cookie is empty")

	return session
}

func LogoutUser(t *testing.T, router *gin.Engine, session *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/auth/jwt/logout", nil, []*http.Cookie{session})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
