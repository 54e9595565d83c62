//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"reservas-web/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON. A non-empty session is sent the way the
// browser does, as the session cookie.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, session string) *httptest.ResponseRecorder {
	t.Helper()
	var cookies []*http.Cookie
	if session != "" {
		cookies = append(cookies, &http.Cookie{Name: cookie.SessionCookieName, Value: session})
	}
	return PerformRequestWithCookies(t, router, method, path, body, cookies)
}

func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	contentType := ""
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(jsonBody)
		contentType = "application/json"
	}
	return serve(router, httptest.NewRequest(method, path, reader), contentType, cookies)
}

// PerformFormRequest posts an urlencoded form, like the login form.
func PerformFormRequest(t *testing.T, router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	return serve(router, req, "application/x-www-form-urlencoded", cookies)
}

// PerformMultipartRequest posts fields as multipart/form-data, like the
// contact form.
func PerformMultipartRequest(t *testing.T, router *gin.Engine, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	return serve(router, req, mw.FormDataContentType(), nil)
}

// ExtractCookie returns the named cookie set by the response, or nil.
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func serve(router *gin.Engine, req *http.Request, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
