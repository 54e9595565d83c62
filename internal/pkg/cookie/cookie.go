package cookie

import (
	"net/http"
	"strings"
	"time"

	"reservas-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SessionCookieName matches the cookie the site backend issues on login.
const SessionCookieName = "auth"

// Session builds the HttpOnly session cookie for token. A non-positive
// maxAge builds the cookie that deletes it.
func Session(cfg config.CookieConfig, token string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge.Seconds())
	} else {
		c.Value = ""
		c.MaxAge = -1
	}
	// browsers drop SameSite=None cookies that are not Secure
	if c.SameSite == http.SameSiteNoneMode {
		c.Secure = true
	}
	return c
}

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	http.SetCookie(c.Writer, Session(cfg, token, expiry))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, Session(cfg, "", 0))
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
