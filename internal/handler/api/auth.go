package api

import (
	"net/http"

	reqdto "reservas-web/internal/handler/dto/request"
	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/handler/middleware"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/cookie"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/jwt"
	"reservas-web/internal/usecase/backend"

	"github.com/gin-gonic/gin"
)

const detailBadCredentials = "LOGIN_BAD_CREDENTIALS"

var errNoUserInContext = errs.New("user id missing from context")

type AuthHandler struct {
	authCommands backend.AuthCommands
	userQueries  backend.UserQueries
	jwtService   *jwt.Service
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands backend.AuthCommands, userQueries backend.UserQueries, jwtService *jwt.Service, cfg config.DevServerConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary Cookie login
// @Description OAuth2 password form; the email goes in username
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /auth/jwt/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.ValidationDetail("body", err))
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, detailBadCredentials)
		return
	}

	token, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		if errs.Is(err, backend.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, detailBadCredentials)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}

	cookie.SetSessionCookie(c, h.cookieConfig, token, h.jwtService.Duration())
	c.Status(http.StatusNoContent)
}

// @Summary Cookie logout
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/jwt/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie ends the session.
	cookie.ClearSessionCookie(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, "Unauthorized")
		return
	}

	account, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, backend.ErrUserNotFound), errs.Is(err, backend.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		}
		return
	}

	response, err := resdto.FromAccount(account)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, response)
}
