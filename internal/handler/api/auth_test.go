//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"reservas-web/internal/handler/api"
	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/handler/middleware"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/cookie"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/jwt"
	"reservas-web/internal/pkg/logger"
	"reservas-web/internal/usecase/backend"
	"reservas-web/tests/common/builder"
	"reservas-web/tests/common/httptest"
	backendmock "reservas-web/tests/mock/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *backendmock.MockAuthCommands
	mockQueries   *backendmock.MockUserQueries
	mockValidator *backendmock.MockTokenValidator
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	httperr.RegisterFieldNames()
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestDevServerConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = backendmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = backendmock.NewMockUserQueries(s.mockCtrl)
	s.mockValidator = backendmock.NewMockTokenValidator(s.mockCtrl)
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clock.NewRealClock())
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, cfg)
	authMiddleware := middleware.NewAuthMiddleware(s.mockValidator, logger.Discard())

	s.router.POST("/auth/jwt/login", handler.Login)
	s.router.POST("/auth/jwt/logout", authMiddleware.RequireAuth(), handler.Logout)
	s.router.GET("/users/me", authMiddleware.RequireAuth(), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	path := "/auth/jwt/login"
	auth := builder.NewAuthBuilder()

	s.Run("success: 204 and an HttpOnly session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCredentials()).
			Return("signed-token", nil).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, path, auth.BuildForm(), nil)

		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		s.Equal("signed-token", session.Value)
		s.True(session.HttpOnly)
		s.Equal(3600, session.MaxAge)
	})

	s.Run("error: 422 when a field is missing", func() {
		testCases := []struct {
			name  string
			form  func() url.Values
			field string
		}{
			{name: "missing username", form: func() url.Values {
				return (&builder.AuthBuilder{Password: "ana12345"}).BuildForm()
			}, field: "username"},
			{name: "missing password", form: func() url.Values {
				return (&builder.AuthBuilder{Email: "ana@example.com"}).BuildForm()
			}, field: "password"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformFormRequest(s.T(), s.router, path, tc.form(), nil)
				httptest.AssertValidationError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedDetail string
		}{
			{
				name:           "invalid credentials",
				commandsError:  backend.ErrInvalidCredentials,
				expectedStatus: http.StatusBadRequest,
				expectedDetail: "LOGIN_BAD_CREDENTIALS",
			},
			{
				name:           "inactive account",
				commandsError:  errs.Mark(backend.ErrUserInactive, backend.ErrInvalidCredentials),
				expectedStatus: http.StatusBadRequest,
				expectedDetail: "LOGIN_BAD_CREDENTIALS",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store error"),
				expectedStatus: http.StatusInternalServerError,
				expectedDetail: "Internal Server Error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCredentials()).
					Return("", tc.commandsError).Times(1)

				rec := httptest.PerformFormRequest(s.T(), s.router, path, auth.BuildForm(), nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedDetail)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
			})
		}
	})

	s.Run("error: a username that is not an email never reaches the usecase", func() {
		form := auth.BuildForm()
		form.Set("username", "ana")

		rec := httptest.PerformFormRequest(s.T(), s.router, path, form, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "LOGIN_BAD_CREDENTIALS")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	path := "/auth/jwt/logout"

	s.Run("success: 204 and the cookie is cleared", func() {
		s.mockValidator.EXPECT().ValidateToken("signed-token").Return(uuid.New(), nil).Times(1)

		session := &http.Cookie{Name: cookie.SessionCookieName, Value: "signed-token"}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, path, nil, []*http.Cookie{session})

		s.Equal(http.StatusNoContent, rec.Code)
		cleared := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Negative(cleared.MaxAge)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	path := "/users/me"
	account := builder.NewUserBuilder().AsSuperuser().BuildDomain()

	s.Run("success: returns the current user", func() {
		s.mockValidator.EXPECT().ValidateToken("signed-token").Return(account.ID(), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), account.ID()).Return(account, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "signed-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.UserResponse{
			ID:          account.ID().String(),
			Email:       "ana@example.com",
			Name:        "Ana Pérez",
			IsActive:    true,
			IsSuperuser: true,
		}, response)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 for an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("forged").Return(uuid.Nil, jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "user not found", queriesError: backend.ErrUserNotFound, expectedStatus: http.StatusUnauthorized},
			{name: "user inactive", queriesError: backend.ErrUserInactive, expectedStatus: http.StatusUnauthorized},
			{name: "internal server error", queriesError: errors.New("store error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockValidator.EXPECT().ValidateToken("signed-token").Return(account.ID(), nil).Times(1)
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), account.ID()).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "signed-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
