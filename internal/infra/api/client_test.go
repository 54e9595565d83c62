//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"
	"reservas-web/internal/infra/api"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/logger"
	"reservas-web/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	router *gin.Engine
	server *httptest.Server
	client *api.Client
}

func (s *ClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.server = httptest.NewServer(s.router)

	cfg := config.NewTestConfig().API
	cfg.BaseURL = s.server.URL
	client, err := api.NewClient(cfg, logger.Discard())
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestListAvailableEvents() {
	s.Run("success: decodes numeric and string ids", func() {
		s.router.GET("/eventos-disponibles", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", []byte(
				`[{"id":1,"titulo":"Taller de cerámica","fecha":"2026-11-02"},{"id":"abc","titulo":"Yoga","fecha":"2026-11-05"}]`))
		})

		events, err := s.client.ListAvailableEvents(context.Background())
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal("1", events[0].ID().String())
		s.Equal("Taller de cerámica (2026-11-02)", events[0].Label())
		s.Equal("abc", events[1].ID().String())
	})
}

func (s *ClientTestSuite) TestListAvailableEvents_Malformed() {
	cases := []struct {
		name string
		body string
	}{
		{name: "not a list", body: `{"id":1}`},
		{name: "missing titulo", body: `[{"id":1,"fecha":"2026-11-02"}]`},
		{name: "missing id", body: `[{"titulo":"x","fecha":"2026-11-02"}]`},
		{name: "bad date", body: `[{"id":1,"titulo":"x","fecha":"02/11/2026"}]`},
		{name: "not json", body: `<html>`},
	}

	var body string
	s.router.GET("/eventos-disponibles", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(body))
	})

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body = tc.body

			events, err := s.client.ListAvailableEvents(context.Background())
			s.Nil(events)
			s.True(errs.Is(err, errs.ErrMalformedResponse), "got %v", err)
			var decodeErr *api.DecodeError
			s.ErrorAs(err, &decodeErr)
			s.Equal("GET /eventos-disponibles", decodeErr.Endpoint)
		})
	}
}

func (s *ClientTestSuite) TestListAvailableEvents_NamesBadRecord() {
	s.router.GET("/eventos-disponibles", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(
			`[{"id":1,"titulo":"Yoga","fecha":"2026-11-02"},{"id":2,"titulo":"Feria","fecha":"mañana"}]`))
	})

	_, err := s.client.ListAvailableEvents(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "decode GET /eventos-disponibles response: record 1: ")
}

func (s *ClientTestSuite) TestListAvailableEvents_ServerError() {
	s.router.GET("/eventos-disponibles", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "boom"})
	})

	_, err := s.client.ListAvailableEvents(context.Background())
	s.True(errs.Is(err, errs.ErrRejected))
	s.Equal(http.StatusInternalServerError, errs.RejectionStatus(err))
}

func (s *ClientTestSuite) TestCreateReservation() {
	var got map[string]any
	s.router.POST("/reservas", func(c *gin.Context) {
		s.Equal("application/json", c.ContentType())
		s.Require().NoError(c.ShouldBindJSON(&got))
		c.JSON(http.StatusCreated, gin.H{"id": 10})
	})

	req, err := reservation.NewRequest(builder.NewReservationFormBuilder().WithSeats("3 personas").Build())
	s.Require().NoError(err)

	s.Require().NoError(s.client.CreateReservation(context.Background(), req))
	s.Equal(map[string]any{
		"nombre":    "Ana Pérez",
		"email":     "ana@example.com",
		"cupos":     float64(3),
		"evento_id": float64(7),
	}, got)
}

func (s *ClientTestSuite) TestCreateReservation_EventIDKeepsListedForm() {
	s.router.GET("/eventos-disponibles", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`[
			{"id":"007","titulo":"Taller","fecha":"2026-11-02"},
			{"id":"42","titulo":"Yoga","fecha":"2026-11-05"},
			{"id":9,"titulo":"Caminata","fecha":"2026-11-09"}]`))
	})
	var sent map[string]json.RawMessage
	s.router.POST("/reservas", func(c *gin.Context) {
		s.Require().NoError(c.ShouldBindJSON(&sent))
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})

	events, err := s.client.ListAvailableEvents(context.Background())
	s.Require().NoError(err)
	options := event.OptionsFor(events)

	want := []string{`"007"`, `"42"`, `9`}
	for i, option := range options {
		form := builder.NewReservationFormBuilder().Build()
		form.EventID = option.Value
		req, err := reservation.NewRequest(form)
		s.Require().NoError(err)

		s.Require().NoError(s.client.CreateReservation(context.Background(), req))
		s.Equal(want[i], string(sent["evento_id"]))
	}
}

func (s *ClientTestSuite) TestCreateReservation_Rejected() {
	cases := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "string detail", status: http.StatusConflict, body: `{"detail":"Sin cupos disponibles"}`, wantDetail: "Sin cupos disponibles"},
		{name: "validation list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"},{"msg":"value is not a valid integer"}]}`, wantDetail: "field required; value is not a valid integer"},
		{name: "no detail", status: http.StatusBadRequest, body: `{"error":"x"}`, wantDetail: ""},
		{name: "html body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantDetail: ""},
	}

	var status int
	var body string
	s.router.POST("/reservas", func(c *gin.Context) {
		c.Data(status, "application/json", []byte(body))
	})

	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body = tc.status, tc.body

			req, err := reservation.NewRequest(builder.NewReservationFormBuilder().Build())
			s.Require().NoError(err)

			err = s.client.CreateReservation(context.Background(), req)
			s.True(errs.Is(err, errs.ErrRejected))
			s.False(errs.Is(err, errs.ErrConnection))
			detail, _ := errs.RejectionDetail(err)
			s.Equal(tc.wantDetail, detail)
			s.Equal(tc.status, errs.RejectionStatus(err))
		})
	}
}

func (s *ClientTestSuite) TestCurrentUser() {
	var status int
	var body gin.H
	s.router.GET("/users/me", func(c *gin.Context) {
		c.JSON(status, body)
	})

	s.Run("logged in", func() {
		status, body = http.StatusOK, gin.H{"id": "u1", "email": "admin@example.com", "is_superuser": true}

		profile, err := s.client.CurrentUser(context.Background())
		s.Require().NoError(err)
		s.Equal(&user.Profile{Email: "admin@example.com", IsSuperuser: true}, profile)
	})

	s.Run("logged out", func() {
		status, body = http.StatusUnauthorized, gin.H{"detail": "Unauthorized"}

		profile, err := s.client.CurrentUser(context.Background())
		s.Nil(profile)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("missing email", func() {
		status, body = http.StatusOK, gin.H{"is_superuser": false}

		_, err := s.client.CurrentUser(context.Background())
		s.True(errs.Is(err, errs.ErrMalformedResponse))
	})
}

func (s *ClientTestSuite) TestLoginKeepsSessionCookie() {
	s.router.POST("/auth/jwt/login", func(c *gin.Context) {
		if c.PostForm("username") != "ana@example.com" || c.PostForm("password") != "secreto" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "LOGIN_BAD_CREDENTIALS"})
			return
		}
		c.SetCookie("auth", "token-1", 3600, "/", "", false, true)
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/users/me", func(c *gin.Context) {
		if token, err := c.Cookie("auth"); err != nil || token != "token-1" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": "ana@example.com", "is_superuser": false})
	})
	s.router.POST("/auth/jwt/logout", func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	})

	ctx := context.Background()

	bad, err := user.NewCredentials("ana@example.com", "incorrecto")
	s.Require().NoError(err)
	err = s.client.Login(ctx, bad)
	detail, _ := errs.RejectionDetail(err)
	s.Equal("LOGIN_BAD_CREDENTIALS", detail)

	creds, err := user.NewCredentials("ana@example.com", "secreto")
	s.Require().NoError(err)
	s.Require().NoError(s.client.Login(ctx, creds))

	profile, err := s.client.CurrentUser(ctx)
	s.Require().NoError(err)
	s.Equal("ana@example.com", profile.Email)

	s.Require().NoError(s.client.Logout(ctx))
	_, err = s.client.CurrentUser(ctx)
	s.True(errs.Is(err, errs.ErrUnauthenticated))
}

func (s *ClientTestSuite) TestSendContact() {
	s.router.POST("/enviar-contacto", func(c *gin.Context) {
		s.Equal("multipart/form-data", c.ContentType())
		ok := c.PostForm("nombre") == "Ana" && c.PostForm("asunto") == "Consulta"
		c.JSON(http.StatusOK, gin.H{"success": ok})
	})

	msg, err := contact.NewMessage(contact.Form{Name: "Ana", Email: "ana@example.com", Subject: "Consulta"})
	s.Require().NoError(err)

	ok, err := s.client.SendContact(context.Background(), msg)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ClientTestSuite) TestContextCanceled() {
	s.router.GET("/eventos-disponibles", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.ListAvailableEvents(ctx)
	s.ErrorIs(err, context.Canceled)
	s.False(errs.Is(err, errs.ErrConnection))
}

func TestClient_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	cfg := config.NewTestConfig().API
	cfg.BaseURL = url
	cfg.Timeout = time.Second
	client, err := api.NewClient(cfg, logger.Discard())
	require.NoError(t, err)

	req, err := reservation.NewRequest(builder.NewReservationFormBuilder().Build())
	require.NoError(t, err)

	err = client.CreateReservation(context.Background(), req)
	assert.True(t, errs.Is(err, errs.ErrConnection), "got %v", err)
	assert.False(t, errs.Is(err, errs.ErrRejected))
	_, hasDetail := errs.RejectionDetail(err)
	assert.False(t, hasDetail)
}

func TestNewClientWithHTTP(t *testing.T) {
	t.Run("relative base URL is refused", func(t *testing.T) {
		_, err := api.NewClientWithHTTP("/api", "", http.DefaultClient, logger.Discard())
		assert.Error(t, err)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.UserAgent()
			_, _ = io.WriteString(w, "[]")
		}))
		defer server.Close()

		client, err := api.NewClientWithHTTP(server.URL+"/", "reservas-web-test", server.Client(), logger.Discard())
		require.NoError(t, err)

		events, err := client.ListAvailableEvents(context.Background())
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, "reservas-web-test", agent)
	})
}
