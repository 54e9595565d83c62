//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/handler/api"
	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/handler/middleware"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/logger"
	"reservas-web/internal/usecase/backend"
	"reservas-web/tests/common/builder"
	"reservas-web/tests/common/httptest"
	"reservas-web/tests/common/testutil"
	backendmock "reservas-web/tests/mock/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *backendmock.MockBookingCommands
	mockValidator *backendmock.MockTokenValidator
	now           time.Time
}

func (s *ReservationHandlerTestSuite) SetupSuite() {
	httperr.RegisterFieldNames()
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.now = time.Date(2026, time.October, 19, 23, 30, 0, 0, time.UTC)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = backendmock.NewMockBookingCommands(s.mockCtrl)
	s.mockValidator = backendmock.NewMockTokenValidator(s.mockCtrl)
	handler := api.NewReservationHandler(s.mockCommands)
	authMiddleware := middleware.NewAuthMiddleware(s.mockValidator, logger.Discard())

	s.router.POST("/reservas", authMiddleware.OptionalAuth(), handler.CreateReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservas"
	form := builder.NewReservationFormBuilder()
	payload := form.BuildPayload()

	s.Run("success: 201 with the stored booking", func() {
		booking := form.BuildBooking(1, nil, s.now)
		s.mockCommands.EXPECT().Create(gomock.Any(), form.BuildRequest(), (*uuid.UUID)(nil)).
			Return(booking, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(1), response.ID)
		s.Equal("7", response.EventID.String())
		s.Equal("Ana Pérez", response.Name)
		s.Equal(2, response.Seats)
		s.Equal("2026-10-19T23:30:00Z", response.CreatedAt)
	})

	s.Run("success: a valid session attaches the user", func() {
		userID := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("session-token").Return(userID, nil).Times(1)
		s.mockCommands.EXPECT().Create(gomock.Any(), form.BuildRequest(), &userID).
			Return(form.BuildBooking(2, &userID, s.now), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "session-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: an invalid session books anonymously", func() {
		s.mockValidator.EXPECT().ValidateToken("stale").Return(uuid.Nil, errors.New("expired")).Times(1)
		s.mockCommands.EXPECT().Create(gomock.Any(), form.BuildRequest(), (*uuid.UUID)(nil)).
			Return(form.BuildBooking(3, nil, s.now), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "stale")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 422 lists the offending field", func() {
		testCases := []struct {
			name   string
			mutate testutil.Mutation
			field  string
		}{
			{name: "missing nombre", mutate: testutil.Drop("nombre"), field: "nombre"},
			{name: "empty nombre", mutate: testutil.Set("nombre", ""), field: "nombre"},
			{name: "missing email", mutate: testutil.Drop("email"), field: "email"},
			{name: "invalid email", mutate: testutil.Set("email", "no-es-un-email"), field: "email"},
			{name: "missing cupos", mutate: testutil.Drop("cupos"), field: "cupos"},
			{name: "zero cupos", mutate: testutil.Set("cupos", 0), field: "cupos"},
			{name: "missing evento_id", mutate: testutil.Drop("evento_id"), field: "evento_id"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.Payload(s.T(), payload, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertValidationError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: null cupos is reported as required", func() {
		body := testutil.Payload(s.T(), payload, testutil.Null("cupos"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		items := httptest.AssertValidationError(s.T(), rec, "cupos")
		s.Equal("Field required", items[0].Msg)
	})

	s.Run("error: maps booking errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedDetail string
		}{
			{
				name:           "unknown event",
				err:            errs.Mark(errors.New("no such event"), backend.ErrEventNotFound),
				expectedStatus: http.StatusNotFound,
				expectedDetail: "Evento no encontrado",
			},
			{
				name:           "sold out",
				err:            errs.Wrap(&reservation.AvailabilityError{Available: 0}, "create booking"),
				expectedStatus: http.StatusConflict,
				expectedDetail: "Sin cupos disponibles",
			},
			{
				name:           "not enough seats",
				err:            &reservation.AvailabilityError{Available: 3},
				expectedStatus: http.StatusConflict,
				expectedDetail: "Cupos disponibles: 3",
			},
			{
				name:           "store failure",
				err:            errors.New("disk full"),
				expectedStatus: http.StatusInternalServerError,
				expectedDetail: "Internal Server Error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedDetail)
			})
		}
	})

	s.Run("error: invalid booking is a 422 on cupos", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(reservation.ErrInvalidSeats, backend.ErrBookingInvalid)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "")
		httptest.AssertValidationError(s.T(), rec, "cupos")
	})
}
