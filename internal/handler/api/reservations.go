package api

import (
	"net/http"

	"reservas-web/internal/domain/reservation"
	reqdto "reservas-web/internal/handler/dto/request"
	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/handler/middleware"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const detailEventNotFound = "Evento no encontrado"

type ReservationHandler struct {
	bookingCommands backend.BookingCommands
}

func NewReservationHandler(bookingCommands backend.BookingCommands) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create reservation
// @Description Book seats for an event. A session is optional.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservas [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.ValidationDetail("body", err))
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, fieldsDetail(err))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	booking, err := h.bookingCommands.Create(c.Request.Context(), domainReq, userID)
	if err != nil {
		var availErr *reservation.AvailabilityError
		switch {
		case errs.Is(err, backend.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, detailEventNotFound)
		case errs.As(err, &availErr):
			httperr.AbortWithError(c, http.StatusConflict, err, availErr.Error())
		case errs.Is(err, backend.ErrBookingInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, []httperr.ValidationItem{
				httperr.Item("body", reservation.FieldSeats, "Input should be greater than or equal to 1"),
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		}
		return
	}

	response, err := resdto.FromBooking(booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, response)
}

// fieldsDetail reports every blank required field as a validation item.
func fieldsDetail(err error) []httperr.ValidationItem {
	var fieldsErr *errs.FieldsError
	if !errs.As(err, &fieldsErr) {
		return httperr.ValidationDetail("body", err)
	}
	items := make([]httperr.ValidationItem, 0, len(fieldsErr.Missing))
	for _, name := range fieldsErr.Missing {
		items = append(items, httperr.Item("body", name, "Field required"))
	}
	return items
}
