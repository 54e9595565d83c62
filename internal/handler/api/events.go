package api

import (
	"net/http"

	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/usecase/backend"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventQueries backend.EventQueries
}

func NewEventHandler(eventQueries backend.EventQueries) *EventHandler {
	return &EventHandler{
		eventQueries: eventQueries,
	}
}

// @Summary List available events
// @Description Events dated today or later, optionally narrowed by category
// @Tags events
// @Produce json
// @Param categoria query string false "Category"
// @Success 200 {array} resdto.EventResponse
// @Failure 500 {object} httperr.Response
// @Router /eventos-disponibles [get]
func (h *EventHandler) ListAvailable(c *gin.Context) {
	events, err := h.eventQueries.ListAvailable(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}

	response, err := resdto.FromEventSnapshots(events)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, response)
}
