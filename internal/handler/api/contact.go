package api

import (
	"net/http"

	reqdto "reservas-web/internal/handler/dto/request"
	resdto "reservas-web/internal/handler/dto/response"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/usecase/backend"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands backend.ContactCommands
}

func NewContactHandler(contactCommands backend.ContactCommands) *ContactHandler {
	return &ContactHandler{
		contactCommands: contactCommands,
	}
}

// @Summary Send contact message
// @Tags contact
// @Accept multipart/form-data
// @Produce json
// @Param nombre formData string true "Name"
// @Param email formData string true "Email"
// @Param telefono formData string false "Phone"
// @Param asunto formData string true "Subject"
// @Param mensaje formData string true "Message"
// @Success 200 {object} resdto.ContactResponse
// @Failure 422 {object} httperr.Response
// @Router /enviar-contacto [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.ValidationDetail("body", err))
		return
	}

	msg, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, fieldsDetail(err))
		return
	}

	if err := h.contactCommands.Submit(c.Request.Context(), msg); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.ContactResponse{Success: true})
}
