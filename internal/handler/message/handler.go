package message

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/middleware"
	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/message"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

// Handler serves the appointment message thread, shared by both portals.
type Handler struct {
	service *message.Service
}

func NewHandler(service *message.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/:id/messages", h.SendMessage)
	r.GET("/:id/messages", h.ListMessages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid appointment id", err))
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	msg, err := h.service.Send(c.Request.Context(), principal, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, msg)
}

func (h *Handler) ListMessages(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid appointment id", err))
		return
	}

	messages, err := h.service.List(c.Request.Context(), principal, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, messages)
}
