package public

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/directory"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

// Handler serves the anonymous business directory.
type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	businesses := r.Group("/businesses")
	{
		businesses.GET("", h.SearchBusinesses)
		businesses.GET("/:id", h.GetBusiness)
		businesses.GET("/:id/timeslots", h.GetTimeSlots)
		businesses.GET("/:id/services", h.GetServices)
		businesses.GET("/:id/booked-slots", h.GetBookedSlots)
	}
}

func (h *Handler) SearchBusinesses(c *gin.Context) {
	filters := &model.BusinessFilters{
		Specialty: c.Query("specialty"),
		Location:  c.Query("location"),
	}

	businesses, err := h.service.SearchBusinesses(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, businesses)
}

func (h *Handler) GetBusiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid business id", err))
		return
	}

	business, err := h.service.GetBusiness(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, business)
}

func (h *Handler) GetTimeSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid business id", err))
		return
	}

	slots, err := h.service.GetActiveSlots(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, slots)
}

func (h *Handler) GetServices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid business id", err))
		return
	}

	services, err := h.service.GetActiveServices(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, services)
}

func (h *Handler) GetBookedSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid business id", err))
		return
	}

	date := c.Query("date")
	if date == "" {
		httputil.RespondWithError(c, apperrors.NewValidation("date query parameter is required", nil))
		return
	}

	times, err := h.service.GetBookedTimes(c.Request.Context(), id, date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"date": date, "booked_times": times})
}
