package business

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/middleware"
	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/appointment"
	"github.com/appointmentsonthego/booking-api/internal/service/auth"
	"github.com/appointmentsonthego/booking-api/internal/service/availability"
	"github.com/appointmentsonthego/booking-api/internal/service/catalog"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

// Handler serves the business portal: profile, weekly time slots, the
// service catalog and appointment status management.
type Handler struct {
	authService         *auth.Service
	appointmentService  *appointment.Service
	availabilityService *availability.Service
	catalogService      *catalog.Service
}

func NewHandler(
	authService *auth.Service,
	appointmentService *appointment.Service,
	availabilityService *availability.Service,
	catalogService *catalog.Service,
) *Handler {
	return &Handler{
		authService:         authService,
		appointmentService:  appointmentService,
		availabilityService: availabilityService,
		catalogService:      catalogService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.DELETE("/account", h.DeleteAccount)

	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.PUT("/:id/status", h.UpdateAppointmentStatus)
		appointments.PATCH("/:id/status", h.UpdateAppointmentStatus)
	}

	timeslots := r.Group("/timeslots")
	{
		timeslots.POST("", h.CreateTimeSlot)
		timeslots.GET("", h.ListTimeSlots)
		timeslots.PUT("/:id", h.UpdateTimeSlot)
		timeslots.DELETE("/:id", h.DeleteTimeSlot)
	}

	services := r.Group("/services")
	{
		services.POST("", h.CreateService)
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	business, err := h.authService.GetBusiness(c.Request.Context(), principal)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, business)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var req model.UpdateBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	business, err := h.authService.UpdateBusinessProfile(c.Request.Context(), principal, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, business)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	if err := h.authService.DeleteBusinessAccount(c.Request.Context(), principal); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, httputil.NewSuccessResponse(gin.H{"deleted": true}))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var status *model.AppointmentStatus
	if s := c.Query("status"); s != "" {
		v := model.AppointmentStatus(s)
		status = &v
	}

	appointments, err := h.appointmentService.ListForBusiness(c.Request.Context(), principal.ID, status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
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

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	appt, err := h.appointmentService.UpdateStatus(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

func (h *Handler) CreateTimeSlot(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var req model.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	slot, err := h.availabilityService.CreateSlot(c.Request.Context(), principal.ID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, slot)
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	slots, err := h.availabilityService.ListSlots(c.Request.Context(), principal.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, slots)
}

func (h *Handler) UpdateTimeSlot(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid time slot id", err))
		return
	}

	var req model.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	slot, err := h.availabilityService.UpdateSlot(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, slot)
}

func (h *Handler) DeleteTimeSlot(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid time slot id", err))
		return
	}

	if err := h.availabilityService.DeleteSlot(c.Request.Context(), principal.ID, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, httputil.NewSuccessResponse(gin.H{"deleted": true}))
}

func (h *Handler) CreateService(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), principal.ID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, svc)
}

func (h *Handler) ListServices(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), principal.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, services)
}

func (h *Handler) GetService(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid service id", err))
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), principal.ID, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid service id", err))
		return
	}

	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid service id", err))
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), principal.ID, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, httputil.NewSuccessResponse(gin.H{"deleted": true}))
}
