package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/middleware"
	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/appointment"
	"github.com/appointmentsonthego/booking-api/internal/service/auth"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

// Handler serves the customer portal: profile management and the customer
// side of the appointment lifecycle.
type Handler struct {
	authService        *auth.Service
	appointmentService *appointment.Service
}

func NewHandler(authService *auth.Service, appointmentService *appointment.Service) *Handler {
	return &Handler{
		authService:        authService,
		appointmentService: appointmentService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.DELETE("/account", h.DeleteAccount)

	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.PUT("/:id/reschedule", h.RescheduleAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	customer, err := h.authService.GetCustomer(c.Request.Context(), principal)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, customer)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var req model.UpdateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	customer, err := h.authService.UpdateCustomerProfile(c.Request.Context(), principal, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, customer)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	if err := h.authService.DeleteCustomerAccount(c.Request.Context(), principal); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, httputil.NewSuccessResponse(gin.H{"deleted": true}))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	appt, err := h.appointmentService.Create(c.Request.Context(), principal.ID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, appt)
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

	appointments, err := h.appointmentService.ListForCustomer(c.Request.Context(), principal.ID, status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) RescheduleAppointment(c *gin.Context) {
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

	var req model.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	appt, err := h.appointmentService.Reschedule(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
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

	appt, err := h.appointmentService.Cancel(c.Request.Context(), principal.ID, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}
