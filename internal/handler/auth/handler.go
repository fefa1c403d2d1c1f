package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/auth"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	customer := r.Group("/customer")
	{
		customer.POST("/register", h.RegisterCustomer)
		customer.POST("/login", h.LoginCustomer)
	}

	business := r.Group("/business")
	{
		business.POST("/register", h.RegisterBusiness)
		business.POST("/login", h.LoginBusiness)
	}
}

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req model.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	customer, err := h.service.RegisterCustomer(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, customer)
}

func (h *Handler) RegisterBusiness(c *gin.Context) {
	var req model.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	business, err := h.service.RegisterBusiness(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, business)
}

func (h *Handler) LoginCustomer(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	token, err := h.service.LoginCustomer(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, token)
}

func (h *Handler) LoginBusiness(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	token, err := h.service.LoginBusiness(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, token)
}
