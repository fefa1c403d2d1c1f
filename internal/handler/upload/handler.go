package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/appointmentsonthego/booking-api/internal/middleware"
	"github.com/appointmentsonthego/booking-api/internal/service/upload"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

const formFileField = "file"

// Handler serves business media uploads and the stored files themselves.
type Handler struct {
	service *upload.Service
}

func NewHandler(service *upload.Service) *Handler {
	return &Handler{service: service}
}

// RegisterBusinessRoutes mounts the authenticated upload endpoints; the
// caller wraps the group with business auth.
func (h *Handler) RegisterBusinessRoutes(r *gin.RouterGroup) {
	r.POST("/business/profile-image", h.uploadImage(upload.ImageKindProfile))
	r.POST("/business/cover-image", h.uploadImage(upload.ImageKindCover))
	r.DELETE("/business/profile-image", h.deleteImage(upload.ImageKindProfile))
	r.DELETE("/business/cover-image", h.deleteImage(upload.ImageKindCover))
}

// RegisterFileRoutes mounts the anonymous file-serving endpoint.
func (h *Handler) RegisterFileRoutes(r *gin.RouterGroup) {
	r.GET("/files/:filename", h.ServeFile)
}

func (h *Handler) uploadImage(kind upload.ImageKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFromContext(c)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
			return
		}

		header, err := c.FormFile(formFileField)
		if err != nil {
			httputil.RespondWithError(c, apperrors.NewValidation("file is required", err))
			return
		}

		business, err := h.service.UploadBusinessImage(c.Request.Context(), principal.ID, kind, header)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, business)
	}
}

func (h *Handler) deleteImage(kind upload.ImageKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFromContext(c)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewUnauthorized(nil))
			return
		}

		business, err := h.service.DeleteBusinessImage(c.Request.Context(), principal.ID, kind)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, business)
	}
}

func (h *Handler) ServeFile(c *gin.Context) {
	path, err := h.service.FilePath(c.Param("filename"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.File(path)
}
