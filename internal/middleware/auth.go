package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/service/auth"
	"github.com/appointmentsonthego/booking-api/pkg/httputil"
)

const contextPrincipal = "principal"

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and stores the resolved principal
// in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("invalid authorization format"))
			return
		}

		principal, err := m.authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.NewErrorResponse("invalid token"))
			return
		}

		c.Set(contextPrincipal, principal)
		c.Next()
	}
}

// RequireCustomer rejects any principal that is not a customer.
func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return m.requireKind(model.PrincipalCustomer)
}

// RequireBusiness rejects any principal that is not a business.
func (m *AuthMiddleware) RequireBusiness() gin.HandlerFunc {
	return m.requireKind(model.PrincipalBusiness)
}

func (m *AuthMiddleware) requireKind(kind model.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != kind {
			c.AbortWithStatusJSON(http.StatusForbidden, httputil.NewErrorResponse("forbidden"))
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (model.Principal, bool) {
	v, ok := c.Get(contextPrincipal)
	if !ok {
		return model.Principal{}, false
	}
	principal, ok := v.(*model.Principal)
	if !ok {
		return model.Principal{}, false
	}
	return *principal, true
}
