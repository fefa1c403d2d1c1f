package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/appointmentsonthego/booking-api/internal/middleware"
)

// Handler registers its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// UploadHandler splits its routes across an authenticated and an anonymous
// group.
type UploadHandler interface {
	RegisterBusinessRoutes(*gin.RouterGroup)
	RegisterFileRoutes(*gin.RouterGroup)
}

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	authH     Handler
	customerH Handler
	businessH Handler
	messageH  Handler
	publicH   Handler
	uploadH   UploadHandler
	healthH   Handler
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	customerH Handler,
	businessH Handler,
	messageH Handler,
	publicH Handler,
	uploadH UploadHandler,
	healthH Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	registerValidators()
	engine := gin.New()

	r := &Router{
		engine:    engine,
		auth:      auth,
		authH:     authH,
		customerH: customerH,
		businessH: businessH,
		messageH:  messageH,
		publicH:   publicH,
		uploadH:   uploadH,
		healthH:   healthH,
		metrics:   initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.DefaultTimeoutConfig()),
		middleware.CORS(config.CORSConfig),
	)

	sizeLimit := middleware.DefaultSizeLimitConfig()
	sizeLimit.SkipPrefixes = []string{"/upload/business"}
	engine.Use(middleware.SizeLimit(sizeLimit))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "booking-api"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.healthH.RegisterRoutes(r.engine.Group("/health"))
	r.authH.RegisterRoutes(r.engine.Group("/auth"))
	r.publicH.RegisterRoutes(r.engine.Group("/public"))

	customer := r.engine.Group("/customer")
	customer.Use(r.auth.Authenticate(), r.auth.RequireCustomer())
	r.customerH.RegisterRoutes(customer)

	business := r.engine.Group("/business")
	business.Use(r.auth.Authenticate(), r.auth.RequireBusiness())
	r.businessH.RegisterRoutes(business)

	// Both participants use the thread; the service checks membership.
	messages := r.engine.Group("/appointments")
	messages.Use(r.auth.Authenticate())
	r.messageH.RegisterRoutes(messages)

	upload := r.engine.Group("/upload")
	r.uploadH.RegisterFileRoutes(upload)

	uploadBusiness := upload.Group("")
	uploadBusiness.Use(r.auth.Authenticate(), r.auth.RequireBusiness())
	r.uploadH.RegisterBusinessRoutes(uploadBusiness)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
