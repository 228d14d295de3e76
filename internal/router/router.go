package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit rate.Limit
	RateBurst int
	CacheTTL  time.Duration
}

type Router struct {
	engine *gin.Engine
	auth   *middleware.AuthMiddleware
	config Config

	h              *handler.Handler
	authH          Handler
	applicationH   Handler
	matchingH      Handler
	interviewH     Handler
	volunteeringH  Handler
	communicationH Handler
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	applicationH Handler,
	matchingH Handler,
	interviewH Handler,
	volunteeringH Handler,
	communicationH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:         gin.New(),
		auth:           auth,
		config:         config,
		h:              h,
		authH:          authH,
		applicationH:   applicationH,
		matchingH:      matchingH,
		interviewH:     interviewH,
		volunteeringH:  volunteeringH,
		communicationH: communicationH,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.Validation())

	if r.config.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  r.config.RateLimit,
			Burst: r.config.RateBurst,
		})
		r.engine.Use(limiter.RateLimit())
	}

	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	r.authH.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	if r.config.CacheTTL > 0 {
		protected.Use(middleware.ResponseCache(r.config.CacheTTL))
	}

	r.applicationH.RegisterRoutes(protected)
	r.matchingH.RegisterRoutes(protected)
	r.interviewH.RegisterRoutes(protected)
	r.volunteeringH.RegisterRoutes(protected)
	r.communicationH.RegisterRoutes(protected)
}
