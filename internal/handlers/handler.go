package handlers

import (
	"time"

	"logixy_crm/internal/logger"
	"logixy_crm/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultRatesPerSecond = 5
	defaultRatesBurst     = 10
	defaultPushInterval   = 5 * time.Second
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	rateLimits   *userLimiter
	pushInterval time.Duration
}

// Option tunes a Handler.
type Option func(*Handler)

// WithRateLimit sets the per-user budget for rate searches.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(h *Handler) { h.rateLimits = newUserLimiter(perSecond, burst) }
}

// WithPushInterval sets the default dashboard stream interval.
func WithPushInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pushInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:     services,
		log:          log,
		rateLimits:   newUserLimiter(defaultRatesPerSecond, defaultRatesBurst),
		pushInterval: defaultPushInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Browsers cannot set headers on upgrade requests, so the token may also come as ?access_token=.
	router.GET("/ws", h.userIdMiddleware, h.wsDashboard)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerClientRoutes(api)
		h.registerQuotationRoutes(api)
		h.registerRateRoutes(api)
		api.GET("/container-kinds", h.listContainerKinds)
		api.GET("/dashboard", h.getDashboard)
	}
}

func (h *Handler) registerClientRoutes(api *gin.RouterGroup) {
	clients := api.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.POST("", h.createClient)
		clients.PUT("/:id", h.updateClient)
	}
}

func (h *Handler) registerQuotationRoutes(api *gin.RouterGroup) {
	quotations := api.Group("/quotations")
	{
		quotations.GET("", h.listQuotations)
		quotations.GET("/months", h.listMonths)
		quotations.GET("/:id", h.getQuotation)
		quotations.POST("", h.createQuotation)
		quotations.PUT("/:id", h.updateQuotation)
	}
}

func (h *Handler) registerRateRoutes(api *gin.RouterGroup) {
	rates := api.Group("/rates", h.rateLimitMiddleware)
	{
		rates.GET("/search", h.searchRates)
	}
}
