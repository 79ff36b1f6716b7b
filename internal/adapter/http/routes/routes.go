package routes

import (
	"net/http"

	_ "panaderia_api/docs"
	"panaderia_api/internal/adapter/http/handlers"
	"panaderia_api/internal/adapter/http/middleware"
	"panaderia_api/internal/infrastructure/config"
	"panaderia_api/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathShipping   = "/shipping"
	PathOrders     = "/orders"
	PathCheckout   = "/checkout"
	PathWebhooks   = "/webhooks"
	PathAdmin      = "/admin"
	PathPreference = PathCheckout + "/preference"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
	Shipping *handlers.ShippingHandler
	Webhooks *handlers.WebhookHandler
}

type Options struct {
	JWT      config.JWTConfig
	Logger   zerolog.Logger
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with middleware and every /v1 route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	// The processor must always get a 200, so webhooks never see Authorization.
	addWebhookRoutes(v1, h.Webhooks)

	api := v1.Group("", middleware.Authenticate(opts.JWT))
	addPingRoutes(api)
	addShippingRoutes(api, h.Shipping)
	addOrderRoutes(api, h.Checkout, h.Orders)
	addCheckoutRoutes(api, h.Checkout)
	addAdminRoutes(api, h.Shipping, h.Orders)

	router.NoMethod(func(c *gin.Context) {
		if c.Request.URL.Path == "/v1"+PathPreference {
			handlers.PreferenceMethodNotAllowed(c)
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
	})

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(logger.Middleware(opts.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addShippingRoutes(rg *gin.RouterGroup, h *handlers.ShippingHandler) {
	shipping := rg.Group(PathShipping)
	{
		shipping.POST("/quote", h.Quote)
		shipping.GET("/branches", h.ListBranches)
		shipping.GET("/rules", h.GetRules)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders, middleware.RequireSession())
	{
		orders.POST("", checkout.CreateOrder)
		orders.GET("", h.ListMine)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/stream", h.StreamStatus)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/preference", h.CreatePreference)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", h.MercadoPago)
		webhooks.GET("/mercadopago", h.MercadoPago)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, shipping *handlers.ShippingHandler, orders *handlers.OrderHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin())
	{
		admin.PUT("/shipping/rules", shipping.PutRules)
		admin.PUT("/branches/:id", shipping.UpsertBranch)
		admin.GET("/orders", orders.ListByStatus)
		admin.PATCH("/orders/:id/status", orders.UpdateStatus)
	}
}
