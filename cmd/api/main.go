package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"panaderia_api/internal/adapter/http/dto/request"
	"panaderia_api/internal/adapter/http/handlers"
	"panaderia_api/internal/adapter/http/routes"
	"panaderia_api/internal/adapter/persistence/repository"
	"panaderia_api/internal/infrastructure/cache"
	"panaderia_api/internal/infrastructure/config"
	"panaderia_api/internal/infrastructure/database"
	"panaderia_api/internal/infrastructure/logger"
	"panaderia_api/internal/infrastructure/metrics"
	"panaderia_api/internal/infrastructure/payments"
	"panaderia_api/internal/usecase"
	"panaderia_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// @title           Panadería API
// @version         1.0
// @description     Storefront backend: shipping quotes, orders, Mercado Pago checkout and webhook reconciliation.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const serviceName = "panaderia-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Setup(logger.Options{ServiceName: serviceName})
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Setup(logger.Options{
		ServiceName: serviceName,
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	router, err := buildRouter(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap api")
	}

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.App.Env).Msg("starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("api server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("api server stopped")
}

func buildRouter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	request.RegisterValidation()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	branchRepo := repository.NewBranchDynamoRepository(ddb, cfg.Tables.Branches)
	rulesRepo := repository.NewShippingRulesDynamoRepository(ddb, cfg.Tables.Settings)

	gateway, err := payments.NewMercadoPagoGateway(ctx, payments.GatewayOptions{
		AccessToken:     cfg.MercadoPago.AccessToken,
		Currency:        cfg.MercadoPago.Currency,
		NotificationURL: cfg.MercadoPago.NotificationURL,
		BackURLBase:     cfg.BackURLBase(),
		Mock:            cfg.MercadoPago.MockEnabled(),
	})
	if err != nil {
		return nil, err
	}

	var deduper interfaces.IWebhookDeduper
	if cfg.Redis.Enabled() {
		d, err := cache.NewWebhookDeduper(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("webhook dedupe disabled: redis unavailable")
		} else {
			deduper = d
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	shippingUseCase := usecase.NewShippingUseCase(branchRepo, rulesRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, shippingUseCase, gateway, recorder)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo, gateway, deduper, recorder)

	return routes.NewRouter(routes.Handlers{
		Checkout: handlers.NewCheckoutHandler(checkoutUseCase),
		Orders:   handlers.NewOrderHandler(orderUseCase, cfg.Stream),
		Shipping: handlers.NewShippingHandler(shippingUseCase),
		Webhooks: handlers.NewWebhookHandler(webhookUseCase),
	}, routes.Options{
		JWT:      cfg.JWT,
		Logger:   log,
		Gatherer: registry,
	}), nil
}
