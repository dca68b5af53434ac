package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quant-sentiment/internal/cache"
	"quant-sentiment/internal/config"
	"quant-sentiment/internal/handler"
	"quant-sentiment/internal/provider"
	"quant-sentiment/internal/service"
	"quant-sentiment/pkg/logging"
	"quant-sentiment/pkg/metrics"
	"quant-sentiment/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "quant-sentiment/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	initLoggingFunc      = logging.Init
	initRedisFunc        = cache.InitRedis
	initTracerFunc       = tracing.InitTracer
	newYahooProviderFunc = func(tracer trace.Tracer, cfg *config.Config) service.DailyCloseProvider {
		return provider.NewYahooChartProvider(tracer, provider.YahooOptions{
			BaseURL:    cfg.YahooChartBaseURL,
			Timeout:    cfg.FetchTimeout,
			RatePerSec: cfg.FetchRatePerSec,
		})
	}
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.New
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Quant Sentiment API
// @version         1.0
// @description     Daily quantitative sentiment series for equity symbols.

// @host      localhost:3004
// @BasePath  /
func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	initLoggingFunc(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, tracing.Options{
		Enabled:  cfg.TracingEnabled,
		Endpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	// A nil *redis.Client must not leak into the interface as a non-nil value.
	var historyCache service.RedisClient
	if cfg.CacheEnabled() {
		client, err := initRedisFunc(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, history cache disabled")
		} else if client != nil {
			defer client.Close()
			historyCache = client
		}
	}

	history := service.NewHistoryService(tracer, newYahooProviderFunc(tracer, cfg), historyCache, cfg.HistoryCacheTTL)
	sentiments := service.NewSentimentService(tracer, history)
	h := newHandlerFunc(tracer, sentiments)

	r := newRouterFunc()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(tracing.ServiceName))
	r.Use(handler.SecurityHeaders())
	r.Use(handler.CORS(cfg.CORSOrigin))

	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("quant service listening")
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info().Msg("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
