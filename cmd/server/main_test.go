package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"quant-sentiment/internal/config"
	"quant-sentiment/internal/service"
	"quant-sentiment/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	served := make(chan http.Handler, 1)
	restore := stubServerDeps(served)
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	var router http.Handler
	select {
	case router = <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("server was not started")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/quant/sentiments?symbols=AAPL", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data map[string][]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	// offline provider: the synthetic 730-day history yields 670 entries
	if got := len(body.Data["AAPL"]); got != 670 {
		t.Fatalf("expected 670 entries, got %d", got)
	}

	for _, path := range []string{"/health", "/metrics"} {
		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func stubServerDeps(served chan<- http.Handler) func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitLogging := initLoggingFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origNewProvider := newYahooProviderFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	started := make(chan struct{})

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{Port: 3004, CORSOrigin: "http://localhost:3001", LogLevel: "error", LogFormat: "json"}
	}
	initLoggingFunc = func(string, string) {}
	initRedisFunc = func(context.Context, string) (*redis.Client, error) { return nil, nil }
	initTracerFunc = func(ctx context.Context, opts tracing.Options) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newYahooProviderFunc = func(trace.Tracer, *config.Config) service.DailyCloseProvider { return nil }
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) { <-started }
	startHTTPServerFunc = func(srv *http.Server) error {
		served <- srv.Handler
		close(started)
		return http.ErrServerClosed
	}
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initLoggingFunc = origInitLogging
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newYahooProviderFunc = origNewProvider
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}
