package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port       int
	CORSOrigin string

	YahooChartBaseURL string
	FetchTimeout      time.Duration
	FetchRatePerSec   float64

	RedisURL        string
	HistoryCacheTTL time.Duration

	TracingEnabled bool
	OTLPEndpoint   string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	cfg := &Config{
		RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	cfg.Port = 3004
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.Port = n
		} else {
			log.Warn().Str("PORT", v).Msg("invalid PORT, defaulting to 3004")
		}
	}

	cfg.CORSOrigin = strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3001"
	}

	cfg.YahooChartBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("YAHOO_CHART_BASE_URL")), "/")
	if cfg.YahooChartBaseURL == "" {
		cfg.YahooChartBaseURL = "https://query1.finance.yahoo.com"
	}

	cfg.FetchTimeout = 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeout = time.Duration(n) * time.Second
		}
	}

	cfg.FetchRatePerSec = 10
	if v := strings.TrimSpace(os.Getenv("FETCH_RATE_PER_SEC")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.FetchRatePerSec = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("HISTORY_CACHE_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HistoryCacheTTL = time.Duration(n) * time.Second
		}
	}
	if cfg.HistoryCacheTTL > 0 && cfg.RedisURL == "" {
		log.Warn().Msg("HISTORY_CACHE_SECS set but REDIS_URL is empty, history cache disabled")
		cfg.HistoryCacheTTL = 0
	}

	cfg.TracingEnabled = !strings.EqualFold(strings.TrimSpace(os.Getenv("TRACING_ENABLED")), "false")
	cfg.OTLPEndpoint = strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if cfg.OTLPEndpoint == "" {
		cfg.OTLPEndpoint = "localhost:4317"
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if cfg.LogFormat != "console" {
		cfg.LogFormat = "json"
	}

	return cfg
}

// CacheEnabled reports whether live histories should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" && c.HistoryCacheTTL > 0
}
