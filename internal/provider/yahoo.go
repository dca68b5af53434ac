package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"quant-sentiment/internal/domain"
	"quant-sentiment/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com"
	chartPath           = "/v8/finance/chart/{symbol}"
)

// ErrUnavailable wraps every failure to obtain a usable chart payload.
var (
	ErrUnavailable      = errors.New("price source unavailable")
	ErrInsufficientData = errors.New("insufficient price history")

	// errSymbolRejected marks failures specific to one symbol (unknown ticker,
	// malformed payload). They do not count against the breaker.
	errSymbolRejected = errors.New("symbol rejected by source")
)

type YahooOptions struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
}

// YahooChartProvider fetches two years of daily closes from a Yahoo-compatible chart API.
type YahooChartProvider struct {
	client  *resty.Client
	tracer  trace.Tracer
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewYahooChartProvider(tracer trace.Tracer, opts YahooOptions) *YahooChartProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultYahooBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = 10
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-store")

	return &YahooChartProvider{
		client:  client,
		tracer:  tracer,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), int(math.Ceil(opts.RatePerSec))),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "yahoo-chart",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: sourceHealthy,
		}),
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchDailyCloses returns the valid daily closes for symbol in ascending order.
// Points with a missing, non-finite or non-positive close are dropped.
func (p *YahooChartProvider) FetchDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	ctx, span := p.tracer.Start(ctx, "yahoo.fetch-daily-closes")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	start := time.Now()
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx, symbol)
	})
	if err != nil {
		metrics.FetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, symbol, err)
	}
	metrics.FetchDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	points := out.([]domain.PricePoint)
	span.SetAttributes(attribute.Int("points", len(points)))
	return points, nil
}

func (p *YahooChartProvider) fetch(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"range":    "2y",
			"interval": "1d",
		}).
		Get(chartPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, symbol, err)
	}
	if !resp.IsSuccess() {
		err := fmt.Errorf("%w: %s: status %d", ErrUnavailable, symbol, resp.StatusCode())
		if symbolLevelStatus(resp.StatusCode()) {
			err = fmt.Errorf("%w: %w", errSymbolRejected, err)
		}
		return nil, err
	}

	points, err := parseChart(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", errSymbolRejected, ErrUnavailable, symbol, err)
	}
	return points, nil
}

// sourceHealthy reports whether err leaves the breaker's view of the source
// intact. Transport errors, timeouts, 5xx and 429 count as failures.
func sourceHealthy(err error) bool {
	return err == nil || errors.Is(err, errSymbolRejected) || errors.Is(err, context.Canceled)
}

func symbolLevelStatus(code int) bool {
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}

func parseChart(body []byte) ([]domain.PricePoint, error) {
	var raw chartResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}
	if len(raw.Chart.Result) == 0 {
		return nil, errors.New("chart has no result")
	}
	result := raw.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, errors.New("chart has no quote")
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]domain.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		c := *closes[i]
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			continue
		}
		points = append(points, domain.PricePoint{Timestamp: ts * 1000, Close: c})
	}
	return points, nil
}
