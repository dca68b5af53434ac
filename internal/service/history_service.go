package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quant-sentiment/internal/domain"
	"quant-sentiment/internal/provider"
	"quant-sentiment/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MinLivePoints is the fewest valid live closes accepted before falling back to
// the synthetic series.
const MinLivePoints = 90

type DailyCloseProvider interface {
	FetchDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// HistoryService resolves the daily close history for a symbol. It never fails:
// an unavailable or thin live source is replaced by the synthetic series.
type HistoryService struct {
	tracer   trace.Tracer
	provider DailyCloseProvider
	redis    RedisClient
	cacheTTL time.Duration
	now      func() time.Time
}

// NewHistoryService wires the live provider and an optional cache. Caching is
// enabled only when redisClient is non-nil and cacheTTL is positive.
func NewHistoryService(
	tracer trace.Tracer,
	provider DailyCloseProvider,
	redisClient RedisClient,
	cacheTTL time.Duration,
) *HistoryService {
	return &HistoryService{
		tracer:   tracer,
		provider: provider,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *HistoryService) GetDailyHistory(ctx context.Context, symbol string) ([]domain.PricePoint, domain.HistorySource) {
	ctx, span := s.tracer.Start(ctx, "history-service.get-daily-history")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	points, source := s.resolve(ctx, symbol)
	metrics.HistorySource.WithLabelValues(string(source)).Inc()
	span.SetAttributes(
		attribute.String("source", string(source)),
		attribute.Int("points", len(points)),
	)
	return points, source
}

func (s *HistoryService) resolve(ctx context.Context, symbol string) ([]domain.PricePoint, domain.HistorySource) {
	if s.cacheEnabled() {
		cached, err := s.getHistoryCache(ctx, symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("history cache read failed")
		}
		if len(cached) >= MinLivePoints {
			return cached, domain.SourceCache
		}
	}

	if s.provider == nil {
		return s.synthetic(symbol), domain.SourceSynthetic
	}

	points, err := s.provider.FetchDailyCloses(ctx, symbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("live history unavailable, using synthetic series")
		return s.synthetic(symbol), domain.SourceSynthetic
	}
	if len(points) < MinLivePoints {
		err := fmt.Errorf("%w: %d of %d points", provider.ErrInsufficientData, len(points), MinLivePoints)
		log.Warn().Err(err).Str("symbol", symbol).Msg("live history too short, using synthetic series")
		return s.synthetic(symbol), domain.SourceSynthetic
	}

	if s.cacheEnabled() {
		if err := s.setHistoryCache(ctx, symbol, points); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("history cache write failed")
		}
	}
	return points, domain.SourceLive
}

func (s *HistoryService) synthetic(symbol string) []domain.PricePoint {
	return provider.SyntheticSeries(symbol, s.now())
}

func (s *HistoryService) cacheEnabled() bool {
	return s.redis != nil && s.cacheTTL > 0
}

func historyKey(symbol string) string {
	return "history:" + symbol
}

func (s *HistoryService) setHistoryCache(ctx context.Context, symbol string, points []domain.PricePoint) error {
	data, err := json.Marshal(points)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, historyKey(symbol), data, s.cacheTTL).Err()
}

func (s *HistoryService) getHistoryCache(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	data, err := s.redis.Get(ctx, historyKey(symbol)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var points []domain.PricePoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, err
	}
	return points, nil
}
