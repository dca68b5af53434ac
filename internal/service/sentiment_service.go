package service

import (
	"context"

	"quant-sentiment/internal/domain"
	"quant-sentiment/internal/quant"
	"quant-sentiment/pkg/metrics"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// MaxSymbols caps a single request and the number of concurrent history fetches.
const MaxSymbols = 20

type HistoryProvider interface {
	GetDailyHistory(ctx context.Context, symbol string) ([]domain.PricePoint, domain.HistorySource)
}

type SentimentService struct {
	tracer  trace.Tracer
	history HistoryProvider
}

func NewSentimentService(tracer trace.Tracer, history HistoryProvider) *SentimentService {
	return &SentimentService{tracer: tracer, history: history}
}

// ComputeSentiments builds one sentiment series per symbol. Symbols are processed
// concurrently and independently; every symbol gets a series, possibly empty.
func (s *SentimentService) ComputeSentiments(ctx context.Context, symbols []string) map[string]domain.SentimentSeries {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.compute-sentiments")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("symbols", symbols))

	results := make([]domain.SentimentSeries, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxSymbols)
	for i, symbol := range symbols {
		g.Go(func() error {
			results[i] = s.computeOne(gctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	data := make(map[string]domain.SentimentSeries, len(symbols))
	for i, symbol := range symbols {
		data[symbol] = results[i]
	}
	return data
}

func (s *SentimentService) computeOne(ctx context.Context, symbol string) domain.SentimentSeries {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.compute-one")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	metrics.SentimentSymbols.Inc()

	prices, source := s.history.GetDailyHistory(ctx, symbol)
	series := quant.BuildSeries(symbol, prices)

	metrics.SentimentEntries.Observe(float64(len(series)))
	log.Debug().
		Str("symbol", symbol).
		Str("source", string(source)).
		Int("points", len(prices)).
		Int("entries", len(series)).
		Msg("sentiment series computed")
	return series
}
