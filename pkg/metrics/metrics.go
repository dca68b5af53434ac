package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SentimentSymbols = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quant_sentiment_symbols_total",
		Help: "Symbols for which a sentiment series was computed.",
	})

	HistorySource = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quant_price_history_source_total",
		Help: "Price histories served, by source (live, cache, synthetic).",
	}, []string{"source"})

	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quant_price_fetch_duration_seconds",
		Help:    "Latency of live price history fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	SentimentEntries = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quant_sentiment_entries",
		Help:    "Entries per computed sentiment series.",
		Buckets: prometheus.LinearBuckets(0, 100, 8),
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
