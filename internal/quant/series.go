package quant

import (
	"quant-sentiment/internal/domain"
	"quant-sentiment/internal/ta"
)

const (
	// MinHistory is the number of points required before the first entry; the first
	// entry is produced for index MinHistory-1.
	MinHistory = 61
	// WindowLookback bounds a window to the current point plus this many before it.
	WindowLookback = 252
	MaxEntries     = 730
)

// Entry builds the sentiment record for the last point of window.
func Entry(symbol string, window []domain.PricePoint) domain.SentimentEntry {
	metrics := ta.ComputeMetrics(window)
	confidence := round1(Confidence(metrics))
	return domain.SentimentEntry{
		Timestamp:     window[len(window)-1].Timestamp,
		Confidence:    confidence,
		Reputation:    ReputationFor(confidence),
		SentimentText: Narrative(symbol, metrics, confidence),
		Predictions:   Project(metrics),
	}
}

// BuildSeries slides the trailing window over prices, which must be in ascending
// timestamp order, and keeps the most recent MaxEntries records.
func BuildSeries(symbol string, prices []domain.PricePoint) domain.SentimentSeries {
	if len(prices) < MinHistory {
		return domain.SentimentSeries{}
	}

	start := MinHistory - 1
	if n := len(prices) - start; n > MaxEntries {
		start = len(prices) - MaxEntries
	}

	series := make(domain.SentimentSeries, 0, len(prices)-start)
	for i := start; i < len(prices); i++ {
		from := max(0, i-WindowLookback)
		series = append(series, Entry(symbol, prices[from:i+1]))
	}
	return series
}
