package domain

// PricePoint is a single daily close. Timestamp is epoch milliseconds.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

// Metrics are the trailing-window features every sentiment entry is derived from.
type Metrics struct {
	Momentum20       float64 `json:"momentum20"`
	MeanReversionGap float64 `json:"meanReversionGap"`
	Volatility20     float64 `json:"volatility20"`
	Drawdown60       float64 `json:"drawdown60"`
}

type Reputation string

const (
	ReputationHigh   Reputation = "HIGH"
	ReputationMedium Reputation = "MEDIUM"
	ReputationLow    Reputation = "LOW"
)

// HorizonEstimate is a projected price change for one horizon, e.g. {5, "+1.2%"}.
type HorizonEstimate struct {
	Horizon         int    `json:"horizon"`
	ExpectedPercent string `json:"expectedPercent"`
}

type Predictions struct {
	Days   []HorizonEstimate `json:"days"`
	Months []HorizonEstimate `json:"months"`
	Years  []HorizonEstimate `json:"years"`
}

type SentimentEntry struct {
	Timestamp     int64       `json:"timestamp"`
	Confidence    float64     `json:"confidence"`
	Reputation    Reputation  `json:"reputation"`
	SentimentText string      `json:"sentimentText"`
	Predictions   Predictions `json:"predictions"`
}

// SentimentSeries is ordered by ascending timestamp.
type SentimentSeries []SentimentEntry

// HistorySource records where a price history came from.
type HistorySource string

const (
	SourceLive      HistorySource = "live"
	SourceCache     HistorySource = "cache"
	SourceSynthetic HistorySource = "synthetic"
)
