package handler

import (
	"strconv"

	"quant-sentiment/internal/domain"
)

// The wire format keys each projection by its horizon in a single-entry object:
// "days": [{"5": {"expected": "+1.2%"}}, {"10": {...}}]

type Expected struct {
	Expected string `json:"expected" example:"+1.2%"`
}

type HorizonPoint map[string]Expected

type FuturePredictions struct {
	Days   []HorizonPoint `json:"days"`
	Months []HorizonPoint `json:"months"`
	Years  []HorizonPoint `json:"years"`
}

type SentimentEntry struct {
	Timestamp         int64             `json:"timestamp" example:"1760745600000"`
	Confidence        float64           `json:"confidence" example:"6.4"`
	Reputation        string            `json:"reputation" enums:"HIGH,MEDIUM,LOW"`
	SentimentText     string            `json:"sentimentText"`
	FuturePredictions FuturePredictions `json:"futurePredictions"`
}

type SentimentsResponse struct {
	Timestamp int64                       `json:"timestamp" example:"1760745600000"`
	Data      map[string][]SentimentEntry `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewSentimentsResponse(timestamp int64, data map[string]domain.SentimentSeries) SentimentsResponse {
	out := make(map[string][]SentimentEntry, len(data))
	for symbol, series := range data {
		entries := make([]SentimentEntry, len(series))
		for i, e := range series {
			entries[i] = toWireEntry(e)
		}
		out[symbol] = entries
	}
	return SentimentsResponse{Timestamp: timestamp, Data: out}
}

func toWireEntry(e domain.SentimentEntry) SentimentEntry {
	return SentimentEntry{
		Timestamp:     e.Timestamp,
		Confidence:    e.Confidence,
		Reputation:    string(e.Reputation),
		SentimentText: e.SentimentText,
		FuturePredictions: FuturePredictions{
			Days:   toHorizonPoints(e.Predictions.Days),
			Months: toHorizonPoints(e.Predictions.Months),
			Years:  toHorizonPoints(e.Predictions.Years),
		},
	}
}

func toHorizonPoints(estimates []domain.HorizonEstimate) []HorizonPoint {
	points := make([]HorizonPoint, len(estimates))
	for i, est := range estimates {
		points[i] = HorizonPoint{strconv.Itoa(est.Horizon): {Expected: est.ExpectedPercent}}
	}
	return points
}
