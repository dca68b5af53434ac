package quant

import (
	"math"

	"quant-sentiment/internal/domain"
)

const (
	MinConfidence = 1.0
	MaxConfidence = 10.0

	highConfidence   = 7.0
	mediumConfidence = 4.0
)

// Confidence is the linear scoring model: momentum adds, volatility, drawdown and
// distance from the short-term mean subtract, around a neutral baseline of 6.
func Confidence(m domain.Metrics) float64 {
	trend := m.Momentum20 * 120
	quality := m.Volatility20*120 + m.Drawdown60*20
	reversion := math.Abs(m.MeanReversionGap) * 18
	return clamp(6+trend-quality-reversion, MinConfidence, MaxConfidence)
}

func ReputationFor(confidence float64) domain.Reputation {
	switch {
	case confidence >= highConfidence:
		return domain.ReputationHigh
	case confidence >= mediumConfidence:
		return domain.ReputationMedium
	default:
		return domain.ReputationLow
	}
}

// round1 rounds to one decimal with halves going toward +Inf, so -0.25 becomes
// -0.2. Values in (-0.05, 0) keep a negative zero.
func round1(v float64) float64 {
	scaled := v * 10
	r := math.Floor(scaled + 0.5)
	if r == 0 && scaled < 0 {
		r = math.Copysign(0, -1)
	}
	return r / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
