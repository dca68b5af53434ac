package quant

import (
	"fmt"

	"quant-sentiment/internal/domain"
)

const (
	trendThreshold      = 0.03
	volatilityThreshold = 0.03
	drawdownThreshold   = 0.15
)

func Narrative(symbol string, m domain.Metrics, confidence float64) string {
	return fmt.Sprintf("%s %s %s. %s %s",
		symbol,
		trendClause(m.Momentum20),
		volatilityClause(m.Volatility20),
		riskClause(m.Drawdown60),
		confidenceClause(confidence),
	)
}

func trendClause(momentum float64) string {
	switch {
	case momentum > trendThreshold:
		return "shows strong upside momentum"
	case momentum < -trendThreshold:
		return "is under persistent downside pressure"
	default:
		return "is moving in a mixed/sideways regime"
	}
}

func volatilityClause(volatility float64) string {
	if volatility > volatilityThreshold {
		return "with elevated short-term volatility"
	}
	return "with stable short-term volatility"
}

func riskClause(drawdown float64) string {
	if drawdown > drawdownThreshold {
		return "Recent drawdown remains a material risk factor."
	}
	return "Drawdown profile remains contained."
}

func confidenceClause(confidence float64) string {
	switch ReputationFor(confidence) {
	case domain.ReputationHigh:
		return "Signal confidence is high based on trend/volatility alignment."
	case domain.ReputationMedium:
		return "Signal confidence is moderate and should be paired with risk controls."
	default:
		return "Signal confidence is low due to unstable conditions."
	}
}
