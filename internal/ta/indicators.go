package ta

import (
	"quant-sentiment/internal/domain"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	MomentumPeriod   = 20
	ReversionPeriod  = 20
	VolatilityPeriod = 20
	DrawdownPeriod   = 60
)

// ComputeMetrics derives the four trailing features from a chronological window.
// The window must hold at least one point.
func ComputeMetrics(window []domain.PricePoint) domain.Metrics {
	closes := Closes(window)
	return domain.Metrics{
		Momentum20:       Momentum(closes, MomentumPeriod),
		MeanReversionGap: MeanReversionGap(closes, ReversionPeriod),
		Volatility20:     Volatility(Returns(closes), VolatilityPeriod),
		Drawdown60:       Drawdown(closes, DrawdownPeriod),
	}
}

func Closes(points []domain.PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Close
	}
	return out
}

// Returns are simple single-period returns, one shorter than closes.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out[i-1] = (closes[i] - closes[i-1]) / closes[i-1]
	}
	return out
}

func Momentum(closes []float64, period int) float64 {
	if len(closes) <= period {
		return 0
	}
	latest := closes[len(closes)-1]
	past := closes[len(closes)-1-period]
	return (latest - past) / past
}

func MeanReversionGap(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	mean := stat.Mean(tail(closes, period), nil)
	if mean <= 0 {
		return 0
	}
	return (closes[len(closes)-1] - mean) / mean
}

// Volatility is the population standard deviation of the last period returns.
func Volatility(returns []float64, period int) float64 {
	recent := tail(returns, period)
	if len(recent) == 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(recent, nil)
	return std
}

func Drawdown(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	peak := floats.Max(tail(closes, period))
	if peak <= 0 {
		return 0
	}
	return (peak - closes[len(closes)-1]) / peak
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
