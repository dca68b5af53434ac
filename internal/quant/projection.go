package quant

import (
	"fmt"
	"math"

	"quant-sentiment/internal/domain"
)

// horizonFamily scales projections by sqrt(horizon/normalizer) * multiplier.
type horizonFamily struct {
	horizons   []int
	normalizer float64
	multiplier float64
}

var (
	dayHorizons   = horizonFamily{horizons: []int{5, 10, 20, 30}, normalizer: 30, multiplier: 0.55}
	monthHorizons = horizonFamily{horizons: []int{1, 3, 6, 12}, normalizer: 12, multiplier: 1.3}
	yearHorizons  = horizonFamily{horizons: []int{1, 3, 5}, normalizer: 5, multiplier: 2.4}
)

func Project(m domain.Metrics) domain.Predictions {
	return domain.Predictions{
		Days:   dayHorizons.project(m),
		Months: monthHorizons.project(m),
		Years:  yearHorizons.project(m),
	}
}

func (f horizonFamily) project(m domain.Metrics) []domain.HorizonEstimate {
	out := make([]domain.HorizonEstimate, len(f.horizons))
	for i, h := range f.horizons {
		scale := math.Sqrt(float64(h)/f.normalizer) * f.multiplier
		out[i] = domain.HorizonEstimate{
			Horizon:         h,
			ExpectedPercent: FormatPercent(ExpectedChange(m, scale)),
		}
	}
	return out
}

// ExpectedChange is the projected percent change for a horizon scale, rounded to
// one decimal.
func ExpectedChange(m domain.Metrics, scale float64) float64 {
	trend := m.Momentum20 * 100 * scale
	reversion := -m.MeanReversionGap * 100 * (scale * 0.45)
	risk := (m.Volatility20*100 + m.Drawdown60*25) * (scale * 0.25)
	return round1(trend + reversion - risk)
}

// FormatPercent renders a signed one-decimal percentage. Values that round to zero
// from below keep their minus sign ("-0.0%").
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", round1(v))
}
