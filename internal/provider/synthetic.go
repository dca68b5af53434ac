package provider

import (
	"math"
	"math/rand/v2"
	"time"

	"quant-sentiment/internal/domain"
)

const (
	SyntheticDays = 730
	dayMillis     = int64(24 * time.Hour / time.Millisecond)
)

// SyntheticSeed is the sum of the symbol's character codes.
func SyntheticSeed(symbol string) uint64 {
	var seed uint64
	for _, r := range symbol {
		seed += uint64(r)
	}
	return seed
}

func SyntheticBasePrice(symbol string) float64 {
	return 40 + float64(SyntheticSeed(symbol)%120)
}

// SyntheticSeries is a reproducible random walk of SyntheticDays daily closes
// ending at now. The walk is seeded by SyntheticSeed, so only now varies between
// calls for the same symbol.
func SyntheticSeries(symbol string, now time.Time) []domain.PricePoint {
	seed := SyntheticSeed(symbol)
	rng := rand.New(rand.NewPCG(seed, seed))

	end := now.UnixMilli()
	price := SyntheticBasePrice(symbol)
	series := make([]domain.PricePoint, 0, SyntheticDays)
	for day := SyntheticDays - 1; day >= 0; day-- {
		drift := (rng.Float64() - 0.49) * 0.03
		price = math.Max(1, price*(1+drift))
		series = append(series, domain.PricePoint{
			Timestamp: end - int64(day)*dayMillis,
			Close:     price,
		})
	}
	return series
}
