package kmtest

import (
	"math"
	"math/rand"

	"github.com/merwanroudane/kmtest/timeseries"
)

// gaussianWalk simulates a seeded random walk: offset plus the
// cumulative sum of Gaussian increments with the given mean and
// standard deviation.
func gaussianWalk(seed int64, n int, drift, std, offset float64) *timeseries.Series {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	level := offset
	for i := range values {
		level += drift + std*rng.NormFloat64()
		values[i] = level
	}
	return timeseries.New(values)
}

// exponentialWalk simulates exp of a seeded driftless random walk,
// giving a strictly positive series integrated in logs.
func exponentialWalk(seed int64, n int, std float64) *timeseries.Series {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	level := 0.0
	for i := range values {
		level += std * rng.NormFloat64()
		values[i] = math.Exp(level)
	}
	return timeseries.New(values)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
