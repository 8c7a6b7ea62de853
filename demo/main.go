// Package main demonstrates the level-versus-logarithm test suite on
// simulated random walks and, optionally, on a CSV series.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/merwanroudane/kmtest"
	"github.com/merwanroudane/kmtest/regression"
	"github.com/merwanroudane/kmtest/timeseries"
)

// maxObs caps how much of a CSV series the demo analyzes.
const maxObs = 500

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("kmtest Demonstration - Kobayashi-McAleer Level vs. Logarithm Tests")
	fmt.Println(strings.Repeat("=", 80))

	rng := rand.New(rand.NewSource(42))

	// A linear random walk with drift: differences are Gaussian with a
	// nonzero mean, so the V pair applies and levels are the truth.
	linear := randomWalk(rng, 200, 0.5, 1.0, 100)
	analyze("Linear random walk with drift", linear, true)

	// An exponential of a driftless random walk: differences of the log
	// are Gaussian with zero mean, so the U pair applies and logs are
	// the truth.
	expWalk := exponentialWalk(rng, 200, 0.0, 0.05, 0)
	analyze("Exponential driftless random walk", expWalk, false)

	// Optional: run on a CSV series (value column "y").
	if len(os.Args) > 1 {
		series, err := timeseries.LoadCSVColumn(os.Args[1], "y")
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", os.Args[1], err)
			return
		}
		// Keep long files manageable: use the most recent observations.
		if series.Len() > maxObs {
			series = series.Slice(series.Len()-maxObs, series.Len())
		}
		analyze(os.Args[1], series, true)
	}

	fmt.Println(strings.Repeat("=", 80))
}

// analyze runs the suite on a series and prints the report.
func analyze(name string, series *timeseries.Series, hasDrift bool) {
	fmt.Printf("\n%s\n%s (n=%d, %.2f to %.2f)\n%s\n",
		strings.Repeat("=", 80), name, series.Len(), series.Min(), series.Max(),
		strings.Repeat("=", 80))

	cfg := kmtest.DefaultSuiteConfig()
	cfg.HasDrift = hasDrift
	cfg.Progress = func(msg string) { fmt.Printf("   %s\n", msg) }

	result, err := kmtest.Suite(series, cfg)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}

	for key, res := range result.Tests {
		if lb := regression.LjungBox(res.Residuals, 10, res.Lag+1); lb != nil {
			adequacy := "residuals look white"
			if lb.PValue < 0.05 {
				adequacy = "residuals show leftover autocorrelation"
			}
			fmt.Printf("   %s fit: Ljung-Box Q=%.3f p=%.3f (%s)\n", key, lb.Statistic, lb.PValue, adequacy)
		}
	}

	fmt.Printf("   Recommendation: %s\n", result.Conclusion)
}

// randomWalk simulates a Gaussian random walk with the given drift,
// innovation standard deviation, and starting offset.
func randomWalk(rng *rand.Rand, n int, drift, std, offset float64) *timeseries.Series {
	values := make([]float64, n)
	level := offset
	for i := 0; i < n; i++ {
		level += drift + std*rng.NormFloat64()
		values[i] = level
	}
	return timeseries.New(values)
}

// exponentialWalk simulates exp of a Gaussian random walk, yielding a
// strictly positive series that is integrated in logs.
func exponentialWalk(rng *rand.Rand, n int, drift, std, offset float64) *timeseries.Series {
	values := make([]float64, n)
	level := offset
	for i := 0; i < n; i++ {
		level += drift + std*rng.NormFloat64()
		values[i] = math.Exp(level)
	}
	return timeseries.New(values)
}
