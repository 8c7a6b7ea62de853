package kmtest

import (
	"github.com/merwanroudane/kmtest/regression"
	"github.com/merwanroudane/kmtest/timeseries"
)

// resolveLag returns the AR order to use for the differenced series d:
// the caller's fixed order when non-negative, otherwise the AIC
// minimizer over [0, maxLag].
func resolveLag(d []float64, lag, maxLag int) (int, error) {
	if lag >= 0 {
		return lag, nil
	}
	if maxLag <= 0 {
		maxLag = DefaultMaxLag
	}
	return regression.SelectLag(d, maxLag, regression.AIC)
}

// transform returns the working series for a test: the raw levels for
// the linear-null tests, the logarithm for the logarithmic-null tests.
// sign carries the lagged-regressor sign flip of the logarithmic tests.
func transform(series *timeseries.Series, logs bool) (work *timeseries.Series, sign float64) {
	if logs {
		return series.Log(), -1
	}
	return series, 1
}

// sum adds up a coefficient slice.
func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

// meanSquare is the population mean of squared values.
func meanSquare(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x * x
	}
	return total / float64(len(xs))
}

// weightedCenteredSum computes the numerator common to all four
// statistics: the sum of lagged levels times the centered squared
// residuals.
func weightedCenteredSum(lagged, residuals []float64, s2 float64) float64 {
	total := 0.0
	for i, z := range residuals {
		total += lagged[i] * (z*z - s2)
	}
	return total
}
