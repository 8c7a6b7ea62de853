package regression

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox performs the Ljung-Box test for autocorrelation in fit
// residuals. The null hypothesis is that there is no autocorrelation up
// to the given lag; a small p-value indicates the fitted model left
// structure in the residuals. fitdf is the number of parameters
// estimated by the model that produced the residuals.
func LjungBox(residuals []float64, lags, fitdf int) *LjungBoxResult {
	n := len(residuals)
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := autocorrelations(residuals, lags)

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi2 := distuv.ChiSquared{K: float64(dof)}
	pValue := chi2.Survival(q)

	return &LjungBoxResult{
		Statistic: q,
		PValue:    pValue,
		Lags:      lags,
		DOF:       dof,
	}
}

// autocorrelations computes the sample autocorrelation function of x up
// to maxLag, normalized by the lag-0 autocovariance. Index k holds the
// autocorrelation at lag k, so index 0 is always 1.
func autocorrelations(x []float64, maxLag int) []float64 {
	n := len(x)
	mean := stat.Mean(x, nil)

	c0 := 0.0
	for _, v := range x {
		d := v - mean
		c0 += d * d
	}
	c0 /= float64(n)

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	if c0 == 0 {
		return acf
	}

	for k := 1; k <= maxLag && k < n; k++ {
		ck := 0.0
		for i := k; i < n; i++ {
			ck += (x[i] - mean) * (x[i-k] - mean)
		}
		ck /= float64(n)
		acf[k] = ck / c0
	}
	return acf
}
