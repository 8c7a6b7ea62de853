package regression

import (
	"fmt"
	"math"
)

// Criterion identifies the information criterion used for lag-order
// selection.
type Criterion string

const (
	// AIC is the Akaike information criterion.
	AIC Criterion = "aic"
	// SIC is the Schwarz information criterion, also known as BIC.
	SIC Criterion = "sic"
	// BIC is an alias for SIC.
	BIC = SIC
)

// SelectLag chooses the AR order in [0, maxLag] for x that minimizes
// the given information criterion. Each candidate order p is scored by
// refitting: an intercept-only model for p = 0, otherwise an OLS fit of
// x[p:] on its lagged design matrix with intercept. The score is
// ln(sigma2) plus the complexity penalty with k = p+1 parameters over
// the full sample length. Candidates that cannot be fit (too few rows,
// singular design) are skipped. Exact ties resolve to the smallest
// order because the scan is ascending with a strict minimum.
func SelectLag(x []float64, maxLag int, criterion Criterion) (int, error) {
	n := len(x)
	if n < 2 {
		return 0, fmt.Errorf("regression: need at least 2 observations to select a lag order, got %d", n)
	}
	if maxLag < 0 {
		maxLag = 0
	}

	scores := make([]float64, 0, maxLag+1)

	for p := 0; p <= maxLag; p++ {
		var fit *Fit
		var err error

		if p == 0 {
			fit, err = OLS(x, nil, true)
		} else {
			lagged, lerr := Lagged(x, p)
			if lerr != nil {
				break // no rows left for this or any larger order
			}
			fit, err = OLS(x[p:], lagged, true)
		}
		if err != nil {
			return 0, err
		}

		scores = append(scores, criterionScore(fit.Sigma2, p+1, n, criterion))
	}

	return argmin(scores), nil
}

// argmin returns the index of the smallest score. The comparison is
// strict, so exact ties keep the first index scanned — the smallest
// order. NaN scores (rank-deficient candidates) never win.
func argmin(scores []float64) int {
	best := 0
	bestScore := math.Inf(1)
	for i, s := range scores {
		if s < bestScore {
			bestScore = s
			best = i
		}
	}
	return best
}

// criterionScore computes the information criterion value for a fit
// with the given residual variance and parameter count. NaN variance
// (rank-deficient fit) yields NaN, which never wins the minimum scan.
func criterionScore(sigma2 float64, k, n int, criterion Criterion) float64 {
	nf := float64(n)
	kf := float64(k)
	switch criterion {
	case SIC:
		return math.Log(sigma2) + kf*math.Log(nf)/nf
	default:
		return math.Log(sigma2) + 2*kf/nf
	}
}
