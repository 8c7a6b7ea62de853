package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Fit holds the output of an ordinary least squares regression.
type Fit struct {
	// Coefficients are ordered intercept first (when fitted with one),
	// then the regressor coefficients in column order.
	Coefficients []float64
	// Residuals is y - Xb, one entry per observation.
	Residuals []float64
	// SSR is the sum of squared residuals.
	SSR float64
	// Sigma2 is the mean squared residual (SSR divided by the number of
	// observations, no degrees-of-freedom correction).
	Sigma2 float64
	// RankDeficient reports that the design was singular or too
	// ill-conditioned to solve. Coefficients and Residuals are NaN in
	// that case.
	RankDeficient bool
}

// OLS fits y = Xb by least squares. When intercept is true a leading
// column of ones is prepended to x; x may then be nil for a pure mean
// model. A singular design does not fail: the fit comes back with NaN
// coefficients and residuals and RankDeficient set, so callers decide
// whether to propagate or abort.
func OLS(y []float64, x *mat.Dense, intercept bool) (*Fit, error) {
	n := len(y)
	if n == 0 {
		return nil, errors.New("regression: empty response vector")
	}

	cols := 0
	if x != nil {
		r, c := x.Dims()
		if r != n {
			return nil, fmt.Errorf("regression: design has %d rows for %d observations", r, n)
		}
		cols = c
	}

	k := cols
	if intercept {
		k++
	}
	if k == 0 {
		return nil, errors.New("regression: no regressors")
	}

	design := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		offset := 0
		if intercept {
			design.Set(i, 0, 1)
			offset = 1
		}
		for j := 0; j < cols; j++ {
			design.Set(i, offset+j, x.At(i, j))
		}
	}

	response := mat.NewVecDense(n, nil)
	for i, v := range y {
		response.SetVec(i, v)
	}

	var beta mat.VecDense
	if n < k || beta.SolveVec(design, response) != nil {
		return degenerateFit(n, k), nil
	}

	fit := &Fit{
		Coefficients: make([]float64, k),
		Residuals:    make([]float64, n),
	}
	for j := 0; j < k; j++ {
		fit.Coefficients[j] = beta.AtVec(j)
	}

	var fitted mat.VecDense
	fitted.MulVec(design, &beta)
	for i := 0; i < n; i++ {
		e := y[i] - fitted.AtVec(i)
		fit.Residuals[i] = e
		fit.SSR += e * e
	}
	fit.Sigma2 = fit.SSR / float64(n)

	return fit, nil
}

func degenerateFit(n, k int) *Fit {
	fit := &Fit{
		Coefficients:  make([]float64, k),
		Residuals:     make([]float64, n),
		SSR:           math.NaN(),
		Sigma2:        math.NaN(),
		RankDeficient: true,
	}
	for j := range fit.Coefficients {
		fit.Coefficients[j] = math.NaN()
	}
	for i := range fit.Residuals {
		fit.Residuals[i] = math.NaN()
	}
	return fit
}
