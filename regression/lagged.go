package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Lagged builds the lagged design matrix for an AR(p) regression on x.
// The matrix has len(x)-p rows and p columns. Row i corresponds to the
// target value x[p+i]; column j holds x[p+i-1-j], the value at lag j+1.
// Coefficients estimated against this matrix are therefore ordered by
// ascending lag.
func Lagged(x []float64, p int) (*mat.Dense, error) {
	if p < 1 {
		return nil, fmt.Errorf("regression: lag order must be positive, got %d", p)
	}
	if p >= len(x) {
		return nil, fmt.Errorf("regression: lag order %d leaves no rows for %d observations", p, len(x))
	}

	rows := len(x) - p
	m := mat.NewDense(rows, p, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < p; j++ {
			m.Set(i, j, x[p+i-1-j])
		}
	}
	return m, nil
}
