package kmtest

import (
	"fmt"
	"math"

	"github.com/merwanroudane/kmtest/regression"
	"github.com/merwanroudane/kmtest/timeseries"
)

// U1 tests the null of a linear integrated process without drift
// against a logarithmic alternative. The decision compares |U1| against
// the tabulated critical values rather than a normal p-value. lag and
// maxLag behave as for V1.
func U1(series *timeseries.Series, lag, maxLag int) (*Result, error) {
	return uTest(series, lag, maxLag, TestU1)
}

// U2 tests the null of a logarithmic integrated process without drift
// against a linear alternative. Parameters as for U1.
func U2(series *timeseries.Series, lag, maxLag int) (*Result, error) {
	return uTest(series, lag, maxLag, TestU2)
}

func uTest(series *timeseries.Series, lag, maxLag int, tt TestType) (*Result, error) {
	if err := validate(series); err != nil {
		return nil, err
	}

	work, sign := transform(series, tt == TestU2)
	n := work.Len()
	d := work.Diff().Values

	p, err := resolveLag(d, lag, maxLag)
	if err != nil {
		return nil, err
	}

	// No-drift fit: the AR regression carries no constant at all. With
	// order zero there is nothing to fit and the differences themselves
	// are the innovations.
	z := d
	arSum := 1.0
	if p > 0 {
		lagged, lerr := regression.Lagged(d, p)
		if lerr != nil {
			return nil, lerr
		}
		fit, ferr := regression.OLS(d[p:], lagged, false)
		if ferr != nil {
			return nil, ferr
		}
		z = fit.Residuals
		arSum = 1 - sum(fit.Coefficients)
	}

	s2 := meanSquare(z)

	laggedLevels := work.Lag(1).Values[p:]
	if len(laggedLevels) != len(z) {
		return nil, fmt.Errorf("kmtest: residuals and lagged levels misaligned (%d vs %d)", len(z), len(laggedLevels))
	}

	numerator := sign * weightedCenteredSum(laggedLevels, z, s2)
	denominator := float64(n) * math.Sqrt(2*s2*s2*s2/arSum)
	statistic := numerator / denominator
	abs := math.Abs(statistic)

	res := &Result{
		Type:           tt,
		Statistic:      statistic,
		Lag:            p,
		Variance:       s2,
		Residuals:      z,
		ARSum:          arSum,
		CriticalValues: UCriticalValues(),
		Reject10:       abs > uCritical10,
		Reject05:       abs > uCritical05,
		Reject01:       abs > uCritical01,
	}
	if tt == TestU1 {
		res.Null = "linear integrated process (no drift)"
		res.Alternative = "logarithmic integrated process"
	} else {
		res.Null = "logarithmic integrated process (no drift)"
		res.Alternative = "linear integrated process"
	}
	return res, nil
}
