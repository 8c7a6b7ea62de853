package kmtest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/merwanroudane/kmtest/regression"
	"github.com/merwanroudane/kmtest/timeseries"
)

// zCritical is the 97.5% standard normal quantile used for the 5%
// two-sided decision.
const zCritical = 1.95996

// V1 tests the null of a linear integrated process with drift against a
// logarithmic alternative. lag fixes the AR order of the difference
// regression; pass AutoLag to select it by AIC over [0, maxLag]
// (maxLag <= 0 means DefaultMaxLag).
func V1(series *timeseries.Series, lag, maxLag int) (*Result, error) {
	return vTest(series, lag, maxLag, TestV1)
}

// V2 tests the null of a logarithmic integrated process with drift
// against a linear alternative. Parameters as for V1.
func V2(series *timeseries.Series, lag, maxLag int) (*Result, error) {
	return vTest(series, lag, maxLag, TestV2)
}

func vTest(series *timeseries.Series, lag, maxLag int, tt TestType) (*Result, error) {
	if err := validate(series); err != nil {
		return nil, err
	}

	work, sign := transform(series, tt == TestV2)
	n := work.Len()
	d := work.Diff().Values

	p, err := resolveLag(d, lag, maxLag)
	if err != nil {
		return nil, err
	}

	// AR(p) fit of the differences with an intercept. The drift of the
	// differenced series is the intercept divided through the AR
	// polynomial at one.
	var fit *regression.Fit
	if p == 0 {
		fit, err = regression.OLS(d, nil, true)
	} else {
		lagged, lerr := regression.Lagged(d, p)
		if lerr != nil {
			return nil, lerr
		}
		fit, err = regression.OLS(d[p:], lagged, true)
	}
	if err != nil {
		return nil, err
	}

	drift := fit.Coefficients[0]
	if p > 0 {
		drift = fit.Coefficients[0] / (1 - sum(fit.Coefficients[1:]))
	}

	z := fit.Residuals
	s2 := meanSquare(z)

	// Levels (or log levels) one step before each residual's time index.
	laggedLevels := work.Lag(1).Values[p:]

	numerator := sign * weightedCenteredSum(laggedLevels, z, s2)
	denominator := math.Pow(float64(n), 1.5) * math.Sqrt(s2*s2*drift*drift/6)
	statistic := numerator / denominator

	pValue := 2 * distuv.UnitNormal.Survival(math.Abs(statistic))

	res := &Result{
		Type:       tt,
		Statistic:  statistic,
		Lag:        p,
		Variance:   s2,
		Residuals:  z,
		Drift:      drift,
		PValue:     pValue,
		RejectNull: math.Abs(statistic) > zCritical,
	}
	if tt == TestV1 {
		res.Null = "linear integrated process (with drift)"
		res.Alternative = "logarithmic integrated process"
	} else {
		res.Null = "logarithmic integrated process (with drift)"
		res.Alternative = "linear integrated process"
	}
	return res, nil
}
