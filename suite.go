package kmtest

import (
	"fmt"
	"math"

	"github.com/merwanroudane/kmtest/timeseries"
)

// Conclusion is the suite's recommendation.
type Conclusion string

const (
	// UseLevels: the logarithmic null was rejected and the linear one
	// was not.
	UseLevels Conclusion = "use levels"
	// UseLogarithms: the linear null was rejected and the logarithmic
	// one was not.
	UseLogarithms Conclusion = "use logarithms"
	// InconclusiveBoth: both nulls were rejected.
	InconclusiveBoth Conclusion = "inconclusive: both null hypotheses rejected"
	// InconclusiveNeither: neither null was rejected.
	InconclusiveNeither Conclusion = "inconclusive: neither null hypothesis rejected"
)

// ProgressFunc receives human-readable status messages while a suite
// runs. It is purely informational and never consulted by the
// computation.
type ProgressFunc func(msg string)

// SuiteConfig configures a suite run.
type SuiteConfig struct {
	// HasDrift selects the matched pair: V1+V2 when the differenced
	// series is assumed to have a nonzero mean, U1+U2 otherwise.
	HasDrift bool
	// Lag fixes the AR order for both tests; AutoLag selects it by AIC.
	// Note that the zero value forces order 0 (a valid choice), so
	// callers wanting automatic selection should start from
	// DefaultSuiteConfig() or set AutoLag explicitly.
	Lag int
	// MaxLag bounds the AIC search; non-positive means DefaultMaxLag.
	MaxLag int
	// Progress, when non-nil, receives status messages as the suite
	// runs.
	Progress ProgressFunc
}

// DefaultSuiteConfig returns the default suite configuration: drift
// assumed, AIC lag selection up to DefaultMaxLag, no progress output.
func DefaultSuiteConfig() *SuiteConfig {
	return &SuiteConfig{
		HasDrift: true,
		Lag:      AutoLag,
		MaxLag:   DefaultMaxLag,
	}
}

// SuiteResult holds the matched pair of test results and the derived
// recommendation. It is never mutated after construction.
type SuiteResult struct {
	// Tests maps "v1"/"v2" or "u1"/"u2" to the individual results.
	Tests      map[string]*Result
	Conclusion Conclusion
	HasDrift   bool
}

// Suite runs the matched pair of tests on the series and derives a
// recommendation from the two rejection decisions. A nil config is
// equivalent to DefaultSuiteConfig().
func Suite(series *timeseries.Series, cfg *SuiteConfig) (*SuiteResult, error) {
	if cfg == nil {
		cfg = DefaultSuiteConfig()
	}
	progress := cfg.Progress
	if progress == nil {
		progress = func(string) {}
	}

	type entry struct {
		key string
		run func(*timeseries.Series, int, int) (*Result, error)
	}
	pair := []entry{{"v1", V1}, {"v2", V2}}
	if cfg.HasDrift {
		progress("testing levels against logarithms (drift assumed): V1, V2")
	} else {
		pair = []entry{{"u1", U1}, {"u2", U2}}
		progress("testing levels against logarithms (no drift): U1, U2")
	}

	tests := make(map[string]*Result, 2)
	results := make([]*Result, 0, 2)
	for _, e := range pair {
		res, err := e.run(series, cfg.Lag, cfg.MaxLag)
		if err != nil {
			return nil, err
		}
		tests[e.key] = res
		results = append(results, res)
		progress(describe(res))
		if math.IsNaN(res.Statistic) || math.IsInf(res.Statistic, 0) {
			progress(fmt.Sprintf("%s: statistic is not finite; the drift or AR-sum estimate may be degenerate", res.Type))
		}
	}

	linearRejected, logRejected := rejections(results[0], results[1], cfg.HasDrift)
	conclusion := conclude(linearRejected, logRejected)

	progress(fmt.Sprintf("conclusion: %s", conclusion))
	if cfg.HasDrift && conclusion == InconclusiveBoth {
		progress("both null hypotheses rejected: consider an alternate specification, structural breaks, or a stochastic unit root")
	}

	return &SuiteResult{
		Tests:      tests,
		Conclusion: conclusion,
		HasDrift:   cfg.HasDrift,
	}, nil
}

// rejections extracts the pairwise rejection flags: the 5% two-sided
// decision for the V tests, the 5% critical-value comparison for the U
// tests.
func rejections(linear, logarithmic *Result, hasDrift bool) (linearRejected, logRejected bool) {
	if hasDrift {
		return linear.RejectNull, logarithmic.RejectNull
	}
	return linear.Reject05, logarithmic.Reject05
}

// conclude applies the fixed decision table to the pair of rejection
// flags.
func conclude(linearRejected, logRejected bool) Conclusion {
	switch {
	case linearRejected && !logRejected:
		return UseLogarithms
	case !linearRejected && logRejected:
		return UseLevels
	case linearRejected && logRejected:
		return InconclusiveBoth
	default:
		return InconclusiveNeither
	}
}

// describe renders a one-line status message for a result.
func describe(res *Result) string {
	switch res.Type {
	case TestV1, TestV2:
		return fmt.Sprintf("%s: statistic=%.4f, p-value=%.4f, lag=%d, reject null=%v",
			res.Type, res.Statistic, res.PValue, res.Lag, res.RejectNull)
	default:
		return fmt.Sprintf("%s: statistic=%.4f, lag=%d, reject at 10%%/5%%/1%%=%v/%v/%v",
			res.Type, res.Statistic, res.Lag, res.Reject10, res.Reject05, res.Reject01)
	}
}
