// Package kmtest implements the Kobayashi-McAleer tests for choosing
// between the level and the logarithm of an integrated time series.
//
// Given a strictly positive I(1) series, the tests fit an
// autoregression to its first differences (in levels or in logs) and
// build a residual-based statistic that discriminates between the two
// transformations. Four statistics are available:
//
//   - V1: null of a linear integrated process with drift, against a
//     logarithmic alternative. Asymptotically standard normal.
//   - V2: null of a logarithmic integrated process with drift, against
//     a linear alternative. Asymptotically standard normal.
//   - U1: null of a linear integrated process without drift. Compared
//     against simulation-tabulated critical values.
//   - U2: null of a logarithmic integrated process without drift. Same
//     critical values as U1 by symmetry.
//
// # Quick Start
//
// Test a single hypothesis:
//
//	series := timeseries.New(values)
//	res, err := kmtest.V1(series, kmtest.AutoLag, kmtest.DefaultMaxLag)
//	fmt.Printf("V1=%.4f p=%.4f reject=%v\n", res.Statistic, res.PValue, res.RejectNull)
//
// Run the matched pair and get a recommendation:
//
//	suite, err := kmtest.Suite(series, kmtest.DefaultSuiteConfig())
//	fmt.Println(suite.Conclusion) // "use levels", "use logarithms", or inconclusive
//
// The AR lag order is selected by AIC over orders 0..DefaultMaxLag
// unless a fixed order is passed. All inputs must be strictly positive
// (logarithms are taken) with at least 10 observations.
//
// # Packages
//
//   - kmtest: the four tests and the suite orchestrator
//   - regression: OLS fitting, lagged design matrices, lag-order selection
//   - timeseries: series type and utilities
//
// # References
//
//   - Kobayashi, M., & McAleer, M. (1999). Tests of Linear and
//     Logarithmic Transformations for Integrated Processes.
//     Journal of the American Statistical Association, 94(447).
package kmtest
