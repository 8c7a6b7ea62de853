// Package regression provides the least-squares machinery behind the
// level-versus-logarithm tests.
//
// # Ordinary least squares
//
// OLS fits a response on a design matrix, with or without an intercept
// column:
//
//	lagged, _ := regression.Lagged(diff, p)      // AR(p) design, lag columns ascending
//	fit, err := regression.OLS(diff[p:], lagged, true)
//	// fit.Coefficients[0] is the intercept, fit.Residuals the errors
//
// Singular or under-determined designs are not treated as failures:
// the fit comes back with NaN coefficients and residuals and the
// RankDeficient flag set, and downstream statistics propagate the NaNs.
//
// # Lag-order selection
//
// SelectLag scans AR orders 0..maxLag and keeps the one minimizing an
// information criterion:
//
//	p, err := regression.SelectLag(diff, 12, regression.AIC)
//
// Order 0 (a pure mean model) is a valid outcome. Exact ties resolve to
// the smallest order.
//
// # Residual diagnostics
//
// LjungBox checks fitted residuals for leftover autocorrelation:
//
//	lb := regression.LjungBox(fit.Residuals, 10, p+1)
//	if lb.PValue < 0.05 {
//	    // the fitted lag order left structure in the residuals
//	}
package regression
