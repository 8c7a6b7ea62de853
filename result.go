package kmtest

// TestType identifies which of the four statistics a Result carries.
type TestType string

const (
	TestV1 TestType = "V1"
	TestV2 TestType = "V2"
	TestU1 TestType = "U1"
	TestU2 TestType = "U2"
)

// Default parameters for lag handling.
const (
	// DefaultMaxLag bounds the AIC lag-order search.
	DefaultMaxLag = 12
	// AutoLag requests information-criterion lag selection. Any
	// negative lag argument behaves the same way.
	AutoLag = -1
)

// Result holds the outcome of a single test.
//
// V-type results (V1, V2) populate PValue, RejectNull and Drift; U-type
// results (U1, U2) populate CriticalValues, the three rejection flags
// and ARSum. Type tells which shape applies; the other shape's fields
// are left at their zero values.
type Result struct {
	Type        TestType
	Statistic   float64
	Null        string
	Alternative string

	// Lag is the AR order used for the difference regression, whether
	// fixed by the caller or selected by AIC.
	Lag int
	// Variance is the innovation variance estimate, the mean squared
	// fit residual.
	Variance float64
	// Residuals are the fit residuals, exposed for diagnostics such as
	// regression.LjungBox. Same length as the lagged level vector the
	// statistic sums over.
	Residuals []float64

	// V-shape fields.
	PValue     float64 // two-sided standard normal p-value
	RejectNull bool    // 5% two-sided decision
	Drift      float64 // estimated drift of the differenced series

	// U-shape fields.
	CriticalValues map[string]float64 // {10%, 5%, 1%}
	Reject10       bool
	Reject05       bool
	Reject01       bool
	ARSum          float64 // AR polynomial evaluated at one: 1 - sum of AR coefficients
}
