package kmtest

// Critical values for the U statistics, tabulated by simulation in the
// source study. U1 and U2 share one table because their limit
// distributions are symmetric images of each other.
const (
	uCritical10 = 0.477
	uCritical05 = 0.664
	uCritical01 = 1.116
)

// UCriticalValues returns the {10%, 5%, 1%} critical values for the U1
// and U2 statistics. A fresh map is returned on every call so results
// can be handed out without sharing state.
func UCriticalValues() map[string]float64 {
	return map[string]float64{
		"10%": uCritical10,
		"5%":  uCritical05,
		"1%":  uCritical01,
	}
}
