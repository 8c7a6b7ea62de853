package kmtest

import (
	"errors"
	"math"

	"github.com/merwanroudane/kmtest/timeseries"
)

// Validation errors shared by all five entry points. They are checked
// in this order, first failure wins.
var (
	ErrNotNumeric  = errors.New("series must be numeric")
	ErrNotPositive = errors.New("series must contain only positive values")
	ErrTooShort    = errors.New("series must have at least 10 observations")
)

const minObservations = 10

// validate applies the shared input contract: finite values first, then
// strict positivity, then minimum length.
func validate(series *timeseries.Series) error {
	if series == nil {
		return ErrNotNumeric
	}
	for _, v := range series.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotNumeric
		}
	}
	for _, v := range series.Values {
		if v <= 0 {
			return ErrNotPositive
		}
	}
	if series.Len() < minObservations {
		return ErrTooShort
	}
	return nil
}
