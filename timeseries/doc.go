// Package timeseries provides the series type and utilities shared by
// the level-versus-logarithm tests.
//
// A Series is a plain ordered sequence of float64 observations. The
// transformation methods (Diff, Log, Lag, Slice) always allocate a new
// Series and never mutate the receiver, so a series handed to a test can
// be reused by the caller afterwards.
//
// Basic usage:
//
//	series := timeseries.New(values)
//	diff := series.Diff()         // first differences, length n-1
//	logged := series.Log()        // natural log, NaN for non-positive values
//	fmt.Println(series.Mean(), series.Std())
//
// CSV loading for demos and scripts:
//
//	series, err := timeseries.LoadCSVColumn("gdp.csv", "y")
//	series, err = timeseries.LoadCSVFiltered("panel.csv", "unique_id", "AUS", "y")
package timeseries
