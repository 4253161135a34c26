// Package timeseries provides time series data structures and utilities.
//
// The Series type is the common currency of the forecasting pipeline: the
// reservation package produces occupancy Series, the stats package
// decomposes them, and the sarima/autoarima packages fit models to them.
//
// # Creating Series
//
// From values only (daily timestamps are generated):
//
//	series := timeseries.New([]float64{42, 45, 47, 51})
//
// From explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(dates, values)
//
// # Transformations
//
// Differencing for stationarity:
//
//	diff := series.Diff()           // first difference
//	sdiff := series.SeasonalDiff(7) // weekly seasonal difference
//
// Smoothing and summary statistics:
//
//	ma := series.MovingAverage(7)
//	fmt.Println(series.Mean(), series.Std())
//
// # Holdout evaluation
//
// Split a series for out-of-sample scoring:
//
//	train, holdout := series.SplitAt(series.Len() - 30)
package timeseries
