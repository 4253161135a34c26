// Package stats provides statistical tests and analysis functions for the
// occupancy forecasting pipeline.
//
// # Seasonal Decomposition
//
// Split an occupancy series into trend, seasonal, and residual components:
//
//	decomp, err := stats.Decompose(series, 7, stats.Additive)
//	if err != nil {
//	    // stats.ErrInsufficientData: need at least two full cycles
//	}
//	// decomp.Trend, decomp.Seasonal, decomp.Residual share the input's
//	// date index; trend/residual are NaN at the window edges.
//
// # Stationarity Tests
//
// Test whether a series is stationary before model fitting:
//
//	// Augmented Dickey-Fuller: H0 = unit root (non-stationary)
//	adf := stats.ADF(series, 0)
//
//	// KPSS: H0 = stationary
//	kpss := stats.KPSS(series, "c", 0)
//
// # Differencing Analysis
//
// Determine differencing orders for automatic model selection:
//
//	d := stats.NDiffs(series, 2, "kpss")
//	sd := stats.NSDiffs(series, 7, 1) // weekly seasonality
//
// # Autocorrelation and Diagnostics
//
// ACF/PACF for order identification, Ljung-Box for residual whiteness:
//
//	acf := stats.ACF(series, 20)
//	pacf := stats.PACF(series, 20)
//	lb := stats.LjungBox(residuals, 10, fitdf)
package stats
