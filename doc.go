// Package hotelforecast turns reservation-level booking records into daily
// occupancy series and forecasts future occupancy with seasonal ARIMA models.
//
// The pipeline has two stages. Reservation records (arrival/departure date
// pairs) are first expanded to one record per occupied night and aggregated
// into a daily occupancy count. The resulting series is then decomposed for
// diagnostics, a seasonal ARIMA model is selected automatically by
// information criterion, and the fitted model projects future occupancy with
// prediction intervals. Held-out actuals can be scored against the forecast.
//
// # Quick Start
//
// Expand bookings and build the occupancy series:
//
//	daily, err := reservation.ExpandToDaily(bookings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	occupancy := reservation.FillDaily(reservation.AggregateOccupancy(daily))
//
// Select a model and forecast:
//
//	cfg := autoarima.DefaultConfig()
//	cfg.Seasonal = true
//	cfg.SeasonalM = 7 // weekly seasonality in daily data
//	result, err := autoarima.Fit(occupancy, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fc, _ := result.Forecast(30, 0.95)
//
// Score against held-out actuals:
//
//	metrics, _ := evaluate.Evaluate(actuals, fc.Point)
//	fmt.Printf("MAE %.2f RMSE %.2f MAPE %.1f%%\n", metrics.MAE, metrics.RMSE, metrics.MAPE)
//
// # Packages
//
//   - reservation: booking-to-daily expansion and occupancy aggregation
//   - timeseries: time series data structures and utilities
//   - stats: seasonal decomposition, stationarity tests, autocorrelation
//   - sarima: seasonal ARIMA models with prediction intervals
//   - autoarima: automatic model order selection
//   - evaluate: forecast accuracy metrics (MAE, RMSE, MAPE)
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package hotelforecast
