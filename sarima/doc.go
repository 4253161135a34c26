// Package sarima implements seasonal ARIMA models for time series with
// seasonality, such as daily hotel occupancy with a weekly cycle.
//
// A SARIMA(p,d,q)(P,D,Q)[m] model combines:
//   - Non-seasonal components: AR(p), I(d), MA(q)
//   - Seasonal components: SAR(P), SI(D), SMA(Q) at seasonal period m
//
// A plain ARIMA(p,d,q) is simply the order with zero seasonal components;
// use NewNonSeasonal for that case.
//
// # Basic Usage
//
// Fit a weekly-seasonal model to daily occupancy (m=7):
//
//	model := sarima.New(1, 0, 0, 1, 1, 0, 7)
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Forecast the next 30 days with a 95% prediction interval
//	fc, err := model.Forecast(30, 0.95)
//
// The returned Forecast carries point forecasts and lower/upper bounds
// aligned to the periods following the last training date. Interval widths
// never shrink as the horizon grows.
//
// # Model Selection
//
// Compare candidate orders with information criteria (lower is better):
//
//	fmt.Printf("AIC: %.2f, AICc: %.2f, BIC: %.2f\n",
//	    model.AIC, model.AICc, model.BIC)
//
// For automatic order selection, use the autoarima package.
package sarima
