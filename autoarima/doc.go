// Package autoarima implements automatic seasonal ARIMA order selection.
//
// Fit searches through combinations of model orders, fits each candidate and
// selects the one with the lowest information criterion. Differencing orders
// are chosen first with stationarity tests (KPSS/ADF for d, seasonal strength
// for D), then a search strategy explores the AR and MA orders.
//
// # Basic Usage
//
// Automatic model selection for a daily occupancy series:
//
//	cfg := autoarima.DefaultConfig()
//	result, err := autoarima.Fit(series, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Best model: %s\n", result.Order)
//	fmt.Printf("AIC: %.2f, Models evaluated: %d\n",
//	    result.AIC, result.ModelsEvaluated)
//
//	forecast, _ := result.Forecast(30, 0.95)
//
// The defaults assume weekly seasonality (SeasonalM=7); for non-seasonal
// series set Seasonal=false.
//
// # Configuration Options
//
// Customize the search with Config:
//
//	cfg := &autoarima.Config{
//	    MaxP:        3,              // Maximum AR order
//	    MaxD:        2,              // Maximum differencing order
//	    MaxQ:        3,              // Maximum MA order
//	    MaxSP:       2,              // Maximum seasonal AR order
//	    MaxSD:       1,              // Maximum seasonal differencing
//	    MaxSQ:       2,              // Maximum seasonal MA order
//	    Seasonal:    true,           // Enable seasonal search
//	    SeasonalM:   7,              // Seasonal period
//	    Criterion:   "aicc",         // "aic", "aicc", or "bic"
//	    StationTest: "kpss",         // "adf" or "kpss"
//	    Strategy:    &autoarima.Grid{},
//	    Logger:      logger,         // logrus trace of each candidate
//	}
//
// # Search Strategies
//
// Two strategies are available:
//   - Stepwise (default): Hyndman-Khandakar style neighborhood search
//   - Grid: Exhaustive search over all order combinations
//
// Stepwise is recommended for most use cases; it fits far fewer models and
// typically finds the same order. Candidates that fail to fit are skipped,
// and ties on the criterion go to the order with fewer coefficients, so a
// given series and configuration always select the same model.
package autoarima
