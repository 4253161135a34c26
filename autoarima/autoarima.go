package autoarima

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/sarima"
	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/stats"
	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

// Errors returned by model selection.
var (
	// ErrNoModel indicates that no candidate order could be fitted.
	ErrNoModel = errors.New("autoarima: no candidate model could be fitted")

	// ErrInvalidPeriod indicates a seasonal search with an unusable period.
	ErrInvalidPeriod = errors.New("autoarima: seasonal search requires a period of at least 2")
)

// Config holds configuration for the order search.
type Config struct {
	MaxP        int                // Maximum AR order (default: 5)
	MaxD        int                // Maximum differencing order (default: 2)
	MaxQ        int                // Maximum MA order (default: 5)
	MaxSP       int                // Maximum seasonal AR order (default: 2)
	MaxSD       int                // Maximum seasonal differencing order (default: 1)
	MaxSQ       int                // Maximum seasonal MA order (default: 2)
	Seasonal    bool               // Whether to consider seasonal models
	SeasonalM   int                // Seasonal period (required if Seasonal=true)
	Criterion   string             // Information criterion: "aic", "aicc" or "bic" (default: "aic")
	StationTest string             // Stationarity test: "adf" or "kpss" (default: "kpss")
	Strategy    Strategy           // Search strategy (default: Stepwise)
	Logger      logrus.FieldLogger // Search trace destination; silent if nil
}

// DefaultConfig returns the default search configuration. The defaults suit
// daily occupancy series with weekly seasonality.
func DefaultConfig() *Config {
	return &Config{
		MaxP:        5,
		MaxD:        2,
		MaxQ:        5,
		MaxSP:       2,
		MaxSD:       1,
		MaxSQ:       2,
		Seasonal:    true,
		SeasonalM:   7,
		Criterion:   "aic",
		StationTest: "kpss",
		Strategy:    &Stepwise{},
	}
}

// Result represents the outcome of an order search.
type Result struct {
	// Model is the best fitted model found.
	Model *sarima.Model

	// Order is the selected order.
	Order sarima.Order

	// Model metrics
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	Criterion float64

	// ModelsEvaluated counts the candidates that fitted successfully.
	ModelsEvaluated int
}

// Fit selects and fits the best seasonal ARIMA model for the series.
// Candidate orders that fail to fit are skipped; if every candidate fails,
// Fit returns ErrNoModel.
func Fit(series *timeseries.Series, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Seasonal && cfg.SeasonalM < 2 {
		return nil, ErrInvalidPeriod
	}

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	d := stats.NDiffs(series, cfg.MaxD, cfg.StationTest)

	sd := 0
	if cfg.Seasonal {
		sd = stats.NSDiffs(series, cfg.SeasonalM, cfg.MaxSD)
	}

	logger.WithFields(logrus.Fields{
		"n":         series.Len(),
		"d":         d,
		"sd":        sd,
		"seasonal":  cfg.Seasonal,
		"period":    cfg.SeasonalM,
		"criterion": criterionName(cfg.Criterion),
	}).Info("Starting order search")

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = &Stepwise{}
	}

	s := &searcher{
		series: series,
		cfg:    cfg,
		d:      d,
		sd:     sd,
		logger: logger,
	}
	strategy.search(s)

	if s.best == nil {
		return nil, ErrNoModel
	}

	model := s.best.model
	logger.WithFields(logrus.Fields{
		"order":     model.Order.String(),
		"criterion": s.best.criterion,
		"evaluated": s.evaluated,
	}).Info("Order search complete")

	return &Result{
		Model:           model,
		Order:           model.Order,
		AIC:             model.AIC,
		AICc:            model.AICc,
		BIC:             model.BIC,
		LogLik:          model.LogLik,
		Criterion:       s.best.criterion,
		ModelsEvaluated: s.evaluated,
	}, nil
}

// Forecast generates forecasts with prediction intervals at the given
// confidence level using the selected model.
func (r *Result) Forecast(steps int, confidence float64) (*sarima.Forecast, error) {
	if r.Model == nil {
		return nil, ErrNoModel
	}
	return r.Model.Forecast(steps, confidence)
}

// Predict generates forecasts at the default confidence level.
func (r *Result) Predict(steps int) (*sarima.Forecast, error) {
	if r.Model == nil {
		return nil, ErrNoModel
	}
	return r.Model.Predict(steps)
}

// Residuals returns the selected model's residuals.
func (r *Result) Residuals() []float64 {
	if r.Model == nil {
		return nil
	}
	return r.Model.Residuals()
}

// Summary returns the selected model's summary.
func (r *Result) Summary() *sarima.Summary {
	if r.Model == nil {
		return nil
	}
	return r.Model.Summary()
}

// searcher tracks search state shared by the strategies.
type searcher struct {
	series    *timeseries.Series
	cfg       *Config
	d, sd     int
	logger    logrus.FieldLogger
	evaluated int
	best      *candidate
}

type candidate struct {
	model     *sarima.Model
	criterion float64
}

// try fits one candidate order and records it if it beats the current best.
// It reports whether the candidate became the new best.
func (s *searcher) try(p, q, sp, sq int) bool {
	if p < 0 || p > s.cfg.MaxP || q < 0 || q > s.cfg.MaxQ {
		return false
	}
	if sp < 0 || sp > s.cfg.MaxSP || sq < 0 || sq > s.cfg.MaxSQ {
		return false
	}

	m := 0
	if s.cfg.Seasonal {
		m = s.cfg.SeasonalM
	}

	model := sarima.New(p, s.d, q, sp, s.sd, sq, m)
	if err := model.Fit(s.series); err != nil {
		s.logger.WithFields(logrus.Fields{
			"order": model.Order.String(),
		}).WithError(err).Debug("Candidate skipped")
		return false
	}

	s.evaluated++
	crit := s.criterion(model)

	s.logger.WithFields(logrus.Fields{
		"order":     model.Order.String(),
		"aic":       model.AIC,
		"bic":       model.BIC,
		"criterion": crit,
	}).Debug("Candidate evaluated")

	if s.betterThanBest(model, crit) {
		s.best = &candidate{model: model, criterion: crit}
		return true
	}
	return false
}

func (s *searcher) criterion(model *sarima.Model) float64 {
	switch s.cfg.Criterion {
	case "bic":
		return model.BIC
	case "aicc":
		return model.AICc
	default:
		return model.AIC
	}
}

// betterThanBest applies the selection rule: strictly lower criterion wins,
// and at a criterion tie the order with fewer coefficients wins. Candidate
// enumeration order is fixed, so selection is reproducible.
func (s *searcher) betterThanBest(model *sarima.Model, crit float64) bool {
	if s.best == nil {
		return true
	}
	const eps = 1e-9
	if crit < s.best.criterion-eps {
		return true
	}
	if math.Abs(crit-s.best.criterion) <= eps &&
		model.Order.NumParams() < s.best.model.Order.NumParams() {
		return true
	}
	return false
}

func criterionName(c string) string {
	switch c {
	case "bic", "aicc":
		return c
	default:
		return "aic"
	}
}
