package sarima

import (
	"errors"
	"fmt"
	"math"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/stats"
	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

// Errors returned by model fitting and forecasting.
var (
	// ErrInsufficientObservations indicates the series is too short for the
	// requested order.
	ErrInsufficientObservations = errors.New("sarima: insufficient data points for the specified order")

	// ErrInvalidOrder indicates an order with seasonal components but no
	// usable seasonal period.
	ErrInvalidOrder = errors.New("sarima: seasonal order requires a period of at least 2")

	// ErrNotFitted is returned when forecasting from an unfitted model.
	ErrNotFitted = errors.New("sarima: model must be fitted before forecasting")

	// ErrInvalidHorizon is returned for a non-positive forecast horizon.
	ErrInvalidHorizon = errors.New("sarima: forecast horizon must be at least 1")

	// ErrInvalidConfidence is returned for a confidence level outside (0, 1).
	ErrInvalidConfidence = errors.New("sarima: confidence level must be in (0, 1)")
)

// Order represents a seasonal ARIMA order (p, d, q) x (P, D, Q, m). A plain
// ARIMA(p,d,q) is the degenerate case with all seasonal components zero.
type Order struct {
	P int // Non-seasonal AR order
	D int // Non-seasonal differencing order
	Q int // Non-seasonal MA order
	// Seasonal components
	SP int // Seasonal AR order
	SD int // Seasonal differencing order
	SQ int // Seasonal MA order
	M  int // Seasonal period (7 for daily data with weekly seasonality)
}

// IsSeasonal reports whether the order carries any seasonal component.
func (o Order) IsSeasonal() bool {
	return o.SP > 0 || o.SD > 0 || o.SQ > 0
}

// NumParams returns the number of estimated coefficients including the
// intercept. Used for information criteria and selection tie-breaks.
func (o Order) NumParams() int {
	return o.P + o.Q + o.SP + o.SQ + 1
}

// String formats the order in the conventional (p,d,q)(P,D,Q)[m] notation.
func (o Order) String() string {
	if !o.IsSeasonal() {
		return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
	}
	return fmt.Sprintf("SARIMA(%d,%d,%d)(%d,%d,%d)[%d]",
		o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}

// Model represents a seasonal ARIMA model. A Model is mutable until Fit
// returns, then treated as immutable by the rest of the pipeline.
type Model struct {
	Order     Order
	ARCoeffs  []float64 // Non-seasonal AR coefficients
	MACoeffs  []float64 // Non-seasonal MA coefficients
	SARCoeffs []float64 // Seasonal AR coefficients
	SMACoeffs []float64 // Seasonal MA coefficients
	Intercept float64
	Variance  float64 // Residual variance
	AIC       float64
	AICc      float64 // Corrected AIC for small sample sizes
	BIC       float64
	LogLik    float64

	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// New creates a new seasonal ARIMA model with the specified order.
func New(p, d, q, sp, sd, sq, m int) *Model {
	return &Model{
		Order: Order{
			P: p, D: d, Q: q,
			SP: sp, SD: sd, SQ: sq, M: m,
		},
		ARCoeffs:  make([]float64, p),
		MACoeffs:  make([]float64, q),
		SARCoeffs: make([]float64, sp),
		SMACoeffs: make([]float64, sq),
	}
}

// NewNonSeasonal creates a plain ARIMA(p,d,q) model.
func NewNonSeasonal(p, d, q int) *Model {
	return New(p, d, q, 0, 0, 0, 0)
}

// Fit fits the model to the given time series data using conditional sum of
// squares estimation.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.Order.IsSeasonal() && m.Order.M < 2 {
		return ErrInvalidOrder
	}

	minLen := m.Order.P + m.Order.Q + m.Order.D +
		(m.Order.SP+m.Order.SD+m.Order.SQ)*m.Order.M + 20
	if series.Len() < minLen {
		return ErrInsufficientObservations
	}

	m.data = series

	// Non-seasonal differencing first, then seasonal
	diffSeries := series
	for i := 0; i < m.Order.D; i++ {
		diffSeries = diffSeries.Diff()
		if diffSeries.Len() == 0 {
			return ErrInsufficientObservations
		}
	}
	for i := 0; i < m.Order.SD; i++ {
		diffSeries = diffSeries.SeasonalDiff(m.Order.M)
		if diffSeries.Len() == 0 {
			return ErrInsufficientObservations
		}
	}
	m.diffData = diffSeries

	m.initCoeffs()
	m.optimizeCSS(m.diffData.Values)
	m.calculateIC()

	m.fitted = true
	return nil
}

// initCoeffs seeds the optimizer: Yule-Walker style initialisation for AR
// terms from the ACF, damped seasonal-lag autocorrelations for seasonal AR,
// and small constants for the MA terms.
func (m *Model) initCoeffs() {
	p := m.Order.P
	sp := m.Order.SP
	period := m.Order.M

	if p > 0 {
		if acf := stats.ACF(m.diffData, p); acf != nil {
			for i := 0; i < p && i+1 < len(acf); i++ {
				m.ARCoeffs[i] = acf[i+1] * 0.5
			}
		}
	}

	if sp > 0 && period > 0 {
		if acf := stats.ACF(m.diffData, sp*period); acf != nil {
			for i := 0; i < sp; i++ {
				idx := (i + 1) * period
				if idx < len(acf) {
					m.SARCoeffs[i] = acf[idx] * 0.5
				}
			}
		}
	}

	for i := range m.MACoeffs {
		m.MACoeffs[i] = 0.1
	}
	for i := range m.SMACoeffs {
		m.SMACoeffs[i] = 0.1
	}
}

// predictAt evaluates the one-step prediction at time t for the differenced
// series y with the current coefficients and the residual history.
func (m *Model) predictAt(y, residuals []float64, t int) float64 {
	period := m.Order.M
	pred := m.Intercept

	for i := 0; i < m.Order.P && t-i-1 >= 0; i++ {
		pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
	}
	for i := 0; i < m.Order.SP; i++ {
		lag := (i + 1) * period
		if t-lag >= 0 {
			pred += m.SARCoeffs[i] * (y[t-lag] - m.Intercept)
		}
	}
	for i := 0; i < m.Order.Q && t-i-1 >= 0; i++ {
		pred += m.MACoeffs[i] * residuals[t-i-1]
	}
	for i := 0; i < m.Order.SQ; i++ {
		lag := (i + 1) * period
		if t-lag >= 0 {
			pred += m.SMACoeffs[i] * residuals[t-lag]
		}
	}

	return pred
}

// optimizeCSS minimises the conditional sum of squares with gradient descent
// using momentum, learning-rate decay, best-solution tracking, and early
// stopping. Coefficients are clamped to (-0.99, 0.99) for stationarity and
// invertibility.
func (m *Model) optimizeCSS(y []float64) {
	n := len(y)
	p := m.Order.P
	q := m.Order.Q
	sp := m.Order.SP
	sq := m.Order.SQ
	period := m.Order.M

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	m.Intercept = mean / float64(n)

	maxIter := 200
	tolerance := 1e-8
	learningRate := 0.005
	momentum := 0.9
	decay := 0.99

	arMomentum := make([]float64, p)
	maMomentum := make([]float64, q)
	sarMomentum := make([]float64, sp)
	smaMomentum := make([]float64, sq)

	startIdx := max(max(p, q), max(sp*period, sq*period))
	if startIdx >= n-10 {
		startIdx = 0
	}

	bestSSE := math.Inf(1)
	bestARCoeffs := make([]float64, p)
	bestMACoeffs := make([]float64, q)
	bestSARCoeffs := make([]float64, sp)
	bestSMACoeffs := make([]float64, sq)
	noImproveCount := 0

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		currentSSE := 0.0

		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - m.predictAt(y, residuals, t)
			currentSSE += residuals[t] * residuals[t]
		}

		if currentSSE < bestSSE {
			bestSSE = currentSSE
			copy(bestARCoeffs, m.ARCoeffs)
			copy(bestMACoeffs, m.MACoeffs)
			copy(bestSARCoeffs, m.SARCoeffs)
			copy(bestSMACoeffs, m.SMACoeffs)
			noImproveCount = 0
		} else {
			noImproveCount++
		}

		if noImproveCount > 20 {
			break
		}

		arGrad := make([]float64, p)
		maGrad := make([]float64, q)
		sarGrad := make([]float64, sp)
		smaGrad := make([]float64, sq)

		for t := startIdx; t < n; t++ {
			for i := 0; i < p && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < sp; i++ {
				lag := (i + 1) * period
				if t-lag >= 0 {
					sarGrad[i] -= 2 * residuals[t] * (y[t-lag] - m.Intercept)
				}
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
			for i := 0; i < sq; i++ {
				lag := (i + 1) * period
				if t-lag >= 0 {
					smaGrad[i] -= 2 * residuals[t] * residuals[t-lag]
				}
			}
		}

		for i := 0; i < p; i++ {
			arMomentum[i] = momentum*arMomentum[i] + learningRate*arGrad[i]/float64(n)
			m.ARCoeffs[i] = clamp(m.ARCoeffs[i]-arMomentum[i], -0.99, 0.99)
		}
		for i := 0; i < sp; i++ {
			sarMomentum[i] = momentum*sarMomentum[i] + learningRate*sarGrad[i]/float64(n)
			m.SARCoeffs[i] = clamp(m.SARCoeffs[i]-sarMomentum[i], -0.99, 0.99)
		}
		for i := 0; i < q; i++ {
			maMomentum[i] = momentum*maMomentum[i] + learningRate*maGrad[i]/float64(n)
			m.MACoeffs[i] = clamp(m.MACoeffs[i]-maMomentum[i], -0.99, 0.99)
		}
		for i := 0; i < sq; i++ {
			smaMomentum[i] = momentum*smaMomentum[i] + learningRate*smaGrad[i]/float64(n)
			m.SMACoeffs[i] = clamp(m.SMACoeffs[i]-smaMomentum[i], -0.99, 0.99)
		}

		learningRate *= decay

		if iter > 0 && math.Abs(currentSSE-bestSSE) < tolerance {
			break
		}
	}

	copy(m.ARCoeffs, bestARCoeffs)
	copy(m.MACoeffs, bestMACoeffs)
	copy(m.SARCoeffs, bestSARCoeffs)
	copy(m.SMACoeffs, bestSMACoeffs)

	// Final residuals and fitted values with the best coefficients
	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)
	for t := 0; t < n; t++ {
		m.fittedVals[t] = m.predictAt(y, m.residuals, t)
		m.residuals[t] = y[t] - m.fittedVals[t]
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}

	numParams := m.Order.NumParams()
	if count > numParams {
		m.Variance = sse / float64(count-numParams)
	} else {
		m.Variance = sse / float64(count)
	}
}

// calculateIC calculates AIC, AICc, and BIC from the Gaussian log-likelihood.
func (m *Model) calculateIC() {
	n := len(m.residuals)

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	ic := stats.CalculateIC(m.LogLik, n, m.Order.NumParams())
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC
}

// Residuals returns a copy of the model residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns a copy of the in-sample fitted values on the
// differenced scale.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Summary represents a fitted model summary.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	SARCoeffs []float64
	SMACoeffs []float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model including a Ljung-Box
// residual autocorrelation diagnostic.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	residSeries := timeseries.New(m.residuals)
	fitdf := m.Order.P + m.Order.Q + m.Order.SP + m.Order.SQ
	lb := stats.LjungBox(residSeries, 10, fitdf)

	return &Summary{
		Order:     m.Order,
		ARCoeffs:  m.ARCoeffs,
		MACoeffs:  m.MACoeffs,
		SARCoeffs: m.SARCoeffs,
		SMACoeffs: m.SMACoeffs,
		Intercept: m.Intercept,
		Variance:  m.Variance,
		AIC:       m.AIC,
		AICc:      m.AICc,
		BIC:       m.BIC,
		LogLik:    m.LogLik,
		NObs:      m.data.Len(),
		LjungBox:  lb,
	}
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
