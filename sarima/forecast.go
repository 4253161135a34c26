package sarima

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the confidence level used by Predict.
const DefaultConfidence = 0.95

// Forecast holds point forecasts with a two-sided prediction interval,
// aligned by index to the periods immediately following the training
// series' last date.
type Forecast struct {
	Point      []float64
	Lower      []float64
	Upper      []float64
	Timestamps []time.Time // Future dates, when the training series carried dates
	Confidence float64
}

// Horizon returns the number of forecast steps.
func (f *Forecast) Horizon() int {
	return len(f.Point)
}

// Width returns the interval width at step h.
func (f *Forecast) Width(h int) float64 {
	return f.Upper[h] - f.Lower[h]
}

// Predict generates point forecasts with the default 95% prediction interval.
func (m *Model) Predict(steps int) (*Forecast, error) {
	return m.Forecast(steps, DefaultConfidence)
}

// Forecast generates forecasts for the specified number of steps ahead with
// a two-sided prediction interval at the given confidence level. The
// interval width is non-decreasing in the step index: the forecast error
// variance accumulates the squared psi weights of the model, so each
// additional step can only add uncertainty.
func (m *Model) Forecast(steps int, confidence float64) (*Forecast, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, ErrInvalidHorizon
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, ErrInvalidConfidence
	}

	p := m.Order.P
	q := m.Order.Q
	sp := m.Order.SP
	sq := m.Order.SQ
	period := m.Order.M

	y := m.diffData.Values
	n := len(y)

	// Iterate the fitted recursion forward on the differenced scale.
	// Future residuals have expectation zero.
	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Intercept

		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		for i := 0; i < sp; i++ {
			lag := (i + 1) * period
			if t-lag >= 0 {
				pred += m.SARCoeffs[i] * (extY[t-lag] - m.Intercept)
			}
		}
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResiduals[t-i-1]
		}
		for i := 0; i < sq; i++ {
			lag := (i + 1) * period
			if t-lag >= 0 && t-lag < n {
				pred += m.SMACoeffs[i] * extResiduals[t-lag]
			}
		}

		extY[t] = pred
	}

	point := make([]float64, steps)
	copy(point, extY[n:])
	point = m.integrate(point)

	// Prediction interval from the cumulative psi-weight variance
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile((1 + confidence) / 2)
	psi := m.psiWeights(steps)

	lower := make([]float64, steps)
	upper := make([]float64, steps)
	cumVar := 0.0
	for h := 0; h < steps; h++ {
		cumVar += psi[h] * psi[h]
		se := math.Sqrt(m.Variance * cumVar)
		lower[h] = point[h] - z*se
		upper[h] = point[h] + z*se
	}

	return &Forecast{
		Point:      point,
		Lower:      lower,
		Upper:      upper,
		Timestamps: m.futureTimestamps(steps),
		Confidence: confidence,
	}, nil
}

// psiWeights computes psi_0..psi_{n-1} of the MA(inf) representation of the
// model on the original (undifferenced) scale, with psi_0 = 1. The
// differencing operators are folded into the AR polynomial, so integrated
// and seasonally integrated models get weights that grow with the horizon.
func (m *Model) psiWeights(n int) []float64 {
	phi := m.fullARPolynomial()
	theta := m.fullMAPolynomial()

	psi := make([]float64, n)
	psi[0] = 1
	for h := 1; h < n; h++ {
		v := 0.0
		if h < len(theta) {
			v = theta[h]
		}
		// phi holds lag polynomial coefficients, so the recursion
		// subtracts them: psi_h = theta_h - sum_i phi_i psi_{h-i}
		for i := 1; i < len(phi) && i <= h; i++ {
			v -= phi[i] * psi[h-i]
		}
		psi[h] = v
	}

	return psi
}

// fullARPolynomial expands
// phi(B) * PHI(B^m) * (1-B)^d * (1-B^m)^D into plain lag coefficients.
func (m *Model) fullARPolynomial() []float64 {
	period := m.Order.M

	poly := []float64{1}

	if m.Order.P > 0 {
		ar := make([]float64, m.Order.P+1)
		ar[0] = 1
		for i, c := range m.ARCoeffs {
			ar[i+1] = -c
		}
		poly = polyMul(poly, ar)
	}

	if m.Order.SP > 0 && period > 0 {
		sar := make([]float64, m.Order.SP*period+1)
		sar[0] = 1
		for i, c := range m.SARCoeffs {
			sar[(i+1)*period] = -c
		}
		poly = polyMul(poly, sar)
	}

	for i := 0; i < m.Order.D; i++ {
		poly = polyMul(poly, []float64{1, -1})
	}

	if period > 0 {
		sdiff := make([]float64, period+1)
		sdiff[0] = 1
		sdiff[period] = -1
		for i := 0; i < m.Order.SD; i++ {
			poly = polyMul(poly, sdiff)
		}
	}

	return poly
}

// fullMAPolynomial expands theta(B) * THETA(B^m) into plain lag coefficients.
func (m *Model) fullMAPolynomial() []float64 {
	period := m.Order.M

	poly := []float64{1}

	if m.Order.Q > 0 {
		ma := make([]float64, m.Order.Q+1)
		ma[0] = 1
		copy(ma[1:], m.MACoeffs)
		poly = polyMul(poly, ma)
	}

	if m.Order.SQ > 0 && period > 0 {
		sma := make([]float64, m.Order.SQ*period+1)
		sma[0] = 1
		for i, c := range m.SMACoeffs {
			sma[(i+1)*period] = c
		}
		poly = polyMul(poly, sma)
	}

	return poly
}

// polyMul multiplies two lag polynomials given as coefficient slices.
func polyMul(a, b []float64) []float64 {
	result := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			result[i+j] += av * bv
		}
	}
	return result
}

// integrate undoes differencing to return forecasts on the original scale.
// Differencing in Fit is non-seasonal first, then seasonal, so integration
// undoes seasonal differencing first, then non-seasonal.
func (m *Model) integrate(forecasts []float64) []float64 {
	d := m.Order.D
	sd := m.Order.SD
	period := m.Order.M

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	// levels[k] is the original series after k non-seasonal differences;
	// each integration pass below is seeded from the level it restores
	levels := make([][]float64, d+1)
	levels[0] = m.data.Values
	for k := 1; k <= d; k++ {
		prev := levels[k-1]
		next := make([]float64, len(prev)-1)
		for j := 1; j < len(prev); j++ {
			next[j-1] = prev[j] - prev[j-1]
		}
		levels[k] = next
	}

	// Undo seasonal differencing: z_t = y_t - y_{t-m}, so y_t = z_t + y_{t-m},
	// against the fully non-seasonally differenced series
	if sd > 0 && period > 0 {
		base := levels[d]
		nDiff := len(base)
		for i := 0; i < sd; i++ {
			for j := 0; j < len(result); j++ {
				if j < period {
					idx := nDiff - period + j
					if idx >= 0 && idx < nDiff {
						result[j] += base[idx]
					}
				} else {
					result[j] += result[j-period]
				}
			}
		}
	}

	// Undo non-seasonal differencing one order at a time. The pass that
	// restores the (d-1-i)-times differenced level must seed its cumulative
	// sum with the last observed value of that same level, not the last
	// value of the original series.
	for i := 0; i < d; i++ {
		base := levels[d-1-i]
		last := base[len(base)-1]
		for j := 0; j < len(result); j++ {
			if j == 0 {
				result[j] += last
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}

// futureTimestamps extends the training series' date index by steps periods.
// Returns nil when the training series carried no usable dates.
func (m *Model) futureTimestamps(steps int) []time.Time {
	ts := m.data.Timestamps
	if len(ts) < 2 || len(ts) != m.data.Len() {
		return nil
	}

	step := ts[len(ts)-1].Sub(ts[len(ts)-2])
	if step <= 0 {
		return nil
	}

	future := make([]time.Time, steps)
	last := ts[len(ts)-1]
	for i := range future {
		last = last.Add(step)
		future[i] = last
	}
	return future
}
