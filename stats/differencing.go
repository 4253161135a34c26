package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

// NDiffs determines the number of first differences required for
// stationarity. testType can be "kpss" (default) or "adf". Returns a value
// in [0, maxD].
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}
	if testType == "" {
		testType = "kpss"
	}

	current := series
	for d := 0; d < maxD; d++ {
		isStationary := false

		if testType == "adf" {
			result := ADF(current, 0)
			if result != nil && result.IsStationary {
				isStationary = true
			}
		} else {
			result := KPSS(current, "c", 0)
			if result != nil && result.IsStationary {
				isStationary = true
			}
		}

		if isStationary {
			return d
		}

		current = current.Diff()
		if current.Len() < 10 {
			return d
		}
	}

	return maxD
}

// NSDiffs determines the number of seasonal differences required using the
// seasonal strength measure: one seasonal difference is suggested while
// F_S >= 0.64. period is the seasonal period (7 for daily occupancy data
// with weekly seasonality).
func NSDiffs(series *timeseries.Series, period int, maxD int) int {
	if maxD <= 0 {
		maxD = 1
	}
	if period <= 1 || series.Len() < 2*period {
		return 0
	}

	current := series
	for d := 0; d < maxD; d++ {
		if SeasonalStrength(current, period) < 0.64 {
			return d
		}

		current = current.SeasonalDiff(period)
		if current.Len() < 2*period {
			return d
		}
	}

	return maxD
}

// SeasonalStrength calculates the strength of seasonality,
// F_S = max(0, 1 - Var(R)/Var(S+R)), where S and R are the seasonal and
// residual components of an additive decomposition.
func SeasonalStrength(series *timeseries.Series, period int) float64 {
	decomp, err := Decompose(series, period, Additive)
	if err != nil {
		return 0
	}

	varR := nanVariance(decomp.Residual.Values)

	seasonalPlusResid := make([]float64, series.Len())
	for i := range seasonalPlusResid {
		s := decomp.Seasonal.Values[i]
		r := decomp.Residual.Values[i]
		if math.IsNaN(s) || math.IsNaN(r) {
			seasonalPlusResid[i] = math.NaN()
		} else {
			seasonalPlusResid[i] = s + r
		}
	}
	varSR := nanVariance(seasonalPlusResid)

	if varSR == 0 {
		return 0
	}

	strength := 1 - varR/varSR
	if strength < 0 {
		strength = 0
	}
	return strength
}

// nanVariance calculates the sample variance of a slice, ignoring NaN values.
func nanVariance(data []float64) float64 {
	valid := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) < 2 {
		return 0
	}
	return stat.Variance(valid, nil)
}

// InformationCriteria holds model-selection scores. Lower is better for
// AIC, AICc, and BIC.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// CalculateIC calculates all information criteria from a log-likelihood,
// the number of observations, and the number of estimated parameters.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	var aicc float64
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	} else {
		aicc = math.Inf(1)
	}

	return &InformationCriteria{
		AIC:    aic,
		AICc:   aicc,
		BIC:    bic,
		LogLik: logLik,
	}
}
