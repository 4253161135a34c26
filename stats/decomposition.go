package stats

import (
	"errors"
	"math"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

// Errors returned by decomposition.
var (
	// ErrInsufficientData indicates the series is too short for the requested
	// seasonal period (fewer than two full cycles).
	ErrInsufficientData = errors.New("stats: series too short for decomposition")

	// ErrInvalidKind indicates an unrecognised decomposition kind.
	ErrInvalidKind = errors.New("stats: decomposition kind must be additive or multiplicative")
)

// Kind selects the decomposition model.
type Kind string

const (
	// Additive models observed = trend + seasonal + residual.
	Additive Kind = "additive"
	// Multiplicative models observed = trend * seasonal * residual.
	Multiplicative Kind = "multiplicative"
)

// Decomposition holds the components of a seasonal decomposition. All four
// series share the input's date index. Trend and Residual are NaN at the
// series edges where the centered moving average is undefined.
type Decomposition struct {
	Observed *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	Period   int
	Kind     Kind
}

// Decompose performs classical seasonal decomposition of a time series using
// a centered moving average for the trend. The input series is not modified.
// The series must contain at least two full seasonal cycles.
func Decompose(series *timeseries.Series, period int, kind Kind) (*Decomposition, error) {
	n := series.Len()
	if period < 2 || n < 2*period {
		return nil, ErrInsufficientData
	}
	if kind != Additive && kind != Multiplicative {
		return nil, ErrInvalidKind
	}

	trend := centeredTrend(series, period)

	// Detrend
	detrended := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]):
			detrended[i] = math.NaN()
		case kind == Multiplicative:
			if trend[i] == 0 {
				detrended[i] = math.NaN()
			} else {
				detrended[i] = series.Values[i] / trend[i]
			}
		default:
			detrended[i] = series.Values[i] - trend[i]
		}
	}

	// Average the detrended values within each seasonal position
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i := 0; i < n; i++ {
		if !math.IsNaN(detrended[i]) {
			pattern[i%period] += detrended[i]
			counts[i%period]++
		}
	}
	for i := 0; i < period; i++ {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
	}

	// Normalize so the seasonal component sums to zero (additive) or
	// averages to one (multiplicative) over a full cycle
	sum := 0.0
	for _, v := range pattern {
		sum += v
	}
	mean := sum / float64(period)
	for i := range pattern {
		if kind == Multiplicative {
			if mean != 0 {
				pattern[i] /= mean
			}
		} else {
			pattern[i] -= mean
		}
	}

	seasonal := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = pattern[i%period]
	}

	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(trend[i]):
			residual[i] = math.NaN()
		case kind == Multiplicative:
			if trend[i] == 0 || seasonal[i] == 0 {
				residual[i] = math.NaN()
			} else {
				residual[i] = series.Values[i] / (trend[i] * seasonal[i])
			}
		default:
			residual[i] = series.Values[i] - trend[i] - seasonal[i]
		}
	}

	component := func(values []float64, name string) *timeseries.Series {
		return &timeseries.Series{
			Timestamps: series.Timestamps,
			Values:     values,
			Name:       name,
		}
	}

	return &Decomposition{
		Observed: series,
		Trend:    component(trend, "trend"),
		Seasonal: component(seasonal, "seasonal"),
		Residual: component(residual, "residual"),
		Period:   period,
		Kind:     kind,
	}, nil
}

// centeredTrend computes the centered moving average trend. Even periods use
// a 2xm weighted window so the average stays centered on each observation.
// Positions inside half a window of either edge are NaN.
func centeredTrend(series *timeseries.Series, period int) []float64 {
	n := series.Len()
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2

	if period%2 == 0 {
		for i := half; i < n-half; i++ {
			sum := series.Values[i-half]*0.5 + series.Values[i+half]*0.5
			for j := i - half + 1; j < i+half; j++ {
				sum += series.Values[j]
			}
			trend[i] = sum / float64(period)
		}
	} else {
		for i := half; i < n-half; i++ {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += series.Values[j]
			}
			trend[i] = sum / float64(period)
		}
	}

	return trend
}
