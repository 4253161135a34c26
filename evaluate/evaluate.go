// Package evaluate provides forecast accuracy metrics.
package evaluate

import (
	"errors"
	"math"
)

// Errors returned by metric calculation.
var (
	// ErrLengthMismatch indicates the actual and predicted slices differ in
	// length or are empty.
	ErrLengthMismatch = errors.New("evaluate: actual and predicted must be non-empty and equal length")

	// ErrUndefinedMetric indicates a metric that cannot be computed for the
	// given data, such as MAPE when every actual value is zero.
	ErrUndefinedMetric = errors.New("evaluate: metric undefined for the given data")
)

// Metrics holds forecast accuracy metrics for one evaluation run.
type Metrics struct {
	// MAE is the mean absolute error, in the units of the series.
	MAE float64

	// RMSE is the root mean squared error, in the units of the series.
	RMSE float64

	// MAPE is the mean absolute percentage error, in percent. Points with a
	// zero actual value are excluded.
	MAPE float64
}

// Evaluate computes MAE, RMSE and MAPE between actual and predicted values.
// The slices must be non-empty and equal length. MAPE skips points where the
// actual value is zero; if every actual value is zero Evaluate returns
// ErrUndefinedMetric.
func Evaluate(actual, predicted []float64) (*Metrics, error) {
	n := len(actual)
	if n == 0 || n != len(predicted) {
		return nil, ErrLengthMismatch
	}

	var absSum, sqSum, pctSum float64
	pctCount := 0
	for i := 0; i < n; i++ {
		err := actual[i] - predicted[i]
		absSum += math.Abs(err)
		sqSum += err * err
		if actual[i] != 0 {
			pctSum += math.Abs(err / actual[i])
			pctCount++
		}
	}

	if pctCount == 0 {
		return nil, ErrUndefinedMetric
	}

	return &Metrics{
		MAE:  absSum / float64(n),
		RMSE: math.Sqrt(sqSum / float64(n)),
		MAPE: 100 * pctSum / float64(pctCount),
	}, nil
}

// MAE returns the mean absolute error between actual and predicted values.
func MAE(actual, predicted []float64) (float64, error) {
	m, err := evaluateNoMAPE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return m.MAE, nil
}

// RMSE returns the root mean squared error between actual and predicted
// values.
func RMSE(actual, predicted []float64) (float64, error) {
	m, err := evaluateNoMAPE(actual, predicted)
	if err != nil {
		return 0, err
	}
	return m.RMSE, nil
}

// MAPE returns the mean absolute percentage error, in percent.
func MAPE(actual, predicted []float64) (float64, error) {
	m, err := Evaluate(actual, predicted)
	if err != nil {
		return 0, err
	}
	return m.MAPE, nil
}

// evaluateNoMAPE computes the scale-dependent metrics without the MAPE
// zero-actual restriction.
func evaluateNoMAPE(actual, predicted []float64) (*Metrics, error) {
	n := len(actual)
	if n == 0 || n != len(predicted) {
		return nil, ErrLengthMismatch
	}

	var absSum, sqSum float64
	for i := 0; i < n; i++ {
		err := actual[i] - predicted[i]
		absSum += math.Abs(err)
		sqSum += err * err
	}

	return &Metrics{
		MAE:  absSum / float64(n),
		RMSE: math.Sqrt(sqSum / float64(n)),
	}, nil
}
