package sarima

import (
	"errors"
	"math"
	"testing"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

func TestNewOrder(t *testing.T) {
	model := New(1, 1, 1, 1, 1, 1, 7)

	if model.Order.P != 1 || model.Order.D != 1 || model.Order.Q != 1 {
		t.Errorf("Unexpected non-seasonal order: %+v", model.Order)
	}
	if model.Order.SP != 1 || model.Order.SD != 1 || model.Order.SQ != 1 {
		t.Errorf("Unexpected seasonal order: %+v", model.Order)
	}
	if model.Order.M != 7 {
		t.Errorf("Expected M=7, got %d", model.Order.M)
	}
	if !model.Order.IsSeasonal() {
		t.Error("Expected seasonal order")
	}
	if model.Order.NumParams() != 5 {
		t.Errorf("Expected 5 parameters, got %d", model.Order.NumParams())
	}
}

func TestNonSeasonalOrder(t *testing.T) {
	model := NewNonSeasonal(2, 1, 1)
	if model.Order.IsSeasonal() {
		t.Error("Expected non-seasonal order")
	}
	if model.Order.NumParams() != 4 {
		t.Errorf("Expected 4 parameters, got %d", model.Order.NumParams())
	}
}

func TestFitWeeklyOccupancy(t *testing.T) {
	// Daily occupancy with a weekend bump
	n := 140
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		dayOfWeek := i % 7
		if dayOfWeek == 5 || dayOfWeek == 6 {
			values[i] = 85 + float64(i%5-2)
		} else {
			values[i] = 55 + float64(i%5-2)
		}
	}

	series := timeseries.New(values)
	model := New(1, 0, 0, 1, 0, 0, 7)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	t.Logf("SARIMA(1,0,0)(1,0,0)[7] - AIC: %f, BIC: %f", model.AIC, model.BIC)
	t.Logf("AR: %v, SAR: %v", model.ARCoeffs, model.SARCoeffs)
}

func TestFitWithDifferencing(t *testing.T) {
	n := 168
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		trend := float64(i) * 0.3
		seasonal := 15 * math.Cos(2*math.Pi*float64(i)/7)
		values[i] = 50 + trend + seasonal + float64(i%5-2)/3
	}

	series := timeseries.New(values)
	model := New(1, 1, 0, 1, 1, 0, 7)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit SARIMA(1,1,0)(1,1,0)[7]: %v", err)
	}

	t.Logf("AIC: %f, BIC: %f", model.AIC, model.BIC)
}

func TestFitTooShort(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4, 5})
	model := New(1, 0, 0, 1, 0, 0, 7)

	err := model.Fit(series)
	if !errors.Is(err, ErrInsufficientObservations) {
		t.Errorf("Expected ErrInsufficientObservations, got %v", err)
	}
}

func TestFitSeasonalOrderWithoutPeriod(t *testing.T) {
	series := timeseries.New(make([]float64, 100))
	model := New(1, 0, 0, 1, 0, 0, 0)

	err := model.Fit(series)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("Expected ErrInvalidOrder, got %v", err)
	}
}

func TestForecastHorizonAndShape(t *testing.T) {
	n := 112
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 10*math.Sin(2*math.Pi*float64(i)/7) + float64(i%5-2)/2
	}

	series := timeseries.New(values)
	model := New(0, 0, 0, 1, 0, 0, 7)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fc, err := model.Forecast(14, 0.95)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}

	if fc.Horizon() != 14 {
		t.Errorf("Expected 14 forecasts, got %d", fc.Horizon())
	}
	if len(fc.Lower) != 14 || len(fc.Upper) != 14 {
		t.Errorf("Expected matching bound lengths, got %d/%d", len(fc.Lower), len(fc.Upper))
	}
	if len(fc.Timestamps) != 14 {
		t.Errorf("Expected 14 future timestamps, got %d", len(fc.Timestamps))
	}

	for h := 0; h < fc.Horizon(); h++ {
		if math.IsNaN(fc.Point[h]) || math.IsInf(fc.Point[h], 0) {
			t.Errorf("Forecast %d is NaN or Inf", h)
		}
		if fc.Lower[h] > fc.Point[h] || fc.Upper[h] < fc.Point[h] {
			t.Errorf("Point forecast %d outside its interval", h)
		}
	}
}

func TestForecastIntervalWidthMonotone(t *testing.T) {
	tests := []struct {
		name          string
		p, d, q       int
		sp, sd, sq, m int
	}{
		{"ARMA(1,1)", 1, 0, 1, 0, 0, 0, 0},
		{"ARIMA(1,1,1)", 1, 1, 1, 0, 0, 0, 0},
		{"SARIMA(1,0,0)(1,0,0)7", 1, 0, 0, 1, 0, 0, 7},
		{"SARIMA(0,1,1)(0,1,1)7", 0, 1, 1, 0, 1, 1, 7},
	}

	n := 168
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		trend := float64(i) * 0.2
		seasonal := 12 * math.Sin(2*math.Pi*float64(i)/7)
		values[i] = 50 + trend + seasonal + float64(i%5-2)/2
	}
	series := timeseries.New(values)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := New(tt.p, tt.d, tt.q, tt.sp, tt.sd, tt.sq, tt.m)
			if err := model.Fit(series); err != nil {
				t.Skipf("Fit failed for %s: %v", tt.name, err)
			}

			fc, err := model.Forecast(21, 0.95)
			if err != nil {
				t.Fatalf("Forecast failed: %v", err)
			}

			for h := 1; h < fc.Horizon(); h++ {
				if fc.Width(h) < fc.Width(h-1)-1e-9 {
					t.Errorf("Interval width shrank at step %d: %f -> %f",
						h, fc.Width(h-1), fc.Width(h))
				}
			}
		})
	}
}

func TestForecastConfidenceOrdering(t *testing.T) {
	n := 112
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 10*math.Sin(2*math.Pi*float64(i)/7) + float64(i%5-2)/2
	}
	series := timeseries.New(values)

	model := New(1, 0, 0, 1, 0, 0, 7)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fc80, err := model.Forecast(7, 0.80)
	if err != nil {
		t.Fatalf("Forecast at 80%% failed: %v", err)
	}
	fc99, err := model.Forecast(7, 0.99)
	if err != nil {
		t.Fatalf("Forecast at 99%% failed: %v", err)
	}

	for h := 0; h < 7; h++ {
		if fc99.Width(h) <= fc80.Width(h) {
			t.Errorf("Expected wider interval at 99%% than 80%% at step %d", h)
		}
	}
}

func TestForecastInvalidArguments(t *testing.T) {
	n := 112
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 10*math.Sin(2*math.Pi*float64(i)/7)
	}
	series := timeseries.New(values)

	model := New(1, 0, 0, 0, 0, 0, 0)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if _, err := model.Forecast(0, 0.95); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("Expected ErrInvalidHorizon, got %v", err)
	}
	if _, err := model.Forecast(-3, 0.95); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("Expected ErrInvalidHorizon for negative steps, got %v", err)
	}
	if _, err := model.Forecast(5, 1.5); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("Expected ErrInvalidConfidence, got %v", err)
	}
	if _, err := model.Forecast(5, 0); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("Expected ErrInvalidConfidence for zero, got %v", err)
	}

	unfitted := New(1, 0, 0, 0, 0, 0, 0)
	if _, err := unfitted.Forecast(5, 0.95); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted, got %v", err)
	}
}

func TestPsiWeightsWhiteNoise(t *testing.T) {
	// For a fitted (0,0,0) model the psi weights collapse to psi_0 = 1
	n := 100
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 50 + float64(i%7-3)
	}
	series := timeseries.New(values)

	model := NewNonSeasonal(0, 0, 0)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	psi := model.psiWeights(5)
	if psi[0] != 1 {
		t.Errorf("Expected psi[0]=1, got %f", psi[0])
	}
	for j := 1; j < 5; j++ {
		if psi[j] != 0 {
			t.Errorf("Expected psi[%d]=0 for white noise, got %f", j, psi[j])
		}
	}
}

func TestResidualsAndFittedValues(t *testing.T) {
	n := 112
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 5*math.Sin(2*math.Pi*float64(i)/7)
	}
	series := timeseries.New(values)

	model := New(1, 0, 0, 1, 0, 0, 7)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	residuals := model.Residuals()
	fitted := model.FittedValues()
	if len(residuals) != n || len(fitted) != n {
		t.Fatalf("Expected %d residuals and fitted values, got %d/%d", n, len(residuals), len(fitted))
	}

	for i := range residuals {
		if math.Abs(residuals[i]+fitted[i]-values[i]) > 1e-9 {
			t.Fatalf("fitted + residual != observed at %d", i)
		}
	}

	if New(1, 0, 0, 0, 0, 0, 0).Residuals() != nil {
		t.Error("Expected nil residuals from unfitted model")
	}
}

func TestSummary(t *testing.T) {
	n := 112
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 5*math.Sin(2*math.Pi*float64(i)/7) + float64(i%3-1)
	}
	series := timeseries.New(values)

	model := New(1, 0, 1, 1, 0, 1, 7)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	summary := model.Summary()
	if summary == nil {
		t.Fatal("Summary should not be nil")
	}
	if summary.NObs != n {
		t.Errorf("Expected NObs=%d, got %d", n, summary.NObs)
	}
	if summary.LjungBox == nil {
		t.Error("Expected Ljung-Box diagnostic in summary")
	}

	t.Logf("Order: (%d,%d,%d)(%d,%d,%d)[%d], AIC: %.2f",
		summary.Order.P, summary.Order.D, summary.Order.Q,
		summary.Order.SP, summary.Order.SD, summary.Order.SQ,
		summary.Order.M, summary.AIC)
}

func TestPolyMul(t *testing.T) {
	// (1 - B)(1 - B) = 1 - 2B + B^2
	result := polyMul([]float64{1, -1}, []float64{1, -1})
	expected := []float64{1, -2, 1}
	if len(result) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(result))
	}
	for i := range expected {
		if math.Abs(result[i]-expected[i]) > 1e-12 {
			t.Errorf("Expected coeff[%d]=%f, got %f", i, expected[i], result[i])
		}
	}
}

func TestForecastIntegratesLinearTrend(t *testing.T) {
	// y_t = 5t: first differences are the constant 5, so ARIMA(0,1,0)
	// forecasts must extend the line exactly
	n := 60
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 5 * float64(i)
	}
	series := timeseries.New(values)

	model := NewNonSeasonal(0, 1, 0)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fc, err := model.Predict(5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	for h := 0; h < 5; h++ {
		expected := 5 * float64(n+h)
		if math.Abs(fc.Point[h]-expected) > 1e-6 {
			t.Errorf("Step %d: expected %f, got %f", h, expected, fc.Point[h])
		}
	}
}

func TestForecastIntegratesQuadraticTrend(t *testing.T) {
	// y_t = t^2: second differences are the constant 2, so ARIMA(0,2,0)
	// forecasts must continue the parabola. Each integration pass has to
	// start from the last value of its own differencing level; seeding
	// every pass from the last original value doubles the forecast.
	n := 60
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(i) * float64(i)
	}
	series := timeseries.New(values)

	model := NewNonSeasonal(0, 2, 0)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fc, err := model.Predict(5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	for h := 0; h < 5; h++ {
		expected := float64(n+h) * float64(n+h)
		if math.Abs(fc.Point[h]-expected) > 1e-6 {
			t.Errorf("Step %d: expected %f, got %f", h, expected, fc.Point[h])
		}
	}
}

func TestForecastCapturesSeasonalPattern(t *testing.T) {
	// Strong deterministic weekly cycle; one-cycle-ahead forecasts should be
	// closer to the upcoming cycle than a flat mean forecast
	n := 140
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 60 + 20*math.Sin(2*math.Pi*float64(i)/7)
	}
	series := timeseries.New(values)

	model := New(0, 0, 0, 1, 1, 0, 7)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fc, err := model.Predict(7)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	sse := 0.0
	sseMean := 0.0
	for h := 0; h < 7; h++ {
		truth := 60 + 20*math.Sin(2*math.Pi*float64(n+h)/7)
		sse += (fc.Point[h] - truth) * (fc.Point[h] - truth)
		sseMean += (60 - truth) * (60 - truth)
	}
	t.Logf("Seasonal forecast SSE %.2f vs mean-forecast SSE %.2f", sse, sseMean)

	if sse >= sseMean {
		t.Error("Expected seasonal forecast to beat flat mean forecast")
	}
}
