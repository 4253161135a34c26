package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNewSeries(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := New(values)

	if series.Len() != 5 {
		t.Errorf("Expected length 5, got %d", series.Len())
	}
	if len(series.Timestamps) != 5 {
		t.Errorf("Expected 5 timestamps, got %d", len(series.Timestamps))
	}
}

func TestNewWithTimestamps(t *testing.T) {
	timestamps := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	series, err := NewWithTimestamps(timestamps, []float64{10, 20})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if series.Len() != 2 {
		t.Errorf("Expected length 2, got %d", series.Len())
	}

	_, err = NewWithTimestamps(timestamps, []float64{10})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestMeanVarianceStd(t *testing.T) {
	series := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if math.Abs(series.Mean()-5.0) > 1e-9 {
		t.Errorf("Expected mean 5.0, got %f", series.Mean())
	}

	// Sample variance of the classic example set is 32/7
	expected := 32.0 / 7.0
	if math.Abs(series.Variance()-expected) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", expected, series.Variance())
	}
	if math.Abs(series.Std()-math.Sqrt(expected)) > 1e-9 {
		t.Errorf("Expected std %f, got %f", math.Sqrt(expected), series.Std())
	}
}

func TestMinMax(t *testing.T) {
	series := New([]float64{3, 1, 4, 1, 5, 9, 2, 6})

	if series.Min() != 1 {
		t.Errorf("Expected min 1, got %f", series.Min())
	}
	if series.Max() != 9 {
		t.Errorf("Expected max 9, got %f", series.Max())
	}
}

func TestDiff(t *testing.T) {
	series := New([]float64{1, 3, 6, 10})
	diff := series.Diff()

	expected := []float64{2, 3, 4}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if diff.Values[i] != v {
			t.Errorf("Expected diff[%d]=%f, got %f", i, v, diff.Values[i])
		}
	}
}

func TestSeasonalDiff(t *testing.T) {
	// Two full weekly cycles plus one day
	values := []float64{10, 20, 30, 40, 50, 60, 70, 15, 25, 35, 45, 55, 65, 75, 20}
	series := New(values)
	sdiff := series.SeasonalDiff(7)

	if sdiff.Len() != 8 {
		t.Fatalf("Expected 8 values, got %d", sdiff.Len())
	}
	for i := 0; i < sdiff.Len(); i++ {
		if sdiff.Values[i] != 5 {
			t.Errorf("Expected sdiff[%d]=5, got %f", i, sdiff.Values[i])
		}
	}
}

func TestDiffEmptyWhenTooShort(t *testing.T) {
	series := New([]float64{1})
	if series.Diff().Len() != 0 {
		t.Error("Expected empty diff for single-value series")
	}
	if series.SeasonalDiff(7).Len() != 0 {
		t.Error("Expected empty seasonal diff for short series")
	}
}

func TestSlice(t *testing.T) {
	series := New([]float64{0, 1, 2, 3, 4, 5})
	sl := series.Slice(2, 4)

	if sl.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", sl.Len())
	}
	if sl.Values[0] != 2 || sl.Values[1] != 3 {
		t.Errorf("Unexpected slice values: %v", sl.Values)
	}

	// Out-of-bounds indices are clamped
	if series.Slice(-5, 100).Len() != 6 {
		t.Error("Expected clamped slice to span full series")
	}
	if series.Slice(4, 2).Len() != 0 {
		t.Error("Expected empty slice for inverted range")
	}
}

func TestSplitAt(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	train, holdout := series.SplitAt(7)

	if train.Len() != 7 {
		t.Errorf("Expected train length 7, got %d", train.Len())
	}
	if holdout.Len() != 3 {
		t.Errorf("Expected holdout length 3, got %d", holdout.Len())
	}
	if holdout.Values[0] != 8 {
		t.Errorf("Expected holdout to start at 8, got %f", holdout.Values[0])
	}
}

func TestCopyIsIndependent(t *testing.T) {
	series := New([]float64{1, 2, 3})
	cp := series.Copy()
	cp.Values[0] = 99

	if series.Values[0] != 1 {
		t.Error("Copy should not share backing array with original")
	}
}

func TestMovingAverage(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})
	ma := series.MovingAverage(3)

	expected := []float64{2, 3, 4}
	if ma.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), ma.Len())
	}
	for i, v := range expected {
		if math.Abs(ma.Values[i]-v) > 1e-9 {
			t.Errorf("Expected ma[%d]=%f, got %f", i, v, ma.Values[i])
		}
	}
}
