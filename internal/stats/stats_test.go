package stats

import (
	"math"
	"testing"
	"time"

	"github.com/verte-zerg/wpm/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMetrics(t *testing.T) {
	wpm, cpm, accuracy := Metrics(100, 0, time.Minute)
	if !almostEqual(wpm, 20) {
		t.Fatalf("wpm = %f, want 20", wpm)
	}
	if !almostEqual(cpm, 100) {
		t.Fatalf("cpm = %f, want 100", cpm)
	}
	if !almostEqual(accuracy, 100) {
		t.Fatalf("accuracy = %f, want 100", accuracy)
	}
}

func TestMetricsWPMIsCPMOverFive(t *testing.T) {
	wpm, cpm, _ := Metrics(37, 4, 48*time.Second)
	if !almostEqual(wpm, cpm/5) {
		t.Fatalf("wpm = %f, cpm/5 = %f", wpm, cpm/5)
	}
	if wpm < 0 || cpm < 0 {
		t.Fatalf("negative metrics: wpm=%f cpm=%f", wpm, cpm)
	}
}

func TestMetricsAccuracy(t *testing.T) {
	_, _, accuracy := Metrics(9, 1, 10*time.Second)
	if !almostEqual(accuracy, 90) {
		t.Fatalf("accuracy = %f, want 90", accuracy)
	}
}

func TestMetricsZeroDenominatorAccuracy(t *testing.T) {
	_, _, accuracy := Metrics(0, 0, time.Minute)
	if !almostEqual(accuracy, 100) {
		t.Fatalf("accuracy = %f, want 100 for zero denominator", accuracy)
	}
}

func TestMetricsZeroElapsed(t *testing.T) {
	wpm, cpm, accuracy := Metrics(10, 0, 0)
	if wpm != 0 || cpm != 0 {
		t.Fatalf("expected zero rates for zero elapsed, got wpm=%f cpm=%f", wpm, cpm)
	}
	if !almostEqual(accuracy, 100) {
		t.Fatalf("accuracy = %f, want 100", accuracy)
	}
}

func TestRatingThresholds(t *testing.T) {
	cases := []struct {
		wpm  float64
		want model.Rating
	}{
		{75, model.RatingExcellent},
		{60, model.RatingExcellent},
		{59.9, model.RatingGood},
		{40, model.RatingGood},
		{39.9, model.RatingKeepPracticing},
		{20, model.RatingKeepPracticing},
		{19.9, model.RatingImprovement},
		{0, model.RatingImprovement},
	}
	for _, tc := range cases {
		if got := RatingFor(tc.wpm); got != tc.want {
			t.Fatalf("RatingFor(%f) = %q, want %q", tc.wpm, got, tc.want)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if !almostEqual(out[i], want[i]) {
			t.Fatalf("moving average[%d] = %f, want %f", i, out[i], want[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10})
	if len(out) != 3 {
		t.Fatalf("sparkline length = %d, want 3", len(out))
	}
	if out[0] != ' ' || out[2] != '@' {
		t.Fatalf("unexpected sparkline %q", out)
	}
	flat := Sparkline([]float64{3, 3, 3})
	if len(flat) != 3 {
		t.Fatalf("flat sparkline length = %d", len(flat))
	}
}
