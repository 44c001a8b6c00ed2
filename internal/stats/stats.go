// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/wpm/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Metrics computes WPM, CPM, and accuracy percentage for a test.
// Accuracy is 100 when no characters were tallied.
func Metrics(correct, incorrect int, elapsed time.Duration) (wpm, cpm, accuracy float64) {
	accuracy = 100
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den * 100
	}
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0, 0, accuracy
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	return wpm, cpm, accuracy
}

// RatingFor maps a WPM value to its rating label.
func RatingFor(wpm float64) model.Rating {
	switch {
	case wpm >= 60:
		return model.RatingExcellent
	case wpm >= 40:
		return model.RatingGood
	case wpm >= 20:
		return model.RatingKeepPracticing
	default:
		return model.RatingImprovement
	}
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
