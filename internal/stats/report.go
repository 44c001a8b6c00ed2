// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/wpm/internal/model"
	"github.com/verte-zerg/wpm/internal/session"
)

// progressWindow smooths the per-second WPM curve in the final report.
const progressWindow = 5

// BuildReport derives the final report from a finished session.
func BuildReport(res session.Result) model.Report {
	wpm, cpm, accuracy := Metrics(res.CorrectChars, res.IncorrectChars, res.Elapsed)
	return model.Report{
		Elapsed:        res.Elapsed,
		WordsCompleted: res.WordsCompleted,
		TypedChars:     res.TypedChars,
		CorrectChars:   res.CorrectChars,
		IncorrectChars: res.IncorrectChars,
		WPM:            wpm,
		CPM:            cpm,
		Accuracy:       accuracy,
		Rating:         RatingFor(wpm),
		Progress:       progressCurve(res.Samples),
	}
}

// progressCurve converts cumulative correct-character samples (one per
// elapsed second) into a smoothed WPM-over-time series.
func progressCurve(samples []int) []float64 {
	if len(samples) == 0 {
		return nil
	}
	curve := make([]float64, len(samples))
	for i, correct := range samples {
		minutes := (time.Duration(i+1) * time.Second).Minutes()
		curve[i] = (float64(correct) / 5.0) / minutes
	}
	return MovingAverage(curve, progressWindow)
}

// WriteReport prints the final results as plain text.
func WriteReport(w io.Writer, r model.Report) error {
	lines := []string{
		"",
		"TYPING TEST RESULTS",
		"",
		fmt.Sprintf("Time Taken: %.0f seconds", r.Elapsed.Seconds()),
		fmt.Sprintf("Words Typed: %d", r.WordsCompleted),
		fmt.Sprintf("Characters Typed: %d", r.TypedChars),
		"",
		fmt.Sprintf("Words Per Minute (WPM): %.2f", r.WPM),
		fmt.Sprintf("Characters Per Minute (CPM): %.2f", r.CPM),
		fmt.Sprintf("Accuracy: %.2f%%", r.Accuracy),
	}
	if len(r.Progress) > 1 {
		lines = append(lines, "", fmt.Sprintf("Progress: %s", Sparkline(r.Progress)))
	}
	lines = append(lines, "", string(r.Rating), "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
