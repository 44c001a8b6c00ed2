package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wpm/internal/model"
	"github.com/verte-zerg/wpm/internal/session"
)

func TestBuildReport(t *testing.T) {
	res := session.Result{
		Elapsed:        10 * time.Second,
		WordsCompleted: 2,
		TypedChars:     9,
		CorrectChars:   9,
		IncorrectChars: 1,
		Samples:        []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		QuitRequested:  true,
	}
	report := BuildReport(res)
	if report.WordsCompleted != 2 || report.TypedChars != 9 {
		t.Fatalf("unexpected counters: %+v", report)
	}
	// 9 correct chars over 10 seconds: (9/5)/(1/6) = 10.8 WPM.
	if report.WPM < 10.79 || report.WPM > 10.81 {
		t.Fatalf("wpm = %f, want 10.8", report.WPM)
	}
	if report.Accuracy < 89.99 || report.Accuracy > 90.01 {
		t.Fatalf("accuracy = %f, want 90", report.Accuracy)
	}
	if report.Rating != model.RatingImprovement {
		t.Fatalf("rating = %q", report.Rating)
	}
	if len(report.Progress) != 10 {
		t.Fatalf("progress length = %d, want 10", len(report.Progress))
	}
}

func TestBuildReportNoInput(t *testing.T) {
	report := BuildReport(session.Result{Elapsed: time.Minute})
	if report.WPM != 0 || report.CPM != 0 {
		t.Fatalf("expected zero rates, got %+v", report)
	}
	if report.Accuracy != 100 {
		t.Fatalf("accuracy = %f, want 100", report.Accuracy)
	}
}

func TestWriteReport(t *testing.T) {
	report := model.Report{
		Elapsed:        time.Minute,
		WordsCompleted: 42,
		TypedChars:     210,
		CorrectChars:   200,
		IncorrectChars: 10,
		WPM:            40,
		CPM:            200,
		Accuracy:       95.24,
		Rating:         model.RatingGood,
		Progress:       []float64{10, 20, 30},
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, report); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"TYPING TEST RESULTS",
		"Time Taken: 60 seconds",
		"Words Typed: 42",
		"Characters Typed: 210",
		"Words Per Minute (WPM): 40.00",
		"Characters Per Minute (CPM): 200.00",
		"Accuracy: 95.24%",
		"Progress:",
		"GOOD!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
