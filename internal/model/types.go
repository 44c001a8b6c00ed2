// Package model defines shared data structures.
package model

import "time"

// Config defines test settings.
type Config struct {
	Ghost    int
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// Rating labels a final WPM result.
type Rating string

// Rating labels, from best to worst.
const (
	RatingExcellent      Rating = "EXCELLENT!"
	RatingGood           Rating = "GOOD!"
	RatingKeepPracticing Rating = "KEEP PRACTICING!"
	RatingImprovement    Rating = "ROOM FOR IMPROVEMENT!"
)

// Report captures the final results of a typing test.
type Report struct {
	Elapsed        time.Duration
	WordsCompleted int
	TypedChars     int
	CorrectChars   int
	IncorrectChars int
	WPM            float64
	CPM            float64
	Accuracy       float64
	Rating         Rating
	Progress       []float64
}
