// Package session implements the typing test state machine.
//
// A Session is owned by a single goroutine: the TUI event loop applies
// keystroke events and timer ticks one at a time, so no locking is needed
// and every render observes a fully applied state.
package session

import (
	"fmt"
	"time"
)

// DefaultDuration is the fixed length of a test.
const DefaultDuration = 60 * time.Second

// OverrunMargin is how many characters past the target word's length the
// active buffer accepts. Overrun characters render as mistakes but are
// never tallied.
const OverrunMargin = 5

// State enumerates the session lifecycle.
type State int

// Session states. Finished is terminal.
const (
	NotStarted State = iota
	Running
	Finished
)

// EventKind tags a keystroke event.
type EventKind int

// Keystroke event kinds.
const (
	KindRune EventKind = iota
	KindEnter
	KindSpace
	KindBackspace
	KindEscape
)

// Event is a single decoded keystroke.
type Event struct {
	Kind EventKind
	Rune rune
}

// Source yields the word stream and its ghost preview.
type Source interface {
	Next() string
	Upcoming(n int) []string
}

// Result is the immutable outcome of a finished session.
type Result struct {
	Elapsed        time.Duration
	WordsCompleted int
	TypedChars     int
	CorrectChars   int
	IncorrectChars int
	Samples        []int
	QuitRequested  bool
}

// Session tracks the state of one typing test.
type Session struct {
	source   Source
	duration time.Duration

	state  State
	target []rune
	input  []rune

	correctChars   int
	incorrectChars int
	wordsCompleted int
	typedChars     int
	elapsed        time.Duration
	quitRequested  bool

	// samples holds the cumulative correct-character count at each
	// elapsed second, for the progress curve in the final report.
	samples []int
}

// New creates a session over the given word source.
func New(source Source, duration time.Duration) *Session {
	s := &Session{
		source:   source,
		duration: duration,
		state:    NotStarted,
	}
	s.target = []rune(source.Next())
	return s
}

// Apply processes one keystroke event. Events after Finished are ignored.
func (s *Session) Apply(ev Event) {
	if s.state == Finished {
		return
	}
	switch ev.Kind {
	case KindEnter:
		if s.state == NotStarted {
			s.state = Running
		}
	case KindEscape:
		s.quitRequested = true
		s.finish()
	case KindRune:
		if s.state != Running {
			return
		}
		if len(s.input) >= len(s.target)+OverrunMargin {
			return
		}
		s.input = append(s.input, ev.Rune)
	case KindBackspace:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case KindSpace:
		if s.state != Running {
			return
		}
		s.finalizeWord()
	}
}

// Tick advances the elapsed time by one second and finishes the session
// when the duration is reached. Ticks outside Running are ignored.
func (s *Session) Tick() {
	if s.state != Running {
		return
	}
	s.elapsed += time.Second
	if s.elapsed > s.duration {
		s.elapsed = s.duration
	}
	s.samples = append(s.samples, s.correctChars)
	if s.elapsed >= s.duration {
		s.finish()
	}
}

func (s *Session) finalizeWord() {
	correct, incorrect := scoreWord(s.input, s.target)
	s.correctChars += correct
	s.incorrectChars += incorrect
	s.typedChars += len(s.input)
	s.wordsCompleted++
	s.assertCounters()
	s.input = s.input[:0]
	next := s.source.Next()
	if next == "" {
		// Exhausted source: nothing left to type.
		s.finish()
		return
	}
	s.target = []rune(next)
}

func (s *Session) finish() {
	if s.state == Finished {
		return
	}
	s.state = Finished
}

func (s *Session) assertCounters() {
	if s.correctChars < 0 || s.incorrectChars < 0 || s.wordsCompleted < 0 || s.typedChars < 0 {
		panic(fmt.Sprintf("session: negative counters (correct=%d incorrect=%d words=%d typed=%d)",
			s.correctChars, s.incorrectChars, s.wordsCompleted, s.typedChars))
	}
}

// scoreWord aligns the typed buffer against the target word. Matched
// characters (longest common subsequence, order preserved) count correct;
// target characters left unmatched count incorrect. An omitted letter costs
// one incorrect character, and overrun characters past the target length
// cost nothing.
func scoreWord(typed, target []rune) (correct, incorrect int) {
	matched := lcsLength(typed, target)
	return matched, len(target) - matched
}

func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Finished reports whether the session reached its terminal state.
func (s *Session) Finished() bool {
	return s.state == Finished
}

// QuitRequested reports whether the session ended via Escape.
func (s *Session) QuitRequested() bool {
	return s.quitRequested
}

// Target returns the active word.
func (s *Session) Target() []rune {
	return append([]rune(nil), s.target...)
}

// Input returns the typed-so-far buffer for the active word.
func (s *Session) Input() []rune {
	return append([]rune(nil), s.input...)
}

// Upcoming returns the next n ghost words.
func (s *Session) Upcoming(n int) []string {
	return s.source.Upcoming(n)
}

// Elapsed returns the elapsed test time.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Remaining returns the time left on the clock.
func (s *Session) Remaining() time.Duration {
	return s.duration - s.elapsed
}

// WordsCompleted returns the number of finalized words.
func (s *Session) WordsCompleted() int {
	return s.wordsCompleted
}

// CorrectChars returns the cumulative correct-character count.
func (s *Session) CorrectChars() int {
	return s.correctChars
}

// IncorrectChars returns the cumulative incorrect-character count.
func (s *Session) IncorrectChars() int {
	return s.incorrectChars
}

// Result snapshots the session outcome for reporting.
func (s *Session) Result() Result {
	return Result{
		Elapsed:        s.elapsed,
		WordsCompleted: s.wordsCompleted,
		TypedChars:     s.typedChars,
		CorrectChars:   s.correctChars,
		IncorrectChars: s.incorrectChars,
		Samples:        append([]int(nil), s.samples...),
		QuitRequested:  s.quitRequested,
	}
}
