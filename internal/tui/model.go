// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wpm/internal/model"
	"github.com/verte-zerg/wpm/internal/session"
	statsPkg "github.com/verte-zerg/wpm/internal/stats"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#36CFC9")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#36CFC9"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	ghostStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	sess  *session.Session
	cfg   model.Config
	timer timer.Model

	width  int
	height int
}

// NewModel constructs a typing TUI model over the given session.
func NewModel(sess *session.Session, cfg model.Config) *Model {
	return &Model{
		sess:  sess,
		cfg:   cfg,
		timer: timer.NewWithInterval(session.DefaultDuration, time.Second),
	}
}

// Init implements tea.Model. The countdown starts on Enter, not here.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It is the sole mutator of the session:
// keystrokes and timer ticks arrive as messages and are applied one at a
// time, so View always sees a consistent state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timer.TickMsg:
		if m.sess.Finished() {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		m.sess.Tick()
		if m.sess.Finished() {
			return m, tea.Quit
		}
		return m, cmd
	case timer.TimeoutMsg:
		for !m.sess.Finished() {
			m.sess.Tick()
		}
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.sess.Apply(session.Event{Kind: session.KindEscape})
		return m, tea.Quit
	case tea.KeyEnter:
		wasStarted := m.sess.State() != session.NotStarted
		m.sess.Apply(session.Event{Kind: session.KindEnter})
		if !wasStarted && m.sess.State() == session.Running {
			return m, m.timer.Init()
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Some terminals report the backspace key as delete.
		m.sess.Apply(session.Event{Kind: session.KindBackspace})
		return m, nil
	case tea.KeySpace:
		m.sess.Apply(session.Event{Kind: session.KindSpace})
		if m.sess.Finished() {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == ' ' {
				m.sess.Apply(session.Event{Kind: session.KindSpace})
				continue
			}
			m.sess.Apply(session.Event{Kind: session.KindRune, Rune: r})
		}
		if m.sess.Finished() {
			return m, tea.Quit
		}
		return m, nil
	default:
		// Unrecognized keys are no-ops.
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.sess.State() {
	case session.NotStarted:
		return m.viewIntro()
	case session.Running:
		return m.viewRunning()
	default:
		// The final report is printed to stdout after the program exits.
		return ""
	}
}

func (m *Model) viewIntro() string {
	lines := []string{
		titleStyle.Render("TERMINAL TYPING SPEED TEST"),
		"",
		"Type the word shown (green=correct, red=wrong).",
		"Ghost words show what's coming next.",
		"SPACE submits a word, BACKSPACE corrects it, ESC quits.",
		"",
		headerStyle.Render(fmt.Sprintf("Press ENTER to start the %.0f-second test.", session.DefaultDuration.Seconds())),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) viewRunning() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	line := buildTypingLine(m.sess.Target(), m.sess.Input(), m.sess.Upcoming(m.cfg.Ghost))
	b.WriteString(wrapStyledRunes(line, m.contentWidth()))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("SPACE=submit | BACKSPACE=delete | ESC=quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderHeader() string {
	wpm, cpm, _ := statsPkg.Metrics(m.sess.CorrectChars(), m.sess.IncorrectChars(), m.sess.Elapsed())
	stats := headerStyle.Render(fmt.Sprintf("WPM: %.1f | CPM: %.1f | Words: %d",
		wpm, cpm, m.sess.WordsCompleted()))
	clock := timeStyle.Render(fmt.Sprintf("Time: %.0fs", m.sess.Remaining().Seconds()))
	return stats + "\n" + clock
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}
