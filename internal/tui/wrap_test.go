package tui

import (
	"strings"
	"testing"
)

func TestBuildTypingLineStyles(t *testing.T) {
	target := []rune("fox")
	input := []rune("fa")

	runes := buildTypingLine(target, input, nil)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("f") {
		t.Fatalf("expected correct style for matching rune")
	}
	if runes[1].s != incorrectStyle.Render("a") {
		t.Fatalf("expected incorrect style showing the typed rune")
	}
	if runes[2].s != pendingStyle.Underline(true).Render("x") {
		t.Fatalf("expected underlined pending style at the cursor")
	}
}

func TestBuildTypingLineOverrun(t *testing.T) {
	target := []rune("ab")
	input := []rune("abzz")

	runes := buildTypingLine(target, input, nil)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	for _, overrun := range runes[2:] {
		if overrun.s != incorrectStyle.Render("z") {
			t.Fatalf("expected overrun runes to render as mistakes")
		}
	}
}

func TestBuildTypingLineGhosts(t *testing.T) {
	runes := buildTypingLine([]rune("a"), nil, []string{"go", "fox"})
	// "a" + space + "go" + space + "fox"
	if len(runes) != 8 {
		t.Fatalf("expected 8 runes, got %d", len(runes))
	}
	if !runes[1].isSpace || !runes[4].isSpace {
		t.Fatalf("expected spaces between ghost words")
	}
	if runes[2].s != ghostStyle.Render("g") {
		t.Fatalf("expected ghost style for preview words")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	var runes []styledRune
	for _, word := range []string{"one", "two", "six"} {
		if len(runes) > 0 {
			runes = append(runes, styledRune{s: " ", width: 1, isSpace: true})
		}
		for _, r := range word {
			runes = append(runes, styledRune{s: string(r), width: 1})
		}
	}
	out := wrapStyledRunes(runes, 7)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "one" || lines[1] != "two six" {
		t.Fatalf("unexpected wrap: %q", lines)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := []styledRune{{s: "a", width: 1}, {s: "b", width: 1}}
	if out := wrapStyledRunes(runes, 0); out != "ab" {
		t.Fatalf("expected unwrapped output, got %q", out)
	}
}
