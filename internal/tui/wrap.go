// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildTypingLine styles the active word against the typed buffer and
// appends the dimmed ghost preview. Typed positions are green on match and
// red on mismatch, untyped positions are pending, and overrun characters
// past the target length render red.
func buildTypingLine(target, input []rune, ghosts []string) []styledRune {
	out := make([]styledRune, 0, len(target)+len(input))
	for i, tr := range target {
		displayed := tr
		style := pendingStyle
		if i < len(input) {
			if input[i] == tr {
				style = correctStyle
			} else {
				displayed = input[i]
				style = incorrectStyle
			}
		} else if i == len(input) {
			style = pendingStyle.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: false,
		})
	}
	for _, r := range input[min(len(input), len(target)):] {
		out = append(out, styledRune{
			s:       incorrectStyle.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: false,
		})
	}
	for _, ghost := range ghosts {
		out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		for _, r := range ghost {
			out = append(out, styledRune{
				s:       ghostStyle.Render(string(r)),
				width:   runewidth.RuneWidth(r),
				isSpace: false,
			})
		}
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
