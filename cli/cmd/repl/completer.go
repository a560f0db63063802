package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/wtmpl/val"
)

// commandPrefix starts a REPL command.
const commandPrefix = ":"

// commands are the available REPL commands.
var commands = []string{":help", ":rules", ":clear", ":quit"}

// maxCandidates bounds the completion bar.
const maxCandidates = 8

// candidates returns the completion source for input: commands when input
// starts with the command prefix, otherwise the shape of every rule.
func candidates(input string, rules []val.Rule) []string {
	if strings.HasPrefix(input, commandPrefix) {
		return commands
	}

	shapes := make([]string, 0, len(rules))
	for _, r := range rules {
		shapes = append(shapes, r.Shape)
	}

	return shapes
}

// complete returns the best fuzzy matches of input among cands.
func complete(input string, cands []string) fuzzy.Matches {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	matches := fuzzy.Find(input, cands)
	if len(matches) > maxCandidates {
		matches = matches[:maxCandidates]
	}

	return matches
}

// renderCandidateBar renders matches on one line, highlighting selected and
// the matched characters of each candidate, truncated to width.
func renderCandidateBar(matches fuzzy.Matches, selected, width int) string {
	var (
		b    strings.Builder
		used int
	)

	for i, m := range matches {
		cell := highlight(m)
		if i == selected {
			cell = selectedStyle.Render(m.Str)
		}

		cellWidth := lipgloss.Width(cell) + 1
		if width > 0 && used+cellWidth > width {
			b.WriteString(hintStyle.Render("…"))

			break
		}

		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(cell)
		used += cellWidth
	}

	return b.String()
}

// highlight styles the characters of a match that the pattern hit.
func highlight(m fuzzy.Match) string {
	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		hit[i] = true
	}

	var b strings.Builder

	for i, r := range m.Str {
		s := string(r)
		if hit[i] {
			b.WriteString(matchStyle.Render(s))
		} else {
			b.WriteString(suggestionStyle.Render(s))
		}
	}

	return b.String()
}
