package clean

import (
	"regexp"
	"strings"
)

const (
	openLink  = "[["
	closeLink = "]]"
)

// prefixPattern matches a link target starting with any of the namespace
// prefixes, case-insensitively.
func prefixPattern(prefixes []string) *regexp.Regexp {
	quoted := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}

	return regexp.MustCompile(`(?i)^\s*:?\s*(?:` + strings.Join(quoted, "|") + `)\s*:`)
}

// externalLink matches a bracketed external link with an optional label.
var externalLink = regexp.MustCompile(`\[(?:https?:|ftp:)?//[^\s\]]+(?:[ \t]+([^\]\n]*))?\]`)

// links rewrites every top-level wiki link in text.
func (c *Cleaner) links(text string) string {
	if !strings.Contains(text, openLink) {
		return text
	}

	var sb strings.Builder

	sb.Grow(len(text))

	i := 0
	for i < len(text) {
		start := strings.Index(text[i:], openLink)
		if start < 0 {
			break
		}

		start += i

		end := matchLink(text, start)
		if end < 0 {
			sb.WriteString(text[i : start+len(openLink)])
			i = start + len(openLink)

			continue
		}

		sb.WriteString(text[i:start])
		sb.WriteString(c.link(text[start+len(openLink) : end-len(closeLink)]))
		i = end
	}

	sb.WriteString(text[i:])

	return sb.String()
}

// link returns the replacement text for a link body (the text between the
// brackets).
func (c *Cleaner) link(body string) string {
	target, display, piped := strings.Cut(body, "|")

	if c.media.MatchString(target) {
		return ""
	}

	text := strings.TrimSpace(target)
	if piped {
		text = c.links(display)
	}

	if c.category.MatchString(target) {
		text = c.category.ReplaceAllString(text, "")
	}

	return strings.TrimPrefix(text, ":")
}

// matchLink returns the offset just past the brackets closing the link
// opened at start, or -1.
func matchLink(text string, start int) int {
	depth := 0

	for i := start; i+1 < len(text); {
		switch text[i : i+2] {
		case openLink:
			depth++
			i += 2

		case closeLink:
			depth--
			i += 2

			if depth == 0 {
				return i
			}

		default:
			i++
		}
	}

	return -1
}

// externalLinks replaces bracketed external links with their label.
func externalLinks(text string) string {
	return externalLink.ReplaceAllString(text, "$1")
}
