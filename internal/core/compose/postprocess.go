package compose

import (
	"regexp"
	"strings"
)

// =============================================================================
// Header Banner
// =============================================================================

const (
	headerWidth = 79
	headerTitle = "Generated on phpdocker.io"
)

// Header is the boxed banner prepended to every rendered compose file:
// a border line, the centered title, a border line, then a blank separator
// line before the YAML content.
var Header = buildHeader()

func buildHeader() string {
	border := strings.Repeat("#", headerWidth)
	pad := headerWidth - 2 - len(headerTitle)
	left := pad / 2
	right := pad - left
	title := "#" + strings.Repeat(" ", left) + headerTitle + strings.Repeat(" ", right) + "#"
	return border + "\n" + title + "\n" + border + "\n\n"
}

// =============================================================================
// Service Block Spacing
// =============================================================================

// serviceLinePattern matches the first line of a top-level service block:
// exactly four spaces of indent followed by a name character. Deeper lines
// are indented further and never match.
var serviceLinePattern = regexp.MustCompile(`(?m)^    [A-Za-z_]`)

// spaceServiceBlocks inserts a blank line before every service block except
// the first, separating sibling blocks visually without changing what the
// YAML means.
func spaceServiceBlocks(text string) string {
	locs := serviceLinePattern.FindAllStringIndex(text, -1)
	if len(locs) < 2 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(locs))

	last := 0
	for _, loc := range locs[1:] {
		b.WriteString(text[last:loc[0]])
		b.WriteByte('\n')
		last = loc[0]
	}
	b.WriteString(text[last:])

	return b.String()
}
