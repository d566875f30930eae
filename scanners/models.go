package scanners

import "strings"

// Line is one candidate password read from an audited source.
type Line struct {
	Path       string
	LineNumber int
	Content    string
}

// Redacted masks everything but the first character of the line so that
// reports can point at a password without revealing it.
func (l Line) Redacted() string {
	runes := []rune(l.Content)
	if len(runes) <= 1 {
		return strings.Repeat("*", len(runes))
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
