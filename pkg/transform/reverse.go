package transform

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ReverseUnit selects what Reverse treats as a single character.
type ReverseUnit string

const (
	// ReverseCodePoint reverses Unicode code points.
	ReverseCodePoint ReverseUnit = "codepoint"

	// ReverseGrapheme reverses grapheme clusters, keeping combining marks
	// and multi-rune emoji attached to their base character.
	ReverseGrapheme ReverseUnit = "grapheme"
)

// IsValid reports whether u is a known unit.
func (u ReverseUnit) IsValid() bool {
	switch u {
	case ReverseCodePoint, ReverseGrapheme:
		return true
	default:
		return false
	}
}

// Reverse reverses the code points of each line of text independently.
// Line boundaries are preserved; "\r\n" separators become "\n".
func Reverse(text string) string {
	return mapLines(text, reverseRunes)
}

// ReverseGraphemes is Reverse with grapheme clusters as the unit.
func ReverseGraphemes(text string) string {
	return mapLines(text, reverseClusters)
}

// ReverseBy dispatches to Reverse or ReverseGraphemes.
// Unknown units fall back to code points.
func ReverseBy(unit ReverseUnit, text string) string {
	if unit == ReverseGrapheme {
		return ReverseGraphemes(text)
	}
	return Reverse(text)
}

func reverseRunes(line string) string {
	runes := []rune(line)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func reverseClusters(line string) string {
	if line == "" {
		return line
	}

	var clusters []string
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		clusters = append(clusters, cluster)
	}

	var builder strings.Builder
	builder.Grow(len(line))
	for i := len(clusters) - 1; i >= 0; i-- {
		builder.WriteString(clusters[i])
	}
	return builder.String()
}
