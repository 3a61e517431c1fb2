package transform

import "strings"

// SplitLines splits text on "\n" and "\r\n".
// A "\r" not followed by "\n" is treated as ordinary content.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := range len(lines) - 1 {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// JoinLines joins lines with "\n".
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// mapLines applies fn to every line of text and rejoins the result.
func mapLines(text string, fn func(string) string) string {
	lines := SplitLines(text)
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return JoinLines(lines)
}
