package transform

import "strings"

// SpacesToTabs converts, on each line, the first run of at least tabWidth
// spaces into floor(run/tabWidth) tabs. Spaces left over after the division
// are dropped. Later runs on the same line are left alone.
func SpacesToTabs(text string, tabWidth int) string {
	if tabWidth <= 0 {
		return text
	}
	return mapLines(text, func(line string) string {
		start, end := firstRun(line, ' ', tabWidth)
		if start < 0 {
			return line
		}
		tabs := strings.Repeat("\t", (end-start)/tabWidth)
		return line[:start] + tabs + line[end:]
	})
}

// TabsToSpaces converts, on each line, the first run of tabs into
// run*tabWidth spaces.
func TabsToSpaces(text string, tabWidth int) string {
	if tabWidth <= 0 {
		return text
	}
	return mapLines(text, func(line string) string {
		start, end := firstRun(line, '\t', 1)
		if start < 0 {
			return line
		}
		spaces := strings.Repeat(" ", (end-start)*tabWidth)
		return line[:start] + spaces + line[end:]
	})
}

// firstRun returns the byte bounds of the first maximal run of ch in line
// that is at least minLen long, or (-1, -1).
func firstRun(line string, ch byte, minLen int) (int, int) {
	i := 0
	for i < len(line) {
		if line[i] != ch {
			i++
			continue
		}
		start := i
		for i < len(line) && line[i] == ch {
			i++
		}
		if i-start >= minLen {
			return start, i
		}
	}
	return -1, -1
}
