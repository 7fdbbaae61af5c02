package parse

import "strings"

// splitChained splits one input line into command fragments at commas and at
// the connector words "and" and "then". A separator only counts when it sits
// outside quoted text, judged by whether an even number of double quotes
// precedes it. A line with no live separator comes back whole.
func splitChained(line string) []string {
	var (
		fragments []string
		start     int
		quotes    int
	)

	flush := func(end, next int) {
		fragments = append(fragments, line[start:end])
		start = next
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '"' {
			quotes++
			continue
		}
		if quotes%2 != 0 {
			continue
		}
		if c == ',' {
			flush(i, i+1)
			continue
		}
		if w := connectorAt(line, i); w > 0 {
			flush(i, i+w)
			i += w - 1
		}
	}
	fragments = append(fragments, line[start:])

	var out []string
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// connectorAt reports the length of a connector word ("and" or "then")
// starting at i, or 0. The word must stand alone: preceded and followed by
// whitespace.
func connectorAt(line string, i int) int {
	if i == 0 || line[i-1] != ' ' {
		return 0
	}
	for _, w := range []string{"and", "then"} {
		end := i + len(w)
		if end < len(line) && line[end] == ' ' &&
			strings.EqualFold(line[i:end], w) {
			return len(w)
		}
	}
	return 0
}
