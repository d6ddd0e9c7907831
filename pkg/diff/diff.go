// Package diff renders line-oriented unified diffs between a committed
// artifact and a freshly compiled one.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Unified compares expected and actual line by line and returns the diff
// text plus change counts. Identical inputs produce an empty string.
// Output longer than 10,000 lines is truncated with a marker.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) (string, Stats) {
	if bytes.Equal(expected, actual) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		buf   bytes.Buffer
		stats Stats
	)
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	if out := strings.Split(result, "\n"); len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
