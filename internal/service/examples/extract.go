package examples

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var markerRe = regexp.MustCompile(`^\d+\.`)

// Extract parses a numbered block of model text into examples.
//
// A line starting with "N." opens a new sentence. The next unnumbered line,
// if any, is that sentence's translation. A sentence followed directly by
// another numbered line, or by the end of input, is kept without a
// translation. Unnumbered lines with no open sentence are dropped.
func Extract(raw string) []domain.GeneratedExample {
	out := make([]domain.GeneratedExample, 0, 3)
	pending := ""

	flush := func() {
		if pending != "" {
			out = append(out, domain.GeneratedExample{En: pending})
			pending = ""
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if markerRe.MatchString(line) {
			flush()
			pending = strings.TrimSpace(markerRe.ReplaceAllString(line, ""))
			continue
		}

		if pending == "" {
			continue
		}
		ja := line
		out = append(out, domain.GeneratedExample{En: pending, Ja: &ja})
		pending = ""
	}
	flush()

	return out
}

// Render writes examples in the numbered format Extract reads.
func Render(examples []domain.GeneratedExample) string {
	var b strings.Builder
	for i, ex := range examples {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(ex.En)
		if ex.Ja != nil {
			b.WriteString("\n   ")
			b.WriteString(*ex.Ja)
		}
	}
	return b.String()
}
