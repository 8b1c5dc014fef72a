package fundsheet

import "strings"

// Delimiter is the field separator of the sheet exports this package reads.
const Delimiter = ','

// SplitRow splits one line of delimited text into trimmed fields.
//
// A delimiter inside a quoted span does not split the field, and a doubled
// quote inside a quoted span yields one literal quote. Malformed quoting is
// not an error: the rest of the line is taken literally.
func SplitRow(line string) []string {
	var fields []string
	var b strings.Builder
	inQuote := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote && r == '"':
			if i+1 < len(runes) && runes[i+1] == '"' {
				// escaped quote: one literal quote, span continues
				b.WriteRune('"')
				i++
			} else {
				inQuote = false
			}
		case r == '"':
			inQuote = true
		case r == Delimiter && !inQuote:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// splitLines cuts raw sheet text into lines, tolerating CRLF endings and
// dropping trailing blank lines.
func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// tokenize applies SplitRow to every line of the sheet text.
func tokenize(text string) [][]string {
	lines := splitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, SplitRow(line))
	}
	return rows
}

// cleanCell trims whitespace and any surrounding quote characters that
// survived tokenization (some exports double-wrap code cells).
func cleanCell(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
