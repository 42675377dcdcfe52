// Package parse turns raw CSV text into header-keyed rows for the import
// pipeline. The scanner is total: every input produces some output, malformed
// quoting yields best-effort field boundaries rather than an error, so that
// downstream validation can report row-level problems with line numbers.
package parse

import (
	"strings"
)

// Row is one CSV data line, keyed by header name.
// Line is the 1-based line number in the source file (line 1 is the header).
type Row struct {
	Line   int
	Fields map[string]string
}

// Detect picks the field delimiter by counting ';' and ',' in the header
// line only. Semicolon wins ties. This is a heuristic: a free-text header
// containing commas can mis-detect, which is a documented limitation.
func Detect(header string) rune {
	semis := strings.Count(header, ";")
	commas := strings.Count(header, ",")
	if semis >= commas {
		return ';'
	}
	return ','
}

// Rows parses content into ordered rows. The first non-blank line is the
// header; its field names are trimmed and stripped of leading/trailing '*'
// (the "required column" marker in import templates). Blank lines are
// skipped. Rows shorter than the header fill missing columns with "".
func Rows(content string) []Row {
	lines := splitLines(content)
	if len(lines) == 0 {
		return []Row{}
	}

	headerIdx := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return []Row{}
	}

	delim := Detect(lines[headerIdx])
	header := splitFields(lines[headerIdx], delim)
	for i, h := range header {
		header[i] = strings.Trim(h, "*")
	}

	rows := make([]Row, 0, len(lines)-headerIdx-1)
	for i := headerIdx + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		values := splitFields(lines[i], delim)
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(values) {
				fields[h] = values[j]
			} else {
				fields[h] = ""
			}
		}
		rows = append(rows, Row{Line: i + 1, Fields: fields})
	}
	return rows
}

// splitLines splits on '\n' and strips a trailing '\r' from each line, so
// Windows-authored files do not leak carriage returns into the last field.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitFields scans one line into fields. A single pass with an inQuotes
// flag: a doubled quote inside a quoted field emits one literal quote, and
// the delimiter inside quotes is not a boundary. Fields are trimmed of
// surrounding whitespace after extraction.
func splitFields(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
