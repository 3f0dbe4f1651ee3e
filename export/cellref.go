package export

import (
	"strconv"
	"strings"
)

// ColumnLetter converts a zero-based column index to its spreadsheet letter
// using bijective base-26 numbering: 0→"A", 25→"Z", 26→"AA", 701→"ZZ",
// 702→"AAA". Total for every non-negative index; negative indexes return
// the empty string.
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}
	// 14 bijective base-26 digits cover the full 64-bit int range.
	var buf [16]byte
	i := len(buf)
	for index >= 0 {
		i--
		buf[i] = byte('A' + index%26)
		index = index/26 - 1
	}
	return string(buf[i:])
}

// cellRef builds an A1-style reference from a zero-based column index and a
// one-based row number.
func cellRef(col, row int) string {
	return ColumnLetter(col) + strconv.Itoa(row)
}

const maxFilenameLen = 50

// SanitizeFilename reduces a document title to a safe download filename
// stem: keeps letters, digits, hyphen and underscore, drops everything
// else, collapses whitespace runs to single underscores and truncates to 50
// characters. An empty result falls back to "actividad".
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteByte(' ')
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	if cleaned == "" {
		cleaned = "actividad"
	}
	runes := []rune(cleaned)
	if len(runes) > maxFilenameLen {
		cleaned = string(runes[:maxFilenameLen])
		cleaned = strings.Trim(cleaned, "_")
		if cleaned == "" {
			cleaned = "actividad"
		}
	}
	return cleaned
}
