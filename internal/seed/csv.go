package seed

import (
	"fmt"
	"strings"
)

// row is one non-blank data line. Index counts every line after the header,
// blank ones included.
type row struct {
	Index  int
	Fields []string
}

// parseRows splits content into trimmed comma-separated rows. Quoting is not
// recognised, so a field can never contain a comma. Any row with fewer than
// minCols fields fails the whole file.
func parseRows(content string, minCols int) (rows []row, blanks int, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) <= 1 {
		return nil, 0, nil
	}
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < minCols {
			return nil, blanks, fmt.Errorf("line %d: want %d columns, got %d", i+2, minCols, len(fields))
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		rows = append(rows, row{Index: i, Fields: fields})
	}
	return rows, blanks, nil
}

// leadingInt parses the optional sign and digits at the start of s, ignoring
// whatever follows. ok is false when s has no leading digits.
func leadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		ok = true
	}
	if neg {
		n = -n
	}
	return n, ok
}

// intOr returns the leading integer of s, or def when there is none or it is zero.
func intOr(s string, def int) int {
	if n, ok := leadingInt(s); ok && n != 0 {
		return n
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
