package requester

import (
	"io"
	"strings"
)

// readBody reads r to EOF and rejoins its lines with lineSeparator. Any of
// "\n", "\r\n" or "\r" ends a line; a final terminator adds no empty line.
func readBody(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.Join(splitLines(string(data)), lineSeparator), nil
}

func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}
