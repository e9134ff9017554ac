// Package frontmatter splits posts into a metadata block and a markdown body
// and decodes the metadata block into typed values.
package frontmatter

import (
	"errors"
	"strings"
)

const (
	// LinesDelimiter opens and closes a block of "key: value" lines.
	LinesDelimiter = "---"
	// TOMLDelimiter opens and closes a TOML block.
	TOMLDelimiter = "+++"
)

var (
	ErrMalformedLine = errors.New("malformed metadata line")
	ErrMalformedDate = errors.New("malformed date")
	ErrMalformedTOML = errors.New("malformed TOML block")
)

// Split routes lines between the first and the second delimiter line to
// meta and everything else to body. Delimiter lines are dropped. With fewer
// than two delimiter lines the whole input is body.
func Split(lines []string, delimiter string) (meta, body []string) {
	count := 0

	for _, line := range lines {
		if line == delimiter {
			count++
			if count == 2 {
				break
			}
		}
	}

	if count < 2 {
		return nil, append([]string(nil), lines...)
	}

	seen := 0

	for _, line := range lines {
		if line == delimiter {
			seen++
			continue
		}

		if seen == 1 {
			meta = append(meta, line)
		} else {
			body = append(body, line)
		}
	}

	return meta, body
}

// SplitLines breaks text into lines the way the posts are stored:
// "\n" separated with an optional "\r" before it.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	// A trailing newline does not start a new line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
