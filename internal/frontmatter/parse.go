package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/nDmitry/podfeed/internal/entity"
)

const keyValueSeparator = ": "

// Document is a post split into decoded metadata and the markdown body.
type Document struct {
	Metadata *entity.Metadata
	Body     string
}

// Parse detects the front matter format from the first delimiter line and
// decodes it. Lines before that delimiter belong to the body.
// Problems that do not prevent parsing are returned as warnings.
func Parse(text string) (*Document, []error) {
	lines := SplitLines(text)

	if len(lines) == 0 {
		return &Document{Metadata: &entity.Metadata{}}, nil
	}

	var (
		meta, body []string
		metadata   *entity.Metadata
		warnings   []error
	)

	switch delimiter(lines) {
	case LinesDelimiter:
		meta, body = Split(lines, LinesDelimiter)
		metadata, warnings = ParseLines(meta)
	case TOMLDelimiter:
		meta, body = Split(lines, TOMLDelimiter)
		metadata, warnings = ParseTOML(meta)
	default:
		metadata, body = &entity.Metadata{}, lines
	}

	return &Document{
		Metadata: metadata,
		Body:     strings.Join(body, "\n"),
	}, warnings
}

// delimiter returns the first line that is a known front matter delimiter.
func delimiter(lines []string) string {
	for _, line := range lines {
		if line == LinesDelimiter || line == TOMLDelimiter {
			return line
		}
	}

	return ""
}

// ParseLines decodes "key: value" lines. Malformed lines are reported and
// skipped.
func ParseLines(lines []string) (*entity.Metadata, []error) {
	metadata := &entity.Metadata{}

	var warnings []error

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		parts := strings.SplitN(line, keyValueSeparator, 2)

		if len(parts) != 2 {
			warnings = append(warnings, fmt.Errorf("%w: %q", ErrMalformedLine, line))
			continue
		}

		key, raw := parts[0], parts[1]

		value, err := coerce(key, raw)

		if err != nil {
			warnings = append(warnings, err)
		}

		metadata.Set(key, value)
	}

	return metadata, warnings
}

// coerce turns a raw scalar into a typed value. A date that cannot be parsed
// is kept as a string and reported.
func coerce(key, raw string) (entity.Value, error) {
	unquoted, quoted := entity.Unquote(raw)

	if key == entity.KeyDate {
		return coerceDate(unquoted)
	}

	if quoted {
		return entity.StringValue(unquoted), nil
	}

	if key == entity.KeyCategories {
		return entity.ListValue(strings.Fields(raw)), nil
	}

	return entity.StringValue(raw), nil
}

func coerceDate(raw string) (entity.Value, error) {
	t, err := ParseDate(raw)

	if err != nil {
		return entity.StringValue(raw), err
	}

	return entity.DateValue(t), nil
}

// ParseDate parses a date front matter value in entity.DateLayout.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, raw)

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
	}

	return t, nil
}
