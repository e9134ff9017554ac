package frontmatter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/pelletier/go-toml/v2"
)

var tomlKeyRegex = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*=`)

// ParseTOML decodes a TOML front matter block. Key order follows the source.
func ParseTOML(lines []string) (*entity.Metadata, []error) {
	metadata := &entity.Metadata{}

	var decoded map[string]any

	if err := toml.Unmarshal([]byte(strings.Join(lines, "\n")), &decoded); err != nil {
		return metadata, []error{fmt.Errorf("%w: %w", ErrMalformedTOML, err)}
	}

	var warnings []error

	for _, key := range tomlKeyOrder(lines, decoded) {
		value, err := tomlValue(key, decoded[key])

		if err != nil {
			warnings = append(warnings, err)
		}

		metadata.Set(key, value)
	}

	return metadata, warnings
}

// tomlKeyOrder lists top level keys in the order they appear in the block.
// Keys that cannot be located (tables, quoted keys) follow in sorted order.
func tomlKeyOrder(lines []string, decoded map[string]any) []string {
	order := make([]string, 0, len(decoded))
	seen := make(map[string]bool, len(decoded))

	for _, line := range lines {
		m := tomlKeyRegex.FindStringSubmatch(line)

		if m == nil {
			continue
		}

		if _, ok := decoded[m[1]]; ok && !seen[m[1]] {
			seen[m[1]] = true
			order = append(order, m[1])
		}
	}

	var rest []string

	for key := range decoded {
		if !seen[key] {
			rest = append(rest, key)
		}
	}

	slices.Sort(rest)

	return append(order, rest...)
}

func tomlValue(key string, v any) (entity.Value, error) {
	switch val := v.(type) {
	case string:
		if key == entity.KeyDate {
			return coerceDate(val)
		}
		return entity.StringValue(val), nil
	case toml.LocalDateTime:
		return entity.DateValue(val.AsTime(time.UTC)), nil
	case toml.LocalDate:
		return entity.DateValue(val.AsTime(time.UTC)), nil
	case time.Time:
		return entity.DateValue(val), nil
	case []any:
		items := make([]string, len(val))

		for i, item := range val {
			items[i] = fmt.Sprint(item)
		}

		return entity.ListValue(items), nil
	default:
		return entity.StringValue(fmt.Sprint(val)), nil
	}
}
