package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/valyala/fasttemplate"
)

const (
	HeadFile = "head.xml"
	FootFile = "foot.xml"
)

// ErrUnknownPlaceholder is returned for a template using a field it is never given
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

var (
	HeadPlaceholders = []string{"title", "url", "subtitle", "description", "image"}
	ItemPlaceholders = []string{"title", "content", "text", "filename", "filesize", "url", "date", "image"}
)

// Template substitutes {name} placeholders from a fixed set of names.
type Template struct {
	name string
	tpl  *fasttemplate.Template
}

// NewTemplate parses text and checks that every placeholder is allowed.
func NewTemplate(name, text string, allowed []string) (*Template, error) {
	tpl, err := fasttemplate.NewTemplate(text, "{", "}")

	if err != nil {
		return nil, fmt.Errorf("could not parse template %s: %w", name, err)
	}

	var unknown []string

	tpl.ExecuteFuncString(func(_ io.Writer, tag string) (int, error) {
		if !slices.Contains(allowed, tag) && !slices.Contains(unknown, tag) {
			unknown = append(unknown, tag)
		}
		return 0, nil
	})

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w in template %s: %v", ErrUnknownPlaceholder, name, unknown)
	}

	return &Template{name: name, tpl: tpl}, nil
}

// Render substitutes values, placeholders missing from values become empty.
func (t *Template) Render(values map[string]string) string {
	m := make(map[string]any, len(values))

	for k, v := range values {
		m[k] = v
	}

	return t.tpl.ExecuteString(m)
}

// Templates is the set of templates of one feed.
type Templates struct {
	Head *Template
	Item *Template
	// Foot is written verbatim.
	Foot string
}

// LoadTemplates reads head.xml, <feedName>.xml and foot.xml from dir.
func LoadTemplates(dir, feedName string) (*Templates, error) {
	head, err := readTemplate(dir, HeadFile, HeadPlaceholders)

	if err != nil {
		return nil, err
	}

	item, err := readTemplate(dir, feedName+".xml", ItemPlaceholders)

	if err != nil {
		return nil, err
	}

	foot, err := os.ReadFile(filepath.Join(dir, FootFile))

	if err != nil {
		return nil, fmt.Errorf("could not read template: %w", err)
	}

	return &Templates{Head: head, Item: item, Foot: string(foot)}, nil
}

func readTemplate(dir, file string, allowed []string) (*Template, error) {
	text, err := os.ReadFile(filepath.Join(dir, file))

	if err != nil {
		return nil, fmt.Errorf("could not read template: %w", err)
	}

	return NewTemplate(file, string(text), allowed)
}
