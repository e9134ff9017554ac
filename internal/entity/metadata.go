package entity

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted layout of the date front matter key.
// Parsed dates are written back in the same layout.
const DateLayout = "2006-01-02T15:04:05"

// ValueKind tells which field of a Value is meaningful.
type ValueKind int

const (
	KindString ValueKind = iota
	KindList
	KindDate
)

// Value is a typed front matter value.
type Value struct {
	Kind ValueKind
	Str  string
	List []string
	Date time.Time
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func ListValue(items []string) Value {
	return Value{Kind: KindList, List: items}
}

func DateValue(t time.Time) Value {
	return Value{Kind: KindDate, Date: t}
}

// Literal renders the value in its canonical front matter form:
// quoted strings, bracketed lists of quoted strings and unquoted timestamps.
func (v Value) Literal() string {
	switch v.Kind {
	case KindList:
		quoted := make([]string, len(v.List))

		for i, item := range v.List {
			quoted[i] = quote(item)
		}

		return "[" + strings.Join(quoted, ", ") + "]"
	case KindDate:
		return v.Date.Format(DateLayout)
	default:
		return quote(v.Str)
	}
}

// Text returns the plain textual form of the value without quoting.
func (v Value) Text() string {
	switch v.Kind {
	case KindList:
		return strings.Join(v.List, " ")
	case KindDate:
		return v.Date.Format(DateLayout)
	default:
		return v.Str
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Field is a single key/value pair of Metadata.
type Field struct {
	Key   string
	Value Value
}

// Metadata is an ordered mapping of front matter keys to values.
// The zero value is ready to use.
type Metadata struct {
	fields []Field
	index  map[string]int
}

// Set stores a value under key. A repeated key keeps the position of its
// first occurrence and takes the latest value.
func (m *Metadata) Set(key string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	if i, ok := m.index[key]; ok {
		m.fields[i].Value = v
		return
	}

	m.index[key] = len(m.fields)
	m.fields = append(m.fields, Field{Key: key, Value: v})
}

func (m *Metadata) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	i, ok := m.index[key]

	if !ok {
		return Value{}, false
	}

	return m.fields[i].Value, true
}

// String returns the textual value of key or an empty string.
func (m *Metadata) String(key string) string {
	v, ok := m.Get(key)

	if !ok {
		return ""
	}

	return v.Text()
}

// Tags returns the list stored under key. A plain string counts as a
// single tag.
func (m *Metadata) Tags(key string) []string {
	v, ok := m.Get(key)

	if !ok {
		return nil
	}

	switch v.Kind {
	case KindList:
		return v.List
	case KindString:
		if v.Str == "" {
			return nil
		}
		return []string{v.Str}
	default:
		return nil
	}
}

func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.fields))

	for i, f := range m.fields {
		keys[i] = f.Key
	}

	return keys
}

func (m *Metadata) Fields() []Field {
	if m == nil {
		return nil
	}

	return append([]Field(nil), m.fields...)
}

func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}

	return len(m.fields)
}

// Unquote strips one pair of surrounding double quotes and unescapes the
// content. It reports whether the input was quoted at all.
func Unquote(s string) (string, bool) {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s, false
	}

	if u, err := strconv.Unquote(s); err == nil {
		return u, true
	}

	return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`), true
}
