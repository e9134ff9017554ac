package entity_test

import (
	"testing"
	"time"

	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValueLiteral(t *testing.T) {
	tests := []struct {
		name     string
		value    entity.Value
		expected string
	}{
		{"String", entity.StringValue("UWP - Выпуск 500"), `"UWP - Выпуск 500"`},
		{"String with quotes", entity.StringValue(`He said "hi"`), `"He said \"hi\""`},
		{"List", entity.ListValue([]string{"podcast", "news"}), `["podcast", "news"]`},
		{"Date", entity.DateValue(time.Date(2016, 9, 3, 19, 15, 0, 0, time.UTC)), "2016-09-03T19:15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Literal())
		})
	}
}

func TestMetadata(t *testing.T) {
	var m entity.Metadata

	m.Set("title", entity.StringValue("first"))
	m.Set("categories", entity.StringValue("podcast"))
	m.Set("title", entity.StringValue("second"))

	assert.Equal(t, []string{"title", "categories"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "second", m.String("title"))
	assert.Equal(t, []string{"podcast"}, m.Tags("categories"))
	assert.Empty(t, m.String("missing"))
	assert.Nil(t, m.Tags("missing"))

	var nilMeta *entity.Metadata

	_, ok := nilMeta.Get("title")
	assert.False(t, ok)
	assert.Zero(t, nilMeta.Len())
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		quoted   bool
	}{
		{`"plain"`, "plain", true},
		{`"with \"inner\" quotes"`, `with "inner" quotes`, true},
		{`unquoted`, "unquoted", false},
		{`"`, `"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, quoted := entity.Unquote(tt.in)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.quoted, quoted)
		})
	}
}
