package entity_test

import (
	"testing"

	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRenderedItemFields(t *testing.T) {
	item := entity.RenderedItem{Title: "T", Filename: "a.mp3"}
	fields := item.Fields()

	assert.Len(t, fields, 8)
	assert.Equal(t, "T", fields["title"])
	assert.Equal(t, "a.mp3", fields["filename"])
	assert.Contains(t, fields, "filesize")
	assert.Empty(t, fields["filesize"])
}
