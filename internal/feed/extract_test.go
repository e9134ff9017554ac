package feed_test

import (
	"testing"

	"github.com/nDmitry/podfeed/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRenderer(t *testing.T) {
	tests := []struct {
		name              string
		body              string
		expectedHTML      []string
		expectedText      string
		expectedEnclosure string
	}{
		{
			name: "Raw audio markup passes through",
			body: "![](http://podcast.umputun.com/images/uwp/uwp500.jpg)\n\n" +
				"- Главные темы\n- *Вопросы* слушателей\n\n" +
				"<audio src=\"http://cdn.radio-t.com/ump_podcast500.mp3\" preload=\"none\"></audio>\n" +
				"<audio src=\"http://cdn.radio-t.com/second.mp3\"></audio>\n",
			expectedHTML: []string{
				`<audio src="http://cdn.radio-t.com/ump_podcast500.mp3" preload="none"></audio>`,
				"<em>Вопросы</em>",
			},
			expectedText:      "Главные темы\nВопросы слушателей\n",
			expectedEnclosure: "http://cdn.radio-t.com/ump_podcast500.mp3",
		},
		{
			name:              "No audio element",
			body:              "Just **text**.",
			expectedHTML:      []string{"<p>Just <strong>text</strong>.</p>"},
			expectedText:      "Just text.",
			expectedEnclosure: "",
		},
		{
			name:              "Audio without src",
			body:              "<audio controls><source src=\"a.mp3\"></audio>\n",
			expectedHTML:      []string{"<audio controls>"},
			expectedText:      "",
			expectedEnclosure: "",
		},
	}

	r := feed.NewContentRenderer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := r.Render(tt.body)
			require.NoError(t, err)

			for _, part := range tt.expectedHTML {
				assert.Contains(t, content.HTML, part)
			}

			assert.Contains(t, content.Text, tt.expectedText)
			assert.Equal(t, tt.expectedEnclosure, content.EnclosureURL)
		})
	}
}
