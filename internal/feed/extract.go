package feed

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Content is a post body rendered for feeds.
type Content struct {
	HTML string
	// All text nodes of HTML in document order.
	Text string
	// src of the first audio element, empty when there is none.
	EnclosureURL string
}

// ContentRenderer turns markdown bodies into HTML. Raw HTML is passed
// through untouched since posts embed audio player markup.
type ContentRenderer struct {
	md goldmark.Markdown
}

func NewContentRenderer() *ContentRenderer {
	return &ContentRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (r *ContentRenderer) Render(body string) (*Content, error) {
	var buf bytes.Buffer

	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("could not render markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))

	if err != nil {
		return nil, fmt.Errorf("could not parse rendered HTML: %w", err)
	}

	src, _ := doc.Find("audio").First().Attr("src")

	return &Content{
		HTML:         buf.String(),
		Text:         doc.Text(),
		EnclosureURL: src,
	}, nil
}
