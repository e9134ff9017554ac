package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nDmitry/podfeed/internal/app"
	"github.com/nDmitry/podfeed/internal/entity"
)

// ItemDateLayout keeps the wall clock of the post date and always claims EST.
const ItemDateLayout = "Mon, 02 Jan 2006 15:04:05 EST"

// SizeResolver returns the byte size of an enclosure
type SizeResolver interface {
	Size(ctx context.Context, url string) (string, error)
}

// Generator renders feed documents for one site.
type Generator struct {
	site     entity.Site
	renderer *ContentRenderer
	sizes    SizeResolver
}

func NewGenerator(site entity.Site, sizes SizeResolver) *Generator {
	return &Generator{
		site:     site,
		renderer: NewContentRenderer(),
		sizes:    sizes,
	}
}

// Generate renders the feed document for def from posts sorted newest first.
// Items are appended until there are more than def.Count of them, so a full
// feed holds def.Count+1 items.
func (g *Generator) Generate(ctx context.Context, def entity.FeedDefinition, tpl *Templates, posts []*entity.Post) ([]byte, int, error) {
	head := tpl.Head.Render(map[string]string{
		"title":       def.Title,
		"url":         g.site.BaseURL,
		"subtitle":    g.site.Subtitle,
		"description": g.site.LongDescription,
		"image":       def.Image,
	})

	items := make([]string, 0, min(len(posts), def.Count+1))

	for _, p := range posts {
		if len(items) > def.Count {
			break
		}

		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		item, err := g.renderItem(ctx, def, p)

		if err != nil {
			return nil, 0, fmt.Errorf("could not render post %s for feed %s: %w", p.Name, def.Name, err)
		}

		items = append(items, tpl.Item.Render(item.Fields()))
	}

	doc := head + "\n" + strings.Join(items, "\n") + "\n" + tpl.Foot

	return []byte(doc), len(items), nil
}

func (g *Generator) renderItem(ctx context.Context, def entity.FeedDefinition, p *entity.Post) (*entity.RenderedItem, error) {
	content, err := g.renderer.Render(p.Body)

	if err != nil {
		return nil, err
	}

	if content.EnclosureURL == "" {
		app.Logger().Warn("Post has no audio", slog.String("title", p.Title()), slog.String("post", p.Name))
	}

	var size string

	if def.ReportsSize() && content.EnclosureURL != "" && g.sizes != nil {
		size, err = g.sizes.Size(ctx, content.EnclosureURL)

		if err != nil {
			return nil, err
		}
	}

	return &entity.RenderedItem{
		Title:    p.Title(),
		Content:  content.HTML,
		Text:     content.Text,
		Filename: content.EnclosureURL,
		Filesize: size,
		URL:      AbsoluteURL(g.site.BaseURL, p.URL),
		Date:     p.PublishedAt.Format(ItemDateLayout),
		Image:    p.Image(),
	}, nil
}

// AbsoluteURL joins the site base URL and a relative post URL with exactly
// one slash.
func AbsoluteURL(baseURL, postURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(postURL, "/")
}
