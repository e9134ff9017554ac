// Package pipeline runs one full regeneration of all feeds.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/nDmitry/podfeed/internal/app"
	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/nDmitry/podfeed/internal/feed"
	"github.com/nDmitry/podfeed/internal/post"
)

const outputExt = ".rss"

// Config holds everything one run needs.
type Config struct {
	PostsDir     string
	TemplatesDir string
	OutputDir    string
	Site         entity.Site
	Feeds        []entity.FeedDefinition
	// Parse each document back before writing it.
	Verify bool
}

// Result describes one written feed file.
type Result struct {
	Feed  string
	Path  string
	Items int
	Bytes int
}

type Pipeline struct {
	cfg   Config
	sizes feed.SizeResolver
}

func New(cfg Config, sizes feed.SizeResolver) *Pipeline {
	return &Pipeline{cfg: cfg, sizes: sizes}
}

// Run loads posts and writes every feed. Templates of all feeds are loaded
// first so a missing one fails the run before any file is touched.
func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	logger := app.Logger()
	start := time.Now()

	templates := make(map[string]*feed.Templates, len(p.cfg.Feeds))

	for _, def := range p.cfg.Feeds {
		tpl, err := feed.LoadTemplates(p.cfg.TemplatesDir, def.Name)

		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", def.Name, err)
		}

		templates[def.Name] = tpl
	}

	posts, err := post.NewRepository(p.cfg.PostsDir).Load()

	if err != nil {
		return nil, err
	}

	SortPosts(posts)

	logger.Info("Loaded podcast posts", slog.Int("count", len(posts)), slog.String("dir", p.cfg.PostsDir))

	if err = os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}

	gen := feed.NewGenerator(p.cfg.Site, p.sizes)
	results := make([]Result, 0, len(p.cfg.Feeds))

	for _, def := range p.cfg.Feeds {
		res, err := p.writeFeed(ctx, gen, def, templates[def.Name], posts)

		if err != nil {
			return results, err
		}

		logger.Info("Feed generated",
			slog.String("feed", res.Feed),
			slog.String("path", res.Path),
			slog.Int("items", res.Items),
			slog.Int("bytes", res.Bytes))

		results = append(results, *res)
	}

	logger.Info("All feeds generated", slog.Int("feeds", len(results)), slog.Duration("took", time.Since(start)))

	return results, nil
}

func (p *Pipeline) writeFeed(ctx context.Context, gen *feed.Generator, def entity.FeedDefinition, tpl *feed.Templates, posts []*entity.Post) (*Result, error) {
	doc, items, err := gen.Generate(ctx, def, tpl, posts)

	if err != nil {
		return nil, err
	}

	if p.cfg.Verify {
		parsed, err := feed.Verify(doc)

		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", def.Name, err)
		}

		if parsed != items {
			app.Logger().Warn("Feed readers see a different item count",
				slog.String("feed", def.Name),
				slog.Int("rendered", items),
				slog.Int("parsed", parsed))
		}
	}

	path := filepath.Join(p.cfg.OutputDir, def.Name+outputExt)

	if err = os.WriteFile(path, doc, 0o644); err != nil {
		return nil, fmt.Errorf("could not write feed %s: %w", def.Name, err)
	}

	return &Result{Feed: def.Name, Path: path, Items: items, Bytes: len(doc)}, nil
}

// SortPosts orders posts newest first. Posts with equal dates keep their
// relative order.
func SortPosts(posts []*entity.Post) {
	slices.SortStableFunc(posts, func(a, b *entity.Post) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
}
