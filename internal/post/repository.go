// Package post loads podcast posts from a content directory.
package post

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nDmitry/podfeed/internal/app"
	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/nDmitry/podfeed/internal/frontmatter"
)

const postExt = ".md"

// ErrNoDate is reported for posts without a usable date
var ErrNoDate = errors.New("post has no valid date")

type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// All yields podcast posts in file name order. Posts that are not podcasts
// or have no valid date are skipped. A post that cannot be read ends the
// sequence with an error.
func (r *Repository) All() iter.Seq2[*entity.Post, error] {
	return func(yield func(*entity.Post, error) bool) {
		if _, err := os.Stat(r.dir); err != nil {
			yield(nil, fmt.Errorf("could not open posts directory: %w", err))
			return
		}

		files, err := filepath.Glob(filepath.Join(r.dir, "*"+postExt))

		if err != nil {
			yield(nil, fmt.Errorf("could not list posts: %w", err))
			return
		}

		slices.Sort(files)

		for _, file := range files {
			p, err := r.read(file)

			if err != nil {
				yield(nil, err)
				return
			}

			if p == nil {
				continue
			}

			if !yield(p, nil) {
				return
			}
		}
	}
}

// Load collects All into a slice.
func (r *Repository) Load() ([]*entity.Post, error) {
	var posts []*entity.Post

	for p, err := range r.All() {
		if err != nil {
			return nil, err
		}

		posts = append(posts, p)
	}

	return posts, nil
}

func (r *Repository) read(file string) (*entity.Post, error) {
	logger := app.Logger()
	name := strings.TrimSuffix(filepath.Base(file), postExt)

	contents, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("could not read post %s: %w", name, err)
	}

	doc, warnings := frontmatter.Parse(string(contents))

	for _, w := range warnings {
		logger.Warn("Malformed front matter", slog.String("post", name), slog.Any("error", w))
	}

	logger.Debug("Parsed post", slog.String("post", name), slog.Any("keys", doc.Metadata.Keys()))

	p := &entity.Post{
		Name:     name,
		Metadata: doc.Metadata,
		Body:     doc.Body,
	}

	if !p.IsPodcast() {
		return nil, nil
	}

	date, ok := doc.Metadata.Get(entity.KeyDate)

	if !ok || date.Kind != entity.KindDate {
		logger.Warn("Skipping post", slog.String("post", name), slog.Any("error", ErrNoDate))
		return nil, nil
	}

	p.PublishedAt = date.Date
	p.URL = entity.PostURL(p.PublishedAt, name)

	return p, nil
}
