package entity

import (
	"fmt"
	"slices"
	"time"
)

const (
	KeyTitle      = "title"
	KeyDate       = "date"
	KeyCategories = "categories"
	KeyImage      = "image"

	// PodcastTag marks a post as podcast content.
	PodcastTag = "podcast"
)

type Post struct {
	// File name without extension.
	Name     string
	Metadata *Metadata
	// Markdown following the front matter block.
	Body        string
	PublishedAt time.Time
	// Relative URL, see PostURL.
	URL string
}

// PostURL builds the relative URL of a post, p/<yyyy>/<mm>/<dd>/<name>/.
func PostURL(publishedAt time.Time, name string) string {
	return fmt.Sprintf("p/%s/%s/", publishedAt.Format("2006/01/02"), name)
}

func (p *Post) Title() string {
	return p.Metadata.String(KeyTitle)
}

func (p *Post) Image() string {
	return p.Metadata.String(KeyImage)
}

// IsPodcast reports whether the post categories include the podcast tag.
func (p *Post) IsPodcast() bool {
	return slices.Contains(p.Metadata.Tags(KeyCategories), PodcastTag)
}
