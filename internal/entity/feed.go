package entity

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SizeProbeLimit is the item count from which a feed never reports
// enclosure sizes, whatever its Size flag says.
const SizeProbeLimit = 30

var feedNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FeedDefinition describes one output feed.
type FeedDefinition struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	// Header image URL.
	Image string `json:"image" yaml:"image"`
	// Item cap, see feed.Generator for the exact boundary.
	Count int `json:"count" yaml:"count"`
	// Report enclosure byte sizes.
	Size bool `json:"size" yaml:"size"`
}

// ReportsSize reports whether enclosure sizes are resolved for this feed.
func (d FeedDefinition) ReportsSize() bool {
	return d.Size && d.Count < SizeProbeLimit
}

func (d FeedDefinition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Match(feedNameRegex)),
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Image, is.URL),
		validation.Field(&d.Count, validation.Required, validation.Min(1)),
	)
}

const (
	defaultFeedTitle  = "Еженедельный подкаст от Umputun"
	archiveFeedTitle  = "Еженедельный подкаст от Umputun (Архивы)"
	defaultFeedImage  = "http://podcast.umputun.com/images/umputun-art-big.jpg"
	archivesFeedImage = "http://podcast.umputun.com/images/umputun-art-archives.jpg"
)

// DefaultFeeds returns the built-in feed table used when no feeds file is
// configured.
func DefaultFeeds() []FeedDefinition {
	return []FeedDefinition{
		{Name: "podcast", Title: defaultFeedTitle, Image: defaultFeedImage, Count: 20, Size: true},
		{Name: "podcast-failback", Title: defaultFeedTitle, Image: defaultFeedImage, Count: 20, Size: true},
		{Name: "archives", Title: archiveFeedTitle, Image: archivesFeedImage, Count: 1000, Size: false},
		{Name: "podcast-archives-short", Title: archiveFeedTitle, Image: archivesFeedImage, Count: 25, Size: false},
	}
}
