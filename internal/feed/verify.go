package feed

import (
	"errors"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// ErrInvalidFeed is returned when a rendered document cannot be read back as a feed
var ErrInvalidFeed = errors.New("invalid feed")

// Verify parses doc the way feed readers would and returns the number of
// items they would see.
func Verify(doc []byte) (int, error) {
	parsed, err := gofeed.NewParser().ParseString(string(doc))

	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFeed, err)
	}

	return len(parsed.Items), nil
}
