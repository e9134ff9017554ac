package enclosure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/nDmitry/podfeed/internal/app"
)

const (
	DefaultUserAgent = "podfeed/1.0 (+https://github.com/nDmitry/podfeed)"
	DefaultTimeout   = 30 * time.Second
)

// HeadProber asks the audio host for the enclosure size with a HEAD request.
type HeadProber struct {
	userAgent string
	timeout   time.Duration
}

func NewHeadProber(userAgent string, timeout time.Duration) *HeadProber {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HeadProber{userAgent: userAgent, timeout: timeout}
}

// Probe returns the Content-Length reported for url.
// An empty string means the host did not report one.
func (p *HeadProber) Probe(ctx context.Context, url string) (string, error) {
	c := colly.NewCollector(
		colly.UserAgent(p.userAgent),
		colly.StdlibContext(ctx),
		colly.AllowURLRevisit(),
	)

	c.WithTransport(httpTransport)
	c.SetRequestTimeout(p.timeout)

	var size string

	c.OnResponse(func(r *colly.Response) {
		if r.Headers != nil {
			size = strings.TrimSpace(r.Headers.Get("Content-Length"))
		}
	})

	if err := c.Head(url); err != nil {
		return "", fmt.Errorf("failed to probe %s: %w", url, err)
	}

	if size == "" {
		app.Logger().Warn("Enclosure host reported no size", slog.String("url", url))
	}

	return size, nil
}
