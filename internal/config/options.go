package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/nDmitry/podfeed/internal/enclosure"
)

// Options are the command line options of the generator.
// Every option can also be set from the environment.
type Options struct {
	Posts      string `long:"posts" env:"PODFEED_POSTS" default:"./content/posts" description:"Directory with post files"`
	SiteConfig string `long:"site-config" env:"PODFEED_SITE_CONFIG" default:"config.toml" description:"Site configuration file (toml, yaml or json)"`
	Feeds      string `long:"feeds" env:"PODFEED_FEEDS" description:"YAML file with feed definitions, built-in feeds if empty"`
	Templates  string `long:"templates" env:"PODFEED_TEMPLATES" default:"./data/rss" description:"Directory with head, item and foot templates"`
	Output     string `long:"output" env:"PODFEED_OUTPUT" default:"/srv/hugo/public" description:"Directory the feeds are written to"`

	Redis     string        `long:"redis" env:"REDIS_ADDR" description:"Redis address for sharing enclosure sizes between runs, disabled if empty; a file replaced on the host keeps its old size until the shared entry expires"`
	SizeTTL   time.Duration `long:"size-ttl" env:"PODFEED_SIZE_TTL" default:"1h" description:"How long shared enclosure sizes are kept, 0 disables sharing"`
	Timeout   time.Duration `long:"timeout" env:"PODFEED_TIMEOUT" default:"30s" description:"Timeout of a single enclosure request"`
	UserAgent string        `long:"user-agent" env:"PODFEED_USER_AGENT" default:"podfeed/1.0 (+https://github.com/nDmitry/podfeed)" description:"User agent of enclosure requests"`

	Verify bool `long:"verify" env:"PODFEED_VERIFY" description:"Parse every generated feed before writing it"`
	Debug  bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// ParseOptions parses command line arguments without the program name.
func ParseOptions(args []string) (*Options, error) {
	var opts Options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	if opts.UserAgent == "" {
		opts.UserAgent = enclosure.DefaultUserAgent
	}

	return &opts, nil
}

// IsHelp reports whether err is a request for the usage message.
func IsHelp(err error) bool {
	var flagsErr *flags.Error

	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
