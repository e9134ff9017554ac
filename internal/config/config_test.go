package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nDmitry/podfeed/internal/config"
	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := config.ParseOptions(nil)
	require.NoError(t, err)

	assert.Equal(t, "./content/posts", opts.Posts)
	assert.Equal(t, "config.toml", opts.SiteConfig)
	assert.Equal(t, "./data/rss", opts.Templates)
	assert.Equal(t, "/srv/hugo/public", opts.Output)
	assert.Equal(t, time.Hour, opts.SizeTTL)
	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.False(t, opts.Verify)
}

func TestParseOptions(t *testing.T) {
	opts, err := config.ParseOptions([]string{
		"--posts", "/tmp/posts",
		"--output", "/tmp/out",
		"--feeds", "feeds.yml",
		"--timeout", "5s",
		"--verify",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/posts", opts.Posts)
	assert.Equal(t, "/tmp/out", opts.Output)
	assert.Equal(t, "feeds.yml", opts.Feeds)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.True(t, opts.Verify)
}

func TestParseOptionsErrors(t *testing.T) {
	_, err := config.ParseOptions([]string{"--unknown"})
	assert.Error(t, err)
	assert.False(t, config.IsHelp(err))

	_, err = config.ParseOptions([]string{"--help"})
	assert.True(t, config.IsHelp(err))
}

func TestReadSite(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		expected    *entity.Site
		errContains string
	}{
		{
			name: "Hugo TOML config",
			file: "config.toml",
			content: `baseurl = "https://podcast.umputun.com"
title = "Umputun"

[params]
subtitle = "Еженедельный подкаст"
longDescription = "Подкаст обо всем"
`,
			expected: &entity.Site{
				BaseURL:         "https://podcast.umputun.com",
				Subtitle:        "Еженедельный подкаст",
				LongDescription: "Подкаст обо всем",
			},
		},
		{
			name:    "YAML config",
			file:    "config.yaml",
			content: "baseURL: https://example.com/\nparams:\n  subtitle: Sub\n",
			expected: &entity.Site{
				BaseURL:  "https://example.com/",
				Subtitle: "Sub",
			},
		},
		{
			name:        "Missing base URL",
			file:        "config.toml",
			content:     "title = \"x\"\n",
			errContains: "baseurl",
		},
		{
			name:        "Broken file",
			file:        "config.toml",
			content:     "baseurl = ",
			errContains: "could not read site config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := config.ReadSite(writeFile(t, tt.file, tt.content))

			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, site)
		})
	}
}

func TestReadFeeds(t *testing.T) {
	defs, err := config.ReadFeeds("")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultFeeds(), defs)
	assert.NoError(t, config.ValidateFeeds(defs))

	path := writeFile(t, "feeds.yml", `
- name: podcast
  title: Podcast
  image: https://example.com/art.jpg
  count: 20
  size: true
- name: archives
  title: Archives
  count: 1000
`)

	defs, err = config.ReadFeeds(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, entity.FeedDefinition{Name: "podcast", Title: "Podcast", Image: "https://example.com/art.jpg", Count: 20, Size: true}, defs[0])
	assert.True(t, defs[0].ReportsSize())
	assert.False(t, defs[1].ReportsSize())
}

func TestReadFeedsInvalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		errContains string
	}{
		{
			name:        "Empty list",
			content:     "[]",
			expectedErr: config.ErrNoFeeds,
		},
		{
			name:        "Duplicate names",
			content:     "- {name: a, title: A, count: 1}\n- {name: a, title: B, count: 2}\n",
			expectedErr: config.ErrDuplicateFeed,
		},
		{
			name:        "Unsafe file name",
			content:     "- {name: ../a, title: A, count: 1}\n",
			errContains: "name",
		},
		{
			name:        "Zero count",
			content:     "- {name: a, title: A, count: 0}\n",
			errContains: "count",
		},
		{
			name:        "Not a list",
			content:     "name: a\n",
			errContains: "could not parse feeds file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ReadFeeds(writeFile(t, "feeds.yml", tt.content))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
