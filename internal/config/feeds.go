package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/nDmitry/podfeed/internal/entity"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoFeeds       = errors.New("no feeds defined")
	ErrDuplicateFeed = errors.New("duplicate feed name")
)

// ReadFeeds reads feed definitions from a YAML file.
// An empty path selects the built-in feeds.
func ReadFeeds(path string) ([]entity.FeedDefinition, error) {
	if path == "" {
		return entity.DefaultFeeds(), nil
	}

	contents, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("could not read feeds file: %w", err)
	}

	var defs []entity.FeedDefinition

	if err = yaml.Unmarshal(contents, &defs); err != nil {
		return nil, fmt.Errorf("could not parse feeds file: %w", err)
	}

	if err = ValidateFeeds(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

// ValidateFeeds checks every definition and that output names are unique.
func ValidateFeeds(defs []entity.FeedDefinition) error {
	if len(defs) == 0 {
		return ErrNoFeeds
	}

	seen := make(map[string]bool, len(defs))

	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid feed #%d %q: %w", i+1, def.Name, err)
		}

		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateFeed, def.Name)
		}

		seen[def.Name] = true
	}

	return nil
}
