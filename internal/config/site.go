package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/nDmitry/podfeed/internal/entity"
	"github.com/spf13/viper"
)

const (
	KeyBaseURL         = "baseurl"
	KeySubtitle        = "params.subtitle"
	KeyLongDescription = "params.longDescription"
)

// ReadSite reads the site settings from a site configuration file.
// The format is taken from the file extension.
func ReadSite(path string) (*entity.Site, error) {
	vp := viper.New()
	vp.SetConfigFile(path)

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read site config: %w", err)
	}

	site := &entity.Site{
		BaseURL:         vp.GetString(KeyBaseURL),
		Subtitle:        vp.GetString(KeySubtitle),
		LongDescription: vp.GetString(KeyLongDescription),
	}

	if err := validation.Validate(site.BaseURL, validation.Required, is.URL); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", KeyBaseURL, err)
	}

	return site, nil
}
