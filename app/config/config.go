// Package config provides the configuration support for the application.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/umputun/yt-scraper/app/metrics"
	"github.com/umputun/yt-scraper/app/scraper"
	"github.com/umputun/yt-scraper/app/youtube"
)

// Conf for scraper config yml
type Conf struct {
	API struct {
		Key     string        `yaml:"key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`

	Scrape struct {
		MaxVideos int            `yaml:"max_videos"`
		Source    youtube.Source `yaml:"source"`
		Sort      scraper.SortBy `yaml:"sort"`
	} `yaml:"scrape"`

	Classify struct {
		MediumFrom float64 `yaml:"medium_from"` // minutes, shorter videos are Low
		LongAfter  float64 `yaml:"long_after"`  // minutes, longer videos are Long
	} `yaml:"classify"`

	Export struct {
		File string `yaml:"file"`
	} `yaml:"export"`
}

// Load config from file
func Load(fname string) (res *Conf, err error) {
	res = &Conf{}
	data, err := os.ReadFile(fname) // nolint
	if err != nil {
		return nil, err
	}
	// expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, res); err != nil {
		return nil, err
	}
	res.setDefaults()
	return res, nil
}

// Default makes config with default values, used when no config file passed
func Default() *Conf {
	res := &Conf{}
	res.setDefaults()
	return res
}

// Classifier makes video type classifier from thresholds
func (c *Conf) Classifier() metrics.Classifier {
	return metrics.Classifier{MediumFrom: c.Classify.MediumFrom, LongAfter: c.Classify.LongAfter}
}

// Validate checks values which can't be defaulted
func (c *Conf) Validate() error {
	if c.API.Key == "" {
		return errors.New("youtube api key is not set")
	}
	if c.Scrape.MaxVideos < 0 {
		return errors.Errorf("negative max videos %d", c.Scrape.MaxVideos)
	}
	switch c.Scrape.Source {
	case youtube.SourceSearch, youtube.SourceUploads:
	default:
		return errors.Errorf("unknown video source %q", c.Scrape.Source)
	}
	switch c.Scrape.Sort {
	case scraper.SortDate, scraper.SortViews, scraper.SortLikes:
	default:
		return errors.Errorf("unknown sort %q", c.Scrape.Sort)
	}
	if c.Classify.MediumFrom > c.Classify.LongAfter {
		return errors.Errorf("medium_from %.2f is above long_after %.2f", c.Classify.MediumFrom, c.Classify.LongAfter)
	}
	return nil
}

// setDefaults sets default values for config
func (c *Conf) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = youtube.DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.Scrape.MaxVideos == 0 {
		c.Scrape.MaxVideos = 50
	}
	if c.Scrape.Source == "" {
		c.Scrape.Source = youtube.SourceSearch
	}
	if c.Scrape.Sort == "" {
		c.Scrape.Sort = scraper.SortDate
	}
	if c.Classify.MediumFrom == 0 && c.Classify.LongAfter == 0 {
		c.Classify.MediumFrom = metrics.DefaultClassifier.MediumFrom
		c.Classify.LongAfter = metrics.DefaultClassifier.LongAfter
	}
	if c.Export.File == "" {
		c.Export.File = "youtube_data.xlsx"
	}
}
