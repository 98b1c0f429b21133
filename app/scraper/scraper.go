// Package scraper runs the channel scraping flow: resolve channel reference, load channel info,
// list recent videos, load their details and derive metrics. Steps run one after another,
// a failed step stops the flow.
package scraper

import (
	"context"
	"sort"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/umputun/yt-scraper/app/metrics"
	"github.com/umputun/yt-scraper/app/youtube"
)

//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . ResolverService
//go:generate moq -out mocks/channel.go -pkg mocks -skip-ensure -fmt goimports . ChannelService
//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . ListerService
//go:generate moq -out mocks/video.go -pkg mocks -skip-ensure -fmt goimports . VideoService

// Service scrapes a channel
type Service struct {
	Resolver   ResolverService
	Channels   ChannelService
	Lister     ListerService
	Videos     VideoService
	Classifier metrics.Classifier
	Source     youtube.Source
	Sort       SortBy
	Now        func() time.Time
}

// ResolverService is an interface for turning channel reference into channel id
type ResolverService interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// ChannelService is an interface for loading channel metadata
type ChannelService interface {
	Channel(ctx context.Context, id string) (youtube.Channel, error)
}

// ListerService is an interface for listing recent video ids of a channel
type ListerService interface {
	VideoIDs(ctx context.Context, channelID string, maxCount int) ([]string, error)
	UploadIDs(ctx context.Context, playlistID string, maxCount int) ([]string, error)
}

// VideoService is an interface for loading video details. Partial failures are reported
// as *multierror.Error together with loaded videos.
type VideoService interface {
	Videos(ctx context.Context, ids []string) ([]youtube.Video, error)
}

// SortBy defines order of the result
type SortBy string

// enum of result orders
const (
	SortDate  = SortBy("date")  // as returned by api, newest first
	SortViews = SortBy("views") // most viewed first
	SortLikes = SortBy("likes") // most liked first
)

// Result of scraping
type Result struct {
	Channel youtube.Channel
	Records []metrics.Record
	Skipped error // videos failed to load, nil if all loaded
}

// Scrape loads channel and up to maxCount of its recent videos. Videos failed to load are skipped
// and reported in Result.Skipped, any other failure returns an error and no result.
func (s *Service) Scrape(ctx context.Context, ref string, maxCount int) (Result, error) {
	id, err := s.Resolver.Resolve(ctx, ref)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to resolve %s", ref)
	}
	log.Printf("[DEBUG] channel %s resolved to %s", ref, id)

	ch, err := s.Channels.Channel(ctx, id)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to load channel %s", id)
	}
	log.Printf("[INFO] scraping channel %s, it has %d videos in total", ch.Name, ch.Videos)

	ids, err := s.listIDs(ctx, ch, maxCount)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to list videos of %s", id)
	}
	log.Printf("[INFO] got %d video ids, limit %d", len(ids), maxCount)

	res := Result{Channel: ch}
	videos, err := s.Videos.Videos(ctx, ids)
	if err != nil {
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			return Result{}, errors.Wrap(err, "failed to load videos")
		}
		res.Skipped = merr
	}

	now := s.now()
	classifier := s.classifier()
	res.Records = make([]metrics.Record, 0, len(videos))
	for _, v := range videos {
		res.Records = append(res.Records, classifier.Derive(v, now))
	}
	s.sort(res.Records)
	return res, nil
}

func (s *Service) listIDs(ctx context.Context, ch youtube.Channel, maxCount int) ([]string, error) {
	if s.Source == youtube.SourceUploads {
		if ch.UploadsPlaylist != "" {
			return s.Lister.UploadIDs(ctx, ch.UploadsPlaylist, maxCount)
		}
		log.Printf("[WARN] no uploads playlist for %s, fallback to search", ch.ID)
	}
	return s.Lister.VideoIDs(ctx, ch.ID, maxCount)
}

// sort reorders records for views and likes, hidden counts go last. Date order is the api order.
func (s *Service) sort(records []metrics.Record) {
	var key func(r metrics.Record) *int64
	switch s.Sort {
	case SortViews:
		key = func(r metrics.Record) *int64 { return r.Views }
	case SortLikes:
		key = func(r metrics.Record) *int64 { return r.Likes }
	default:
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := key(records[i]), key(records[j])
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
}

func (s *Service) classifier() metrics.Classifier {
	if s.Classifier == (metrics.Classifier{}) {
		return metrics.DefaultClassifier
	}
	return s.Classifier
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
