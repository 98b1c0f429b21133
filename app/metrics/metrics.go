// Package metrics derives per-video fields, upload age and length type, from loaded video details
package metrics

import (
	"math"
	"time"

	"github.com/umputun/yt-scraper/app/youtube"
)

// VideoType is a length based classification of a video
type VideoType string

// enum of video types
const (
	Low    = VideoType("Low")
	Medium = VideoType("Medium")
	Long   = VideoType("Long")
)

// Classifier splits videos by duration in minutes. Shorter than MediumFrom is Low,
// up to LongAfter inclusive is Medium and anything longer is Long.
type Classifier struct {
	MediumFrom float64
	LongAfter  float64
}

// DefaultClassifier makes Low below 4 minutes, Medium for 4-20 minutes and Long above 20
var DefaultClassifier = Classifier{MediumFrom: 4, LongAfter: 20}

// Record is a video with derived fields
type Record struct {
	youtube.Video
	UploadAgeDays int
	Type          VideoType
}

// Classify returns video type for duration in minutes
func (c Classifier) Classify(minutes float64) VideoType {
	switch {
	case minutes < c.MediumFrom:
		return Low
	case minutes <= c.LongAfter:
		return Medium
	default:
		return Long
	}
}

// Derive makes a record from the video, age is counted to now
func (c Classifier) Derive(v youtube.Video, now time.Time) Record {
	return Record{Video: v, UploadAgeDays: UploadAge(v.Published, now), Type: c.Classify(v.DurationMinutes)}
}

// UploadAge returns the number of full days since published. Never negative, 0 for unknown publish time.
func UploadAge(published, now time.Time) int {
	if published.IsZero() {
		return 0
	}
	days := math.Floor(now.Sub(published).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
