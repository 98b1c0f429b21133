// Package duration converts ISO-8601 durations reported by YouTube API, i.e. PT5M30S
package duration

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	isoduration "github.com/sosodev/duration"
)

// Minutes parses ISO-8601 duration and returns it in minutes, rounded to 2 decimals.
// Days are counted as 24 hours, live streams report P0D and get 0.
func Minutes(iso string) (float64, error) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return 0, errors.New("empty duration")
	}
	d, err := isoduration.Parse(iso)
	if err != nil {
		return 0, errors.Wrapf(err, "can't parse duration %q", iso)
	}
	return math.Round(d.ToTimeDuration().Minutes()*100) / 100, nil
}
