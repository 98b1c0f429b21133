// Package report prints human-readable summary of a scraped channel and its videos
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/denisbrodbeck/striphtmltags"
	"github.com/dustin/go-humanize"

	"github.com/umputun/yt-scraper/app/metrics"
	"github.com/umputun/yt-scraper/app/youtube"
)

// maxDescription limits channel description in the summary, in runes
const maxDescription = 500

// Channel prints channel metadata
func Channel(w io.Writer, ch youtube.Channel) {
	subscribers := humanize.Comma(ch.Subscribers)
	if ch.HiddenSubscribers {
		subscribers = "hidden"
	}
	country := ch.Country
	if country == "" {
		country = "Unknown"
	}
	created := "unknown"
	if !ch.Created.IsZero() {
		created = ch.Created.Format("2006-01-02") + " (" + humanize.Time(ch.Created) + ")"
	}

	fmt.Fprintf(w, "Channel:     %s (%s)\n", ch.Name, ch.ID)
	if ch.CustomURL != "" {
		fmt.Fprintf(w, "Custom URL:  %s\n", ch.CustomURL)
	}
	fmt.Fprintf(w, "Subscribers: %s\n", subscribers)
	fmt.Fprintf(w, "Views:       %s\n", humanize.Comma(ch.Views))
	fmt.Fprintf(w, "Videos:      %s\n", humanize.Comma(ch.Videos))
	fmt.Fprintf(w, "Country:     %s\n", country)
	fmt.Fprintf(w, "Created:     %s\n", created)
	if desc := CleanText(ch.Description, maxDescription); desc != "" {
		fmt.Fprintf(w, "Description: %s\n", desc)
	}
}

// Videos prints one entry per record, in the given order
func Videos(w io.Writer, records []metrics.Record) {
	fmt.Fprintf(w, "\n%d videos:\n", len(records))
	for i, r := range records {
		fmt.Fprintf(w, "%3d. %s\n", i+1, r.Title)
		fmt.Fprintf(w, "     %s, views: %s, likes: %s, comments: %s, %.2f min (%s), %d days ago\n",
			r.URL, count(r.Views), count(r.Likes), count(r.Comments), r.DurationMinutes, r.Type, r.UploadAgeDays)
	}
}

func count(v *int64) string {
	if v == nil {
		return "hidden"
	}
	return humanize.Comma(*v)
}

// CleanText removes html tags, folds whitespace to single spaces and shrinks result to maximum runes
// cutting on the last space
func CleanText(inp string, maximum int) string {
	res := strings.Join(strings.Fields(striphtmltags.StripTags(inp)), " ")
	if len([]rune(res)) > maximum {
		// 4 symbols reserved for space and three dots on the end
		snippet := []rune(res)[:maximum-4]
		for i := len(snippet) - 1; i >= 0; i-- {
			if snippet[i] == ' ' {
				snippet = snippet[:i]
				break
			}
		}
		res = string(snippet) + " ..."
	}
	return res
}
