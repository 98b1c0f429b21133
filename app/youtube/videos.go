package youtube

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/umputun/yt-scraper/app/duration"
)

// Video is a video with details loaded from API. Nil counts mean the statistic is hidden by the owner,
// which is different from zero.
type Video struct {
	ID              string
	Title           string
	URL             string
	Description     string
	Published       time.Time
	Views           *int64
	Likes           *int64
	Comments        *int64
	DurationMinutes float64
	ThumbnailHigh   string
}

// videoItem is an item of videos response. Statistics are decoded with pointers to keep absent counters nil,
// youtube/v3 types decode them as zero.
type videoItem struct {
	ID             string                     `json:"id"`
	Snippet        *ytapi.VideoSnippet        `json:"snippet"`
	ContentDetails *ytapi.VideoContentDetails `json:"contentDetails"`
	Statistics     *struct {
		ViewCount    *string `json:"viewCount"`
		LikeCount    *string `json:"likeCount"`
		CommentCount *string `json:"commentCount"`
	} `json:"statistics"`
}

// Videos loads details for the given video ids, up to 50 ids per request. The result keeps the order of ids.
// Videos missing in the response or with broken fields are skipped, the returned *multierror.Error lists them
// and the returned videos are still valid. Any other error aborts and returns no videos.
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	res := make([]Video, 0, len(ids))
	errs := new(multierror.Error)

	for start := 0; start < len(ids); start += maxPerPage {
		batch := ids[start:min(start+maxPerPage, len(ids))]
		params := url.Values{"part": {"snippet,statistics,contentDetails"}, "id": {strings.Join(batch, ",")}}
		var resp struct {
			Items []videoItem `json:"items"`
		}
		if err := c.get(ctx, "videos", params, &resp); err != nil {
			return nil, errors.Wrapf(err, "failed to get details of %d videos", len(batch))
		}

		items := make(map[string]videoItem, len(resp.Items))
		for _, item := range resp.Items {
			items[item.ID] = item
		}

		for _, id := range batch {
			item, ok := items[id]
			if !ok {
				err := &NotFoundError{Kind: "video", ID: id}
				log.Printf("[WARN] skip video: %v", err)
				errs = multierror.Append(errs, err)
				continue
			}
			v, err := item.video()
			if err != nil {
				log.Printf("[WARN] skip video %s: %v", id, err)
				errs = multierror.Append(errs, errors.Wrapf(err, "video %s", id))
				continue
			}
			res = append(res, v)
		}
	}
	log.Printf("[DEBUG] loaded details of %d videos out of %d", len(res), len(ids))
	return res, errs.ErrorOrNil()
}

func (item videoItem) video() (Video, error) {
	if item.Snippet == nil {
		return Video{}, errors.New("no snippet")
	}
	if item.ContentDetails == nil {
		return Video{}, errors.New("no content details")
	}

	res := Video{
		ID:            item.ID,
		Title:         item.Snippet.Title,
		URL:           "https://www.youtube.com/watch?v=" + item.ID,
		Description:   item.Snippet.Description,
		ThumbnailHigh: thumbnail(item.Snippet.Thumbnails),
	}

	var err error
	if res.Published, err = time.Parse(time.RFC3339, item.Snippet.PublishedAt); err != nil {
		return Video{}, errors.Wrap(err, "bad publish time")
	}
	if res.DurationMinutes, err = duration.Minutes(item.ContentDetails.Duration); err != nil {
		return Video{}, err
	}

	if st := item.Statistics; st != nil {
		if res.Views, err = count(st.ViewCount); err != nil {
			return Video{}, errors.Wrap(err, "bad view count")
		}
		if res.Likes, err = count(st.LikeCount); err != nil {
			return Video{}, errors.Wrap(err, "bad like count")
		}
		if res.Comments, err = count(st.CommentCount); err != nil {
			return Video{}, errors.Wrap(err, "bad comment count")
		}
	}
	return res, nil
}

func count(s *string) (*int64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
