package youtube

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"
	ytapi "google.golang.org/api/youtube/v3"
)

// Channel is a snapshot of channel metadata. Fields missing in API response are left zero.
type Channel struct {
	ID                string
	Name              string
	Description       string
	CustomURL         string
	Country           string
	Thumbnail         string
	UploadsPlaylist   string
	Subscribers       int64
	HiddenSubscribers bool
	Views             int64
	Videos            int64
	Created           time.Time
}

// Channel loads channel metadata and statistics by channel id
func (c *Client) Channel(ctx context.Context, id string) (Channel, error) {
	params := url.Values{"part": {"snippet,statistics,contentDetails"}, "id": {id}}
	var resp ytapi.ChannelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return Channel{}, errors.Wrapf(err, "failed to get channel %s", id)
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return Channel{}, &NotFoundError{Kind: "channel", ID: id}
	}

	item := resp.Items[0]
	res := Channel{ID: id}
	if item.Id != "" {
		res.ID = item.Id
	}
	if sn := item.Snippet; sn != nil {
		res.Name = sn.Title
		res.Description = sn.Description
		res.CustomURL = sn.CustomUrl
		res.Country = sn.Country
		res.Thumbnail = thumbnail(sn.Thumbnails)
		if ts, err := time.Parse(time.RFC3339, sn.PublishedAt); err == nil {
			res.Created = ts
		}
	}
	if st := item.Statistics; st != nil {
		res.Subscribers = int64(st.SubscriberCount)
		res.HiddenSubscribers = st.HiddenSubscriberCount
		res.Views = int64(st.ViewCount)
		res.Videos = int64(st.VideoCount)
	}
	if cd := item.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		res.UploadsPlaylist = cd.RelatedPlaylists.Uploads
	}
	return res, nil
}

// thumbnail picks high quality thumbnail url, falls back to lower ones
func thumbnail(td *ytapi.ThumbnailDetails) string {
	if td == nil {
		return ""
	}
	for _, t := range []*ytapi.Thumbnail{td.High, td.Medium, td.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
