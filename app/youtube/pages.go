package youtube

import (
	"context"
	"iter"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	ytapi "google.golang.org/api/youtube/v3"
)

// Page is a single page of video ids from a paginated endpoint
type Page struct {
	IDs  []string
	Next string // token of the next page, empty for the last one
}

type pageFetcher func(ctx context.Context, token string) (Page, error)

// pages makes a lazy sequence of pages. Nothing is requested until iteration starts,
// every iteration starts over from the first page. Iteration ends after a page without next token
// or right after the first error.
func pages(ctx context.Context, fetch pageFetcher) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		token := ""
		for {
			page, err := fetch(ctx, token)
			if err != nil {
				yield(Page{}, err)
				return
			}
			if !yield(page, nil) || page.Next == "" {
				return
			}
			token = page.Next
		}
	}
}

// SearchPages returns pages of channel videos from search endpoint, newest first
func (c *Client) SearchPages(ctx context.Context, channelID string, size int) iter.Seq2[Page, error] {
	return pages(ctx, func(ctx context.Context, token string) (Page, error) {
		params := url.Values{"part": {"id"}, "channelId": {channelID}, "type": {"video"}, "order": {"date"},
			"maxResults": {strconv.Itoa(pageSize(size))}}
		if token != "" {
			params.Set("pageToken", token)
		}
		var resp ytapi.SearchListResponse
		if err := c.get(ctx, "search", params, &resp); err != nil {
			return Page{}, errors.Wrapf(err, "failed to search videos of %s", channelID)
		}
		page := Page{Next: resp.NextPageToken}
		for _, item := range resp.Items {
			if item != nil && item.Id != nil && item.Id.VideoId != "" {
				page.IDs = append(page.IDs, item.Id.VideoId)
			}
		}
		return page, nil
	})
}

// UploadPages returns pages of videos from the uploads playlist of a channel, newest first
func (c *Client) UploadPages(ctx context.Context, playlistID string, size int) iter.Seq2[Page, error] {
	return pages(ctx, func(ctx context.Context, token string) (Page, error) {
		params := url.Values{"part": {"contentDetails"}, "playlistId": {playlistID},
			"maxResults": {strconv.Itoa(pageSize(size))}}
		if token != "" {
			params.Set("pageToken", token)
		}
		var resp ytapi.PlaylistItemListResponse
		if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
			return Page{}, errors.Wrapf(err, "failed to list playlist %s", playlistID)
		}
		page := Page{Next: resp.NextPageToken}
		for _, item := range resp.Items {
			if item != nil && item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				page.IDs = append(page.IDs, item.ContentDetails.VideoId)
			}
		}
		return page, nil
	})
}

func pageSize(size int) int {
	if size <= 0 || size > maxPerPage {
		return maxPerPage
	}
	return size
}
