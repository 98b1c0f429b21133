package youtube

import (
	"context"
	"iter"
)

// Source defines how channel videos are listed
type Source string

// enum of listing sources
const (
	SourceSearch  = Source("search")  // search endpoint ordered by date, 100 quota units per page
	SourceUploads = Source("uploads") // uploads playlist of the channel, 1 quota unit per page
)

// VideoIDs returns ids of up to maxCount most recent videos of the channel, newest first.
// Returns less if the channel doesn't have enough videos.
func (c *Client) VideoIDs(ctx context.Context, channelID string, maxCount int) ([]string, error) {
	return collect(c.SearchPages(ctx, channelID, maxCount), maxCount)
}

// UploadIDs returns ids of up to maxCount videos from the uploads playlist
func (c *Client) UploadIDs(ctx context.Context, playlistID string, maxCount int) ([]string, error) {
	return collect(c.UploadPages(ctx, playlistID, maxCount), maxCount)
}

// collect pulls pages until maxCount unique ids collected or pages exhausted
func collect(seq iter.Seq2[Page, error], maxCount int) ([]string, error) {
	res := []string{}
	if maxCount <= 0 {
		return res, nil
	}
	seen := map[string]bool{}
	for page, err := range seq {
		if err != nil {
			return nil, err
		}
		for _, id := range page.IDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			res = append(res, id)
			if len(res) == maxCount {
				return res, nil
			}
		}
	}
	return res, nil
}
