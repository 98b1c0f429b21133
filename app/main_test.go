package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/umputun/yt-scraper/app/export"
	"github.com/umputun/yt-scraper/app/youtube"
)

const channelID = "UCPU28A9z_ka_R5dQfecHJlA"

// fakeYouTube serves a channel with three videos, or quota errors for all requests if quota is set
func fakeYouTube(t *testing.T, quota bool) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		if quota {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":{"code":403,"message":"quota","errors":[{"reason":"quotaExceeded","message":"quota"}]}}`)
			return
		}

		switch strings.TrimPrefix(r.URL.Path, "/v3/") {
		case "channels":
			if r.URL.Query().Get("forHandle") != "" {
				assert.Equal(t, "@gotalks", r.URL.Query().Get("forHandle"))
				fmt.Fprintf(w, `{"items":[{"id":%q}]}`, channelID)
				return
			}
			assert.Equal(t, channelID, r.URL.Query().Get("id"))
			fmt.Fprintf(w, `{"items":[{"id":%q,"snippet":{"title":"Go Talks","publishedAt":"2012-03-05T10:15:30Z"},
				"statistics":{"subscriberCount":"456000","viewCount":"123456789","videoCount":"321"},
				"contentDetails":{"relatedPlaylists":{"uploads":"UUPU28A9z_ka_R5dQfecHJlA"}}}]}`, channelID)
		case "search":
			assert.Equal(t, channelID, r.URL.Query().Get("channelId"))
			fmt.Fprint(w, `{"items":[{"id":{"videoId":"vid1"}},{"id":{"videoId":"vid2"}},{"id":{"videoId":"vid3"}}]}`)
		case "videos":
			assert.Equal(t, "vid1,vid2,vid3", r.URL.Query().Get("id"))
			fmt.Fprint(w, `{"items":[
				{"id":"vid1","snippet":{"title":"first","publishedAt":"2024-05-01T10:00:00Z"},
					"statistics":{"viewCount":"100","likeCount":"10","commentCount":"1"},"contentDetails":{"duration":"PT5M30S"}},
				{"id":"vid2","snippet":{"title":"second","publishedAt":"2024-04-01T10:00:00Z"},
					"statistics":{"viewCount":"200"},"contentDetails":{"duration":"PT1H"}},
				{"id":"vid3","snippet":{"title":"third","publishedAt":"2024-03-01T10:00:00Z"},
					"statistics":{"viewCount":"300","likeCount":"30","commentCount":"3"},"contentDetails":{"duration":"PT0S"}}]}`)
		default:
			t.Errorf("unexpected request %s", r.URL.String())
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRun_Batch(t *testing.T) {
	ts := fakeYouTube(t, false)
	fname := filepath.Join(t.TempDir(), "videos.xlsx")
	opts := options{Key: "test-key", APIURL: ts.URL + "/v3", URL: "https://www.youtube.com/@gotalks/videos", Max: 3,
		Export: true, Out: fname, Batch: true}

	out := bytes.Buffer{}
	require.NoError(t, run(context.Background(), opts, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Channel:     Go Talks ("+channelID+")")
	assert.Contains(t, out.String(), "3 videos:")

	f, err := excelize.OpenFile(fname)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, export.Columns, rows[0])
	assert.Equal(t, "first", rows[1][0])
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", rows[1][1])
	assert.Equal(t, "Medium", rows[1][7])
	assert.Equal(t, "", rows[2][3], "hidden likes")
	assert.Equal(t, "Long", rows[2][7])
	assert.Equal(t, "Low", rows[3][7])
}

func TestRun_Prompts(t *testing.T) {
	ts := fakeYouTube(t, false)
	fname := filepath.Join(t.TempDir(), "prompted.xlsx")
	opts := options{Key: "test-key", APIURL: ts.URL + "/v3", Max: -1, Sort: "views"}
	in := strings.NewReader("@gotalks\n3\ny\n" + fname + "\n")

	out := bytes.Buffer{}
	require.NoError(t, run(context.Background(), opts, in, &out))
	assert.Contains(t, out.String(), "channel url, handle or id: ")
	assert.Contains(t, out.String(), "max videos [50]: ")
	assert.Contains(t, out.String(), "export to excel? [y/N]: ")
	assert.Contains(t, out.String(), "file name [youtube_data.xlsx]: ")
	assert.Contains(t, out.String(), "  1. third\n")

	f, err := excelize.OpenFile(fname)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "third", rows[1][0])
	assert.Equal(t, "second", rows[2][0])
	assert.Equal(t, "first", rows[3][0])
}

func TestRun_NoExport(t *testing.T) {
	ts := fakeYouTube(t, false)
	dir := t.TempDir()
	opts := options{Key: "test-key", APIURL: ts.URL + "/v3", URL: "@gotalks", Max: 3, Out: filepath.Join(dir, "x.xlsx")}

	require.NoError(t, run(context.Background(), opts, strings.NewReader("n\n"), &bytes.Buffer{}))
	_, err := os.Stat(filepath.Join(dir, "x.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Quota(t *testing.T) {
	ts := fakeYouTube(t, true)
	fname := filepath.Join(t.TempDir(), "videos.xlsx")
	opts := options{Key: "test-key", APIURL: ts.URL + "/v3", URL: channelID, Max: 3, Export: true, Out: fname,
		Batch: true}

	err := run(context.Background(), opts, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	var quotaErr *youtube.QuotaExceededError
	assert.True(t, errors.As(err, &quotaErr))
	assert.Contains(t, errorMessage(err), "youtube api quota exceeded")

	_, err = os.Stat(fname)
	assert.True(t, os.IsNotExist(err), "nothing exported")
}

func TestRun_BadParams(t *testing.T) {
	err := run(context.Background(), options{Max: 3, URL: "@gotalks", Batch: true}, strings.NewReader(""), &bytes.Buffer{})
	assert.EqualError(t, err, "bad configuration: youtube api key is not set")

	err = run(context.Background(), options{Key: "test-key", Max: 3, Batch: true}, strings.NewReader(""), &bytes.Buffer{})
	assert.EqualError(t, err, "channel url is not set")

	err = run(context.Background(), options{Key: "test-key", URL: "https://youtu.be/abc", Max: 3, Batch: true},
		strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	var resolveErr *youtube.ResolutionError
	assert.True(t, errors.As(err, &resolveErr))

	err = run(context.Background(), options{Conf: "/tmp/29e28b3c-e1a4-4269-a10b-3e9a89a08d45.yml"},
		strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't load config")
}

func TestErrorMessage(t *testing.T) {
	tbl := []struct {
		err error
		msg string
	}{
		{errors.Wrap(&youtube.QuotaExceededError{Reason: "quotaExceeded", Message: "quota"}, "failed to list"),
			"youtube api quota exceeded, try again after the daily reset or use another key: "},
		{errors.Wrap(&youtube.ResolutionError{Ref: "@nobody", Reason: "no channel found"}, "failed to resolve"),
			`can't find channel "@nobody", check the url or handle: `},
		{errors.Wrap(&youtube.NotFoundError{Kind: "channel", ID: "UC1"}, "failed to load"),
			"channel UC1 is not available: "},
		{&export.Error{File: "/x/y.xlsx", Err: errors.New("no such directory")},
			"can't save /x/y.xlsx, check the path and permissions: "},
		{errors.New("something else"), "something else"},
	}

	for _, tt := range tbl {
		assert.True(t, strings.HasPrefix(errorMessage(tt.err), tt.msg), errorMessage(tt.err))
	}
}

func TestLoadConf(t *testing.T) {
	conf, err := loadConf(options{Key: "k", APIURL: "http://localhost/v3", Source: "uploads", Sort: "likes",
		Out: "out.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "k", conf.API.Key)
	assert.Equal(t, "http://localhost/v3", conf.API.BaseURL)
	assert.Equal(t, youtube.SourceUploads, conf.Scrape.Source)
	assert.Equal(t, "likes", string(conf.Scrape.Sort))
	assert.Equal(t, "out.xlsx", conf.Export.File)
	assert.Equal(t, 50, conf.Scrape.MaxVideos)
}
