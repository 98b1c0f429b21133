// Package youtube provides a small client for YouTube Data API v3. It resolves channel references,
// loads channel metadata, lists recent videos of a channel and loads video details.
// All calls are sequential, the api key is sent with every request.
package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// DefaultBaseURL is the root of YouTube Data API v3
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// maxPerPage is the API limit for both page size and ids per videos request
const maxPerPage = 50

// Client makes requests to YouTube Data API
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

// get requests endpoint with params and decodes json response into res.
// Quota exhaustion is reported as *QuotaExceededError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, res interface{}) error {
	log.Printf("[DEBUG] youtube api %s?%s", endpoint, params.Encode())

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("key", c.APIKey)

	reqURL := strings.TrimSuffix(c.baseURL(), "/") + "/" + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return errors.Wrapf(err, "failed to create request for %s", endpoint)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		// the error from http client includes url with the key
		return errors.Errorf("failed to get %s: %v", endpoint, redactKey(err, c.APIKey))
	}
	defer resp.Body.Close() // nolint

	if err = googleapi.CheckResponse(resp); err != nil {
		if qerr := quotaError(err); qerr != nil {
			return qerr
		}
		return errors.Wrapf(err, "%s request rejected", endpoint)
	}

	if err = json.NewDecoder(resp.Body).Decode(res); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", endpoint)
	}
	return nil
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: 30 * time.Second}
	}
	return c.HTTPClient
}

func redactKey(err error, key string) string {
	if key == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), key, "****")
}
