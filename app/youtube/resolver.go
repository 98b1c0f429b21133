package youtube

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	ytapi "google.golang.org/api/youtube/v3"
)

// RefKind is a shape of channel reference
type RefKind string

// enum of supported channel reference shapes
const (
	RefID       = RefKind("id")       // /channel/UC... or bare channel id
	RefHandle   = RefKind("handle")   // @handle
	RefUsername = RefKind("username") // /user/name, legacy usernames
	RefCustom   = RefKind("custom")   // /c/name or bare name
)

// Reference is a parsed channel reference
type Reference struct {
	Kind  RefKind
	Value string
}

var (
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	nameRe      = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	handleRe    = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

var youtubeHosts = map[string]bool{"youtube.com": true, "www.youtube.com": true, "m.youtube.com": true}

// single-segment paths which are pages of youtube itself or incomplete prefixes, not channels
var reservedPaths = map[string]bool{"watch": true, "playlist": true, "shorts": true, "results": true,
	"feed": true, "live": true, "embed": true, "channel": true, "user": true, "c": true}

// ParseReference recognizes channel reference shape. Accepts full urls (youtube.com/@handle,
// youtube.com/channel/ID, youtube.com/user/name, youtube.com/c/name, youtube.com/name), the same paths without host
// and bare handles, names or channel ids. Prefixes are matched case-sensitive, trailing tabs like /videos are ignored.
func ParseReference(raw string) (Reference, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return Reference{}, &ResolutionError{Ref: raw, Reason: "empty reference"}
	}
	if channelIDRe.MatchString(ref) {
		return Reference{Kind: RefID, Value: ref}, nil
	}

	path, err := refPath(ref)
	if err != nil {
		return Reference{}, &ResolutionError{Ref: raw, Reason: err.Error()}
	}

	segs := strings.Split(path, "/")
	res := Reference{}
	switch {
	case strings.HasPrefix(segs[0], "@"):
		res = Reference{Kind: RefHandle, Value: strings.TrimPrefix(segs[0], "@")}
	case segs[0] == "channel" && len(segs) > 1:
		res = Reference{Kind: RefID, Value: segs[1]}
	case segs[0] == "user" && len(segs) > 1:
		res = Reference{Kind: RefUsername, Value: segs[1]}
	case segs[0] == "c" && len(segs) > 1:
		res = Reference{Kind: RefCustom, Value: segs[1]}
	case len(segs) == 1 && !reservedPaths[segs[0]]:
		res = Reference{Kind: RefCustom, Value: segs[0]}
	default:
		return Reference{}, &ResolutionError{Ref: raw, Reason: "unsupported url format"}
	}

	valid := nameRe
	if res.Kind == RefHandle {
		valid = handleRe
	}
	if !valid.MatchString(res.Value) {
		return Reference{}, &ResolutionError{Ref: raw, Reason: fmt.Sprintf("invalid %s %q", res.Kind, res.Value)}
	}
	return res, nil
}

// refPath strips scheme, host, query and fragment from the reference and returns the path without leading slash.
// The first segment is treated as a host if it has a dot and isn't a handle.
func refPath(ref string) (string, error) {
	s := ref
	if _, rest, found := strings.Cut(s, "://"); found {
		s = rest
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if !strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "@") {
		host, rest, _ := strings.Cut(s, "/")
		if strings.Contains(host, ".") {
			if !youtubeHosts[strings.ToLower(host)] {
				return "", errors.Errorf("unsupported host %s", host)
			}
			s = rest
		}
	}
	s = strings.Trim(s, "/")
	if s == "" {
		return "", errors.New("no channel in url")
	}
	return s, nil
}

// Resolve turns channel reference into channel id. Channel ids are returned as is,
// handles and legacy usernames are looked up in channels endpoint, custom names are searched.
func (c *Client) Resolve(ctx context.Context, raw string) (string, error) {
	ref, err := ParseReference(raw)
	if err != nil {
		return "", err
	}

	switch ref.Kind {
	case RefID:
		return ref.Value, nil
	case RefHandle:
		return c.lookupChannel(ctx, raw, "forHandle", "@"+ref.Value)
	case RefUsername:
		return c.lookupChannel(ctx, raw, "forUsername", ref.Value)
	default:
		return c.searchChannel(ctx, raw, ref.Value)
	}
}

func (c *Client) lookupChannel(ctx context.Context, raw, param, value string) (string, error) {
	params := url.Values{"part": {"id"}, param: {value}}
	var resp ytapi.ChannelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return "", errors.Wrapf(err, "failed to look up channel %s", value)
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil || resp.Items[0].Id == "" {
		return "", &ResolutionError{Ref: raw, Reason: "no channel found for " + value}
	}
	return resp.Items[0].Id, nil
}

func (c *Client) searchChannel(ctx context.Context, raw, name string) (string, error) {
	params := url.Values{"part": {"id"}, "type": {"channel"}, "maxResults": {"1"}, "q": {name}}
	var resp ytapi.SearchListResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return "", errors.Wrapf(err, "failed to search channel %s", name)
	}
	for _, item := range resp.Items {
		if item != nil && item.Id != nil && item.Id.ChannelId != "" {
			return item.Id.ChannelId, nil
		}
	}
	return "", &ResolutionError{Ref: raw, Reason: "no channel found for " + name}
}
