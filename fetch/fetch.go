// Package fetch resolves endpoint URIs to their textual content.
//
// It is a collaborator of the cache, not part of it: Fetch performs no
// retries and no caching of its own. Callers wanting memoization wrap
// a Fetcher with Cached, which routes results through a
// tiercache.Cache[string].
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/unkn0wn-root/tiercache"
)

// ErrInvalidEndpoint reports a URI whose scheme no Fetcher handles.
var ErrInvalidEndpoint = errors.New("fetch: invalid endpoint")

// Fetcher resolves a single endpoint URI to UTF-8 text.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (string, error)
}

// HTTP fetches http:// and https:// endpoints with a GET request and
// returns the response body as text. The body is returned for any
// response status; callers that care about HTTP-level failures should
// inspect the endpoint service's payload conventions.
// The zero value uses http.DefaultClient.
type HTTP struct {
	Client *http.Client
}

func (f HTTP) Fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch: read %s: %w", endpoint, err)
	}
	return string(body), nil
}

// File fetches file:// endpoints: the path portion is percent-decoded
// and read from the local filesystem as UTF-8 text.
type File struct{}

func (File) Fetch(_ context.Context, endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	path := u.Path // url.Parse percent-decodes the path
	if path == "" {
		path = u.Opaque
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	return string(b), nil
}

// Dispatch selects a Fetcher by the URI scheme at call time.
// The zero value dispatches to HTTP{} and File{}.
type Dispatch struct {
	HTTP Fetcher // http, https; nil => HTTP{}
	File Fetcher // file; nil => File{}
}

var _ Fetcher = Dispatch{}

func (d Dispatch) Fetch(ctx context.Context, endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEndpoint, endpoint, err)
	}
	switch u.Scheme {
	case "http", "https":
		f := d.HTTP
		if f == nil {
			f = HTTP{}
		}
		return f.Fetch(ctx, endpoint)
	case "file":
		f := d.File
		if f == nil {
			f = File{}
		}
		return f.Fetch(ctx, endpoint)
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
}

// Fetch resolves endpoint with the zero-value Dispatch.
func Fetch(ctx context.Context, endpoint string) (string, error) {
	return Dispatch{}.Fetch(ctx, endpoint)
}

// Cached memoizes a Fetcher through a cache: the endpoint URI is the
// cache key, the fetched text is the value. Only successful fetches
// are stored; fetch and cache-write errors propagate to the caller.
func Cached(f Fetcher, cache tiercache.Cache[string]) Fetcher {
	return cachedFetcher{inner: f, cache: cache}
}

type cachedFetcher struct {
	inner Fetcher
	cache tiercache.Cache[string]
}

func (c cachedFetcher) Fetch(ctx context.Context, endpoint string) (string, error) {
	body, err := c.cache.Get(ctx, endpoint)
	if err == nil {
		return body, nil
	}
	if !tiercache.IsNotFound(err) {
		return "", err
	}
	body, err = c.inner.Fetch(ctx, endpoint)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, endpoint, body); err != nil {
		return "", err
	}
	return body, nil
}
