package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/unkn0wn-root/tiercache"
)

func TestFileScheme(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Fetch(ctx, "file://"+path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q want %q", got, "hello")
	}
}

func TestFileSchemePercentDecoded(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "with space.txt")
	if err := os.WriteFile(path, []byte("ok"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	endpoint := "file://" + (&url.URL{Path: path}).EscapedPath()
	got, err := Fetch(ctx, endpoint)
	if err != nil {
		t.Fatalf("Fetch(%q): %v", endpoint, err)
	}
	if got != "ok" {
		t.Fatalf("got %q want %q", got, "ok")
	}
}

func TestHTTPScheme(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	got, err := Fetch(ctx, srv.URL+"/data")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "payload" {
		t.Fatalf("got %q want %q", got, "payload")
	}
}

func TestUnsupportedSchemeFails(t *testing.T) {
	ctx := context.Background()
	for _, endpoint := range []string{"ftp://host/x", "gopher://x", "not a uri at all"} {
		_, err := Fetch(ctx, endpoint)
		if !errors.Is(err, ErrInvalidEndpoint) {
			t.Fatalf("Fetch(%q): got %v, want ErrInvalidEndpoint", endpoint, err)
		}
	}
}

type countingFetcher struct {
	calls int
	body  string
	err   error
}

func (f *countingFetcher) Fetch(context.Context, string) (string, error) {
	f.calls++
	return f.body, f.err
}

func TestCachedMemoizes(t *testing.T) {
	ctx := context.Background()
	cc, err := tiercache.New[string](tiercache.Options[string]{
		Directory: t.TempDir(),
		Version:   "v1",
	})
	if err != nil {
		t.Fatalf("New cache: %v", err)
	}
	defer cc.Close(ctx)

	inner := &countingFetcher{body: "hello"}
	f := Cached(inner, cc)

	for i := 0; i < 3; i++ {
		got, err := f.Fetch(ctx, "https://example.com/x")
		if err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
		if got != "hello" {
			t.Fatalf("Fetch #%d: got %q", i, got)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", inner.calls)
	}
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	ctx := context.Background()
	cc, err := tiercache.New[string](tiercache.Options[string]{
		Directory: t.TempDir(),
		Version:   "v1",
	})
	if err != nil {
		t.Fatalf("New cache: %v", err)
	}
	defer cc.Close(ctx)

	inner := &countingFetcher{err: errors.New("boom")}
	f := Cached(inner, cc)

	if _, err := f.Fetch(ctx, "https://example.com/x"); err == nil {
		t.Fatalf("expected fetch error")
	}
	// Failure was not cached; the upstream is asked again.
	if _, err := f.Fetch(ctx, "https://example.com/x"); err == nil {
		t.Fatalf("expected fetch error on retry")
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 upstream fetches, got %d", inner.calls)
	}
}
