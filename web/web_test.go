package web

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kotoba/cache"
)

func TestURLSegments(t *testing.T) {
	u, err := Parse("https://example.org/dict/entries/雨.json?format=json")
	require.NoError(t, err)
	assert.Equal(t, []string{"dict", "entries", "雨.json"}, u.Segments())
	assert.Equal(t, "雨.json", u.Filename())
	assert.Equal(t, "example.org", u.Host())
	assert.Equal(t, "json", u.Query("format"))
}

func TestURLBareHost(t *testing.T) {
	u, err := Parse("https://example.org")
	require.NoError(t, err)
	assert.Empty(t, u.Segments())
	assert.Equal(t, "", u.Filename())
}

func TestURLQueryEditing(t *testing.T) {
	u, err := Parse("https://example.org/search?q=cat&page=2")
	require.NoError(t, err)
	u.SetQuery("q", "dog").DelQuery("page").SetQuery("limit", "10")
	assert.Equal(t, "https://example.org/search?limit=10&q=dog", u.String())
}

func TestURLParseError(t *testing.T) {
	_, err := Parse("http://bad url with spaces\x7f")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain body"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), nil)
	got, err := f.FetchString(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "plain body", got)
}

func TestFetchGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Encoding", "gzip")
		zw := gzip.NewWriter(w)
		zw.Write([]byte("compressed body"))
		zw.Close()
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), nil)
	got, err := f.FetchString(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "compressed body", got)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.Client(), nil).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchReadThroughCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("cached body"))
	}))
	defer srv.Close()

	store, err := cache.OpenBolt(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	defer store.Close()

	f := NewFetcher(srv.Client(), store)
	ctx := context.Background()
	for range 3 {
		got, err := f.FetchString(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "cached body", got)
	}
	assert.Equal(t, int32(1), hits.Load(), "network hit once, cache after")
}

func TestFetchFresh(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("version " + strconv.Itoa(int(hits.Add(1)))))
	}))
	defer srv.Close()

	store, err := cache.OpenBolt(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	defer store.Close()

	f := NewFetcher(srv.Client(), store)
	ctx := context.Background()

	got, err := f.FetchString(ctx, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "version 1", got)

	fresh, err := f.FetchFresh(ctx, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "version 2", string(fresh), "cache is bypassed")

	got, err = f.FetchString(ctx, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "version 2", got, "cached copy was replaced")
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word":"雨","reading":"あめ"}`))
	}))
	defer srv.Close()

	var entry struct {
		Word    string `json:"word"`
		Reading string `json:"reading"`
	}
	err := NewFetcher(srv.Client(), nil).FetchJSON(context.Background(), srv.URL, &entry)
	require.NoError(t, err)
	assert.Equal(t, "雨", entry.Word)
	assert.Equal(t, "あめ", entry.Reading)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("file content"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "out.txt")
	f := NewFetcher(srv.Client(), nil)

	fresh, err := f.Download(context.Background(), srv.URL, path)
	require.NoError(t, err)
	assert.True(t, fresh)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(data))

	// Second download skips the existing file.
	fresh, err = f.Download(context.Background(), srv.URL, path)
	require.NoError(t, err)
	assert.False(t, fresh)
}
