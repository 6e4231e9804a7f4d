package web

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kotoba/cache"
)

// Fetcher retrieves URLs over HTTP with gzip encoding, optionally remembering
// responses in a cache store so repeated fetches of stable resources skip the
// network.
type Fetcher struct {
	client *http.Client
	store  cache.Store
	log    zerolog.Logger
}

// NewFetcher creates a fetcher. A nil client falls back to
// http.DefaultClient; a nil store disables caching.
func NewFetcher(client *http.Client, store cache.Store) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client: client,
		store:  store,
		log:    log.With().Str("component", "web").Logger(),
	}
}

func (f *Fetcher) fetchBody(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("web: bad request %s: %w", rawURL, err)
	}
	// Set manually so servers without gzip still answer; Go's transparent
	// decompression is off when the header is explicit.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("web: fetch %s: status %s", rawURL, resp.Status)
	}

	body := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("web: gunzip %s: %w", rawURL, err)
		}
		defer zr.Close()
		body = zr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("web: read %s: %w", rawURL, err)
	}
	return data, nil
}

// Fetch retrieves a URL, consulting the cache first when one is configured.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if f.store != nil {
		if data, err := f.store.Get(ctx, rawURL); err == nil {
			f.log.Debug().Str("url", rawURL).Msg("cache hit")
			return data, nil
		} else if !errors.Is(err, cache.ErrNotFound) {
			return nil, err
		}
	}
	data, err := f.fetchBody(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if f.store != nil {
		if err := f.store.Set(ctx, rawURL, data); err != nil && !errors.Is(err, cache.ErrKeyExists) {
			f.log.Warn().Err(err).Str("url", rawURL).Msg("cache write failed")
		}
	}
	return data, nil
}

// FetchFresh retrieves a URL from the network regardless of the cache and
// replaces any cached copy.
func (f *Fetcher) FetchFresh(ctx context.Context, rawURL string) ([]byte, error) {
	data, err := f.fetchBody(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if f.store != nil {
		if err := f.store.Delete(ctx, rawURL); err != nil {
			return nil, err
		}
		if err := f.store.Set(ctx, rawURL, data); err != nil {
			f.log.Warn().Err(err).Str("url", rawURL).Msg("cache write failed")
		}
	}
	return data, nil
}

// FetchString retrieves a URL as a string.
func (f *Fetcher) FetchString(ctx context.Context, rawURL string) (string, error) {
	data, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FetchJSON retrieves a URL and decodes the body into v.
func (f *Fetcher) FetchJSON(ctx context.Context, rawURL string, v any) error {
	data, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("web: decode %s: %w", rawURL, err)
	}
	return nil
}

// Download fetches a URL into a local file. An existing file is left alone
// and reported with false; a fresh download returns true.
func (f *Fetcher) Download(ctx context.Context, rawURL, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		f.log.Debug().Str("path", path).Msg("file exists, skipping download")
		return false, nil
	}
	data, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("web: write %s: %w", path, err)
	}
	return true, nil
}
