// Package web provides a small URL manipulation helper and an HTTP fetcher
// with gzip support and an optional read-through cache.
package web

import (
	"net/url"
	"strings"
)

// URL wraps a parsed URL with segment and query helpers. The zero value is
// not usable; construct with Parse.
type URL struct {
	u     *url.URL
	query url.Values
}

// Parse parses a raw URL.
func Parse(raw string) (*URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &URL{u: u, query: u.Query()}, nil
}

// Segments returns the path split on slashes, without empty segments.
func (u *URL) Segments() []string {
	var segs []string
	for _, s := range strings.Split(u.u.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Filename returns the last path segment, or "" for a bare host.
func (u *URL) Filename() string {
	segs := u.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Query returns the first value for a query key.
func (u *URL) Query(key string) string { return u.query.Get(key) }

// SetQuery sets a query key, replacing existing values.
func (u *URL) SetQuery(key, value string) *URL {
	u.query.Set(key, value)
	return u
}

// DelQuery removes a query key.
func (u *URL) DelQuery(key string) *URL {
	u.query.Del(key)
	return u
}

// Host returns the URL host.
func (u *URL) Host() string { return u.u.Host }

// String reassembles the URL with the current query.
func (u *URL) String() string {
	clone := *u.u
	clone.RawQuery = u.query.Encode()
	return clone.String()
}
