// Package caching keeps fetched diary pages on disk for a limited time.
package caching

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".html"

// Cache stores page bodies keyed by their cleaned URL.
// A TTL of zero or less never serves hits.
type Cache struct {
	dir string
	ttl time.Duration
}

func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// cleanURL drops the fragment and lowercases scheme and host, so links
// copied with a "#date" anchor share one entry.
func cleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

func (c *Cache) entryPath(pageURL string) string {
	sum := sha256.Sum256([]byte(cleanURL(pageURL)))
	return filepath.Join(c.dir, fmt.Sprintf("%x", sum)+entryExt)
}

// Get returns the cached body for pageURL while it is younger than the TTL.
func (c *Cache) Get(pageURL string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	path := c.entryPath(pageURL)
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set writes the body through a temp file so readers never see a partial page.
func (c *Cache) Set(pageURL string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, "page-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.entryPath(pageURL)); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
