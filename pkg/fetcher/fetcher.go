// Package fetcher loads a diary page from a file, stdin or a URL.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/diary-logs/pkg/caching"
)

// StdinSource reads the page from standard input.
const StdinSource = "-"

var ErrEmptySource = errors.New("no page source given")

type Fetcher struct {
	client *http.Client
	cache  *caching.Cache
	stdin  io.Reader
}

// NewFetcher returns a Fetcher. cache may be nil to always hit the network.
func NewFetcher(cache *caching.Cache) *Fetcher {
	return &Fetcher{
		client: &http.Client{},
		cache:  cache,
		stdin:  os.Stdin,
	}
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// GetHtml loads source and parses it into a document.
func (f *Fetcher) GetHtml(ctx context.Context, source string) (*goquery.Document, []byte, error) {
	body, err := f.GetHtmlBytes(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, body, nil
}

// GetHtmlBytes returns the raw page for source.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == "":
		return nil, ErrEmptySource
	case source == StdinSource:
		body, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return body, nil
	case IsURL(source):
		return f.getURL(ctx, source)
	default:
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read page file: %w", err)
		}
		return body, nil
	}
}

func (f *Fetcher) getURL(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(url); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		_ = f.cache.Set(url, body) // a failed cache write still returns the page
	}
	return body, nil
}
