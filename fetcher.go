package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves directory-listing pages. It keeps no state between calls.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodyBytes,
	}
}

// Fetch GETs folderURL and returns the page body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, folderURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, folderURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("http %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if f.maxBody > 0 {
		body = io.LimitReader(body, f.maxBody)
	}
	// listings from older servers are often latin-1
	utf8Body, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", errors.Wrap(err, "decode listing")
	}
	b, err := io.ReadAll(utf8Body)
	if err != nil {
		return "", errors.Wrap(err, "read listing")
	}
	log.Printf("[fetch] %s -> %d bytes", folderURL, len(b))
	return string(b), nil
}
