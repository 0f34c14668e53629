// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch reads raw source text for conversion from local files or
// http(s) URLs. URL fetches go through the shared retry helper and are
// size-capped; everything returned is plain text for the transpiler.
// See docs/ARCHITECTURE § Fetch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pdiddy/prosetex/internal/httputil"
	"github.com/pdiddy/prosetex/pkg/types"
)

// defaultMaxBytes caps fetched documents at 8 MiB unless configured.
const defaultMaxBytes = 8 << 20

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Read returns the raw text behind source: the file contents for a local
// path, the response body for an http(s) URL.
func Read(ctx context.Context, client *http.Client, source string, cfg types.FetchConfig) (string, error) {
	if IsURL(source) {
		return readURL(ctx, client, source, cfg)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(data), nil
}

func readURL(ctx context.Context, client *http.Client, rawURL string, cfg types.FetchConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", rawURL, err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("fetching %s: document exceeds %d byte cap", rawURL, maxBytes)
	}
	return string(data), nil
}

// Slug derives an archive/file identifier from a source path or URL:
// the base name without extension, lowercased, with spaces collapsed to
// hyphens. Empty sources (stdin) yield "document".
func Slug(source string) string {
	if source == "" {
		return "document"
	}
	base := source
	if IsURL(source) {
		if u, err := url.Parse(source); err == nil && u.Path != "" {
			base = u.Path
		}
	}
	base = path.Base(strings.ReplaceAll(base, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.ToLower(strings.TrimSpace(base))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." || base == "/" {
		return "document"
	}
	return base
}
