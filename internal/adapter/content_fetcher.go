package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrMalformedDataURI is returned for data: URIs without a payload separator.
var ErrMalformedDataURI = errors.New("malformed data URI")

// ContentFetcher retrieves the body behind a URL.
type ContentFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// LocalContentFetcher reads data URIs, local files and HTTP resources.
type LocalContentFetcher struct {
	http *http.Client
}

// NewLocalContentFetcher constructs a fetcher with the given HTTP timeout.
func NewLocalContentFetcher(timeout time.Duration) *LocalContentFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &LocalContentFetcher{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch implements ContentFetcher.
func (f *LocalContentFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if IsDataURI(rawURL) {
		return decodeDataURI(rawURL)
	}

	if filepath.IsAbs(rawURL) {
		return readFile(rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		p, ok := fileURLToPath(u)
		if !ok {
			return "", fmt.Errorf("invalid file url %q", rawURL)
		}

		return readFile(string(p))
	case "http", "https":
		return f.get(ctx, rawURL)
	case "":
		return readFile(rawURL)
	}

	return "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
}

func (f *LocalContentFetcher) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d when fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func readFile(path string) (string, error) {
	// #nosec G304 -- reading the files the debuggee references is the point
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// decodeDataURI decodes data:[<mediatype>][;base64],<data>.
func decodeDataURI(uri string) (string, error) {
	header, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return "", ErrMalformedDataURI
	}

	if strings.HasSuffix(strings.ToLower(header), ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some bundlers emit unpadded payloads.
			decoded, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return "", fmt.Errorf("failed to decode base64 data URI: %w", err)
			}
		}

		return string(decoded), nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", fmt.Errorf("failed to unescape data URI: %w", err)
	}

	return unescaped, nil
}
