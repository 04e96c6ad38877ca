package helpers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"sjsage522/kijijiworker/pkg/errors"

	"golang.org/x/net/html/charset"
)

// FetchTarget describes a single outbound page request: one URL with a
// fixed query, header set and cookies. No retries, no header rotation.
type FetchTarget struct {
	URL     string
	Query   url.Values
	Headers map[string]string
	Cookies map[string]string
	Timeout time.Duration
}

// FetchPage sends a single HTTP GET request for the target page, converts
// the response body to UTF-8 (if needed), and returns it as a string.
func FetchPage(ctx context.Context, target FetchTarget) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return "", errors.NewFetch("fetch", "failed to create request", err)
	}

	if len(target.Query) > 0 {
		req.URL.RawQuery = target.Query.Encode()
	}

	for name, value := range target.Headers {
		req.Header.Set(name, value)
	}

	for name, value := range target.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	client := &http.Client{
		Timeout: target.Timeout,
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.NewFetch("fetch", "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewFetch("fetch", "unexpected status code "+resp.Status, nil)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewFetch("fetch", "failed to read response body", err)
	}

	// Determine the encoding from Content-Type header and body content
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, resp.Header.Get("Content-Type"))

	// If already UTF-8, return as is
	if name == "utf-8" || name == "UTF-8" {
		return string(bodyBytes), nil
	}

	// Convert to UTF-8 if necessary
	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return "", errors.NewFetch("fetch", "failed to read converted UTF-8 body", err)
	}

	return buf.String(), nil
}
