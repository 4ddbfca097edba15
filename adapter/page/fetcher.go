package page

import (
	"context"
	"io"
	"net/http"
	"time"

	"pagewatch/domain"
)

// Fetcher performs a plain GET against the watched page. When
// conditional is on, the validators from the previous snapshot are sent
// and a 304 is reported as NotModified instead of an error.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	conditional bool
}

func NewFetcher(timeout time.Duration, userAgent string, conditional bool) *Fetcher {
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		conditional: conditional,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string, prev domain.Snapshot) (domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return domain.FetchResult{}, &domain.FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.conditional {
		if prev.ETag != "" {
			req.Header.Set("If-None-Match", prev.ETag)
		}
		if prev.LastModified != "" {
			req.Header.Set("If-Modified-Since", prev.LastModified)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.FetchResult{}, &domain.FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return domain.FetchResult{
			NotModified:  true,
			ETag:         prev.ETag,
			LastModified: prev.LastModified,
		}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.FetchResult{}, &domain.FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FetchResult{}, &domain.FetchError{URL: pageURL, Err: err}
	}
	return domain.FetchResult{
		Body:         body,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}
