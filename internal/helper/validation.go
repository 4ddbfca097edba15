package helper

import (
	"fmt"
	"net/url"
)

// IsValidURL checks that pageURL parses and carries an http(s) scheme.
// No probe request is made; the run itself is the probe.
func IsValidURL(pageURL string) error {
	u, err := url.ParseRequestURI(pageURL)
	if err != nil {
		return fmt.Errorf("invalid page URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	return nil
}
