package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30*time.Second, "go-jmap-sync/dev")
//	resp, err := client.R().SetBody(req).Post("https://mail.example.com/jmap/api/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that speaks JSON and bounds every request
// by timeout. A zero timeout disables the bound; an empty userAgent keeps
// resty's default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
