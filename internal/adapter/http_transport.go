package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/internal/utils"
	"github.com/MKhiriev/go-jmap-sync/models"
)

type httpTransport struct {
	client *utils.HTTPClient
	apiURL string

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP implementation of [Transport]. Every
// batch is POSTed as JSON to adapterCfg.APIURL with the configured request
// timeout and, when set, a bearer token.
//
// Returns an error if adapterCfg.APIURL is empty or not an absolute URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	apiURL, err := normalizeAPIURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	t := &httpTransport{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.UserAgent),
		apiURL: apiURL,
		now:    time.Now,
		logger: logger,
	}
	t.SetToken(adapterCfg.AccessToken)

	return t, nil
}

func normalizeAPIURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// SetToken implements [Transport]. The token is stored whitespace-trimmed.
func (h *httpTransport) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [Transport].
func (h *httpTransport) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Send implements [Transport]. A JWT access token whose exp claim has passed
// fails with [ErrUnauthorized] without a network call.
func (h *httpTransport) Send(ctx context.Context, req models.Request) (models.Response, error) {
	token := h.Token()
	if token != "" && utils.TokenExpired(token, h.now()) {
		return models.Response{}, fmt.Errorf("%w: access token expired", ErrUnauthorized)
	}

	r := h.client.R().
		SetContext(ctx).
		SetBody(req)
	if token != "" {
		r.SetAuthToken(token)
	}

	resp, err := r.Post(h.apiURL)
	if err != nil {
		return models.Response{}, fmt.Errorf("api request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Int("status", resp.StatusCode()).Msg("api request rejected")
		return models.Response{}, err
	}

	var out models.Response
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Response{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return out, nil
}
