// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiPath = "/jmap/api/"

// newTestTransport creates an httpTransport pointed at the test server.
func newTestTransport(t *testing.T, serverURL string) *httpTransport {
	t.Helper()
	cfg := config.ClientAdapter{APIURL: serverURL + apiPath, RequestTimeout: 5 * time.Second}

	tr, err := NewHTTPTransport(cfg, logger.Nop())
	require.NoError(t, err)
	return tr.(*httpTransport)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post(apiPath, handler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func sampleRequest() models.Request {
	return models.Request{
		Using: []string{models.CapabilityCore, models.CapabilityMail},
		MethodCalls: []models.Invocation{
			{Name: "Mailbox/get", Args: models.GetCall{AccountID: "a1"}, ID: "0"},
		},
	}
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestSend_Success(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))

		var req models.Request
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) || !assert.Len(t, req.MethodCalls, 1) {
			return
		}
		assert.Equal(t, "Mailbox/get", req.MethodCalls[0].Name)
		assert.Equal(t, "0", req.MethodCalls[0].ID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"methodResponses":[["Mailbox/get",{"accountId":"a1","state":"s1","list":[]},"0"]],"sessionState":"ss"}`))
	})

	tr := newTestTransport(t, srv.URL)
	tr.SetToken("  opaque-token ")

	resp, err := tr.Send(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "ss", resp.SessionState)
	require.Len(t, resp.MethodResponses, 1)
	assert.Equal(t, "Mailbox/get", resp.MethodResponses[0].Name)
	assert.Equal(t, "0", resp.MethodResponses[0].ID)
}

func TestSend_UserAgent(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "go-jmap-sync/1.2.0 (3f2a1c9)", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"methodResponses":[]}`))
	})

	cfg := config.ClientAdapter{
		APIURL:         srv.URL + apiPath,
		RequestTimeout: 5 * time.Second,
		UserAgent:      models.NewAppBuildInfo("1.2.0", "", "3f2a1c9").UserAgent(),
	}
	tr, err := NewHTTPTransport(cfg, logger.Nop())
	require.NoError(t, err)

	_, err = tr.Send(context.Background(), sampleRequest())
	require.NoError(t, err)
}

func TestSend_NoTokenNoHeader(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"methodResponses":[]}`))
	})

	tr := newTestTransport(t, srv.URL)
	_, err := tr.Send(context.Background(), sampleRequest())
	require.NoError(t, err)
}

func TestSend_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrEndpointNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "plain bad request", status: http.StatusBadRequest, body: "nope", want: ErrBadRequest},
		{
			name:   "problem details",
			status: http.StatusBadRequest,
			body:   `{"type":"urn:ietf:params:jmap:error:unknownCapability","status":400,"detail":"x"}`,
			want:   ErrRequestFailed,
		},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			tr := newTestTransport(t, srv.URL)
			_, err := tr.Send(context.Background(), sampleRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSend_UnknownStatus(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tr := newTestTransport(t, srv.URL)
	_, err := tr.Send(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSend_UndecodableBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"methodResponses":[["Mailbox/get",{}]]}`))
	})

	tr := newTestTransport(t, srv.URL)
	_, err := tr.Send(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrDecodingResponse)
}

func TestSend_ExpiredJWTSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"methodResponses":[]}`))
	})

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("server-key"))
	require.NoError(t, err)

	tr := newTestTransport(t, srv.URL)
	tr.SetToken(expired)

	_, err = tr.Send(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, calls.Load())
}

func TestSend_TransportFailure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	tr := newTestTransport(t, srv.URL)
	srv.Close()

	_, err := tr.Send(context.Background(), sampleRequest())
	assert.Error(t, err)
}

// ── NewHTTPTransport ────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidURL(t *testing.T) {
	_, err := NewHTTPTransport(config.ClientAdapter{APIURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPTransport_AddsScheme(t *testing.T) {
	tr, err := NewHTTPTransport(config.ClientAdapter{APIURL: "mail.example.com/api", AccessToken: "tok"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "http://mail.example.com/api", tr.(*httpTransport).apiURL)
	assert.Equal(t, "tok", tr.Token())
}
