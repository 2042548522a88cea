// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport collaborator that carries one
// batched request to the JMAP API endpoint and brings back its response.
//
// The primary abstraction is [Transport], which decouples the batch
// correlator from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPTransport]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrEndpointNotFound] for 404, [ErrUnauthorized] for
// 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-jmap-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport sends one batch envelope and returns the decoded batch response.
// A returned error means the whole round trip failed; per-invocation
// failures travel inside the response.
type Transport interface {
	// Send performs one round trip. Implementations must be safe for
	// concurrent use.
	Send(ctx context.Context, req models.Request) (models.Response, error)

	// SetToken replaces the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently in use, or an empty string.
	Token() string
}
