// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package batch correlates the invocations of one request with the
// responses of its single round trip.
//
// Call sites add invocations to a [Batch] and receive a [Pending] handle
// each. [Batch.Execute] sends everything in one request on the network
// worker pool and resolves every handle from the batched response:
//   - no response with the invocation's id: [ErrMethodResponseNotFound];
//   - first response named "error": a [*MethodError];
//   - otherwise the main response plus any additional ones.
//
// A transport failure resolves every handle of the batch with that failure.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-jmap-sync/internal/adapter"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/internal/utils"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

type phase int

const (
	phaseOpen phase = iota
	phaseBuilt
	phaseExecuted
)

type call struct {
	invocation models.Invocation
	kind       models.EntityKind
	promise    *workers.Promise[MethodResponses]
}

// Batch collects invocations for one round trip. It is safe for concurrent
// use. Adding after Build or Execute, building twice and executing twice are
// programmer errors and panic.
type Batch struct {
	transport adapter.Transport
	pool      *workers.Pool
	traceID   string
	logger    *logger.Logger

	mu      sync.Mutex
	phase   phase
	calls   []call
	request models.Request
}

// Factory creates batches that share a transport and a worker pool.
type Factory struct {
	transport adapter.Transport
	pool      *workers.Pool
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewFactory(transport adapter.Transport, pool *workers.Pool, logger *logger.Logger) *Factory {
	return &Factory{
		transport: transport,
		pool:      pool,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// New starts an empty batch with a fresh trace id.
func (f *Factory) New() *Batch {
	traceID := f.ids.Generate()
	return &Batch{
		transport: f.transport,
		pool:      f.pool,
		traceID:   traceID,
		logger:    f.logger.WithBatch(traceID),
	}
}

// TraceID identifies the batch in logs.
func (b *Batch) TraceID() string {
	return b.traceID
}

// Len returns the number of invocations added so far.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// Add registers an invocation of kind/verb with args and returns its handle.
func (b *Batch) Add(kind models.EntityKind, verb models.Verb, args any) *Pending {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != phaseOpen {
		panic("batch: Add called after Build or Execute")
	}

	id := strconv.Itoa(len(b.calls))
	name := models.MethodName(kind, verb)
	promise := workers.NewPromise[MethodResponses]()
	b.calls = append(b.calls, call{
		invocation: models.Invocation{Name: name, Args: args, ID: id},
		kind:       kind,
		promise:    promise,
	})

	return &Pending{id: id, name: name, future: promise.Future()}
}

// Build freezes the batch into the request Execute will send.
func (b *Batch) Build() models.Request {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != phaseOpen {
		panic("batch: Build called twice or after Execute")
	}
	return b.build()
}

func (b *Batch) build() models.Request {
	using := []string{models.CapabilityCore}
	invocations := make([]models.Invocation, 0, len(b.calls))
	for _, c := range b.calls {
		if capability := c.kind.Capability(); !slices.Contains(using, capability) {
			using = append(using, capability)
		}
		invocations = append(invocations, c.invocation)
	}

	b.request = models.Request{Using: using, MethodCalls: invocations}
	b.phase = phaseBuilt
	return b.request
}

// Execute sends the batch on the worker pool and returns immediately. The
// returned future resolves with the raw response once every handle has been
// resolved, or with the transport failure.
func (b *Batch) Execute(ctx context.Context) *workers.Future[models.Response] {
	b.mu.Lock()
	switch b.phase {
	case phaseExecuted:
		b.mu.Unlock()
		panic("batch: Execute called twice")
	case phaseOpen:
		b.build()
	}
	b.phase = phaseExecuted
	req := b.request
	calls := b.calls
	b.mu.Unlock()

	b.logger.Debug().Int("invocations", len(calls)).Msg("executing batch")

	// The slot is awaited without ctx so that a cancelled caller still gets
	// every handle resolved.
	return workers.Go(context.WithoutCancel(ctx), b.pool, func(context.Context) (models.Response, error) {
		defer func() {
			if r := recover(); r != nil {
				rejectAll(calls, fmt.Errorf("%w: %v", workers.ErrTaskPanicked, r))
				panic(r)
			}
		}()

		if err := ctx.Err(); err != nil {
			rejectAll(calls, err)
			return models.Response{}, err
		}

		resp, err := b.transport.Send(ctx, req)
		if err != nil {
			b.logger.Error().Err(err).Int("invocations", len(calls)).Msg("batch round trip failed")
			rejectAll(calls, err)
			return models.Response{}, err
		}

		demux(calls, resp)
		return resp, nil
	})
}

func rejectAll(calls []call, err error) {
	for _, c := range calls {
		c.promise.Reject(err)
	}
}

func demux(calls []call, resp models.Response) {
	byID := make(map[string][]models.ResponseInvocation, len(calls))
	for _, r := range resp.MethodResponses {
		byID[r.ID] = append(byID[r.ID], r)
	}

	for _, c := range calls {
		responses := byID[c.invocation.ID]
		if len(responses) == 0 {
			c.promise.Reject(fmt.Errorf("%w: %s (%s)", ErrMethodResponseNotFound, c.invocation.Name, c.invocation.ID))
			continue
		}

		main, additional := responses[0], responses[1:]
		if main.Name == models.MethodErrorName {
			c.promise.Reject(newMethodError(main, additional))
			continue
		}
		c.promise.Resolve(MethodResponses{Main: main, Additional: additional})
	}
}

func newMethodError(main models.ResponseInvocation, additional []models.ResponseInvocation) *MethodError {
	var result models.MethodErrorResult
	// An undecodable error body still fails the invocation, just untyped.
	if err := json.Unmarshal(main.Result, &result); err != nil || result.Type == "" {
		result.Type = "unknown"
	}
	return &MethodError{Type: result.Type, Description: result.Description, Additional: additional}
}
