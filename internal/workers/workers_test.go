// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker records how many times Run was called and returns once ctx
// is done.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	ws.Run(ctx)

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestWorkers_Run_ReturnsAfterCancel(t *testing.T) {
	ws := NewWorkers(&countingWorker{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
