package service

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	mail     MailService
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	queries map[string]models.EmailQuery
}

// NewSyncJob creates a syncJob that calls mail.RefreshAll on a ticker, then
// reconciles every watched query window. The job is idle until Start or Run
// is called.
func NewSyncJob(mail MailService, interval time.Duration, logger *logger.Logger) SyncJob {
	return &syncJob{mail: mail, interval: interval, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Watch implements SyncJob.
func (j *syncJob) Watch(query models.EmailQuery) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.queries == nil {
		j.queries = make(map[string]models.EmailQuery)
	}
	j.queries[query.Fingerprint()] = query
}

func (j *syncJob) watched() []models.EmailQuery {
	j.mu.Lock()
	defer j.mu.Unlock()

	return slices.Collect(maps.Values(j.queries))
}

// Run implements workers.Worker: it starts the job with the configured
// interval and blocks until ctx is done.
func (j *syncJob) Run(ctx context.Context) {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
}

func (j *syncJob) tick(ctx context.Context) {
	status, err := j.mail.RefreshAll(ctx).Await(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Msg("background refresh failed")
		}
		return
	}
	j.logger.Debug().Stringer("status", status).Msg("background refresh finished")

	for _, query := range j.watched() {
		if _, err = j.mail.Query(ctx, query).Await(ctx); err != nil {
			if ctx.Err() == nil {
				j.logger.Err(err).Msg("background query refresh failed")
			}
			return
		}
	}
}
