// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/internal/store"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

const (
	defaultPageSize             = 30
	defaultMaxChangesIterations = 10
)

type mailService struct {
	accountID string
	cache     store.Cache
	batches   *batch.Factory
	queue     *workers.Queue
	cfg       config.ClientSync
	logger    *logger.Logger
}

// NewMailService creates the orchestrator of one account. All cache writes
// are submitted to queue, which must be dedicated to this account.
func NewMailService(accountID string, cache store.Cache, batches *batch.Factory, queue *workers.Queue, cfg config.ClientSync, logger *logger.Logger) MailService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxChangesIterations <= 0 {
		cfg.MaxChangesIterations = defaultMaxChangesIterations
	}

	return &mailService{
		accountID: accountID,
		cache:     cache,
		batches:   batches,
		queue:     queue,
		cfg:       cfg,
		logger:    logger.WithAccount(accountID),
	}
}

func (s *mailService) Mailboxes() []models.Mailbox {
	return s.cache.Mailboxes()
}

func (s *mailService) Identities() []models.Identity {
	return s.cache.Identities()
}

func (s *mailService) QueryItems(query models.EmailQuery) ([]models.QueryResultItem, error) {
	return s.cache.QueryItems(query.Fingerprint())
}

// step applies one piece of a batch response to the cache. It waits for the
// invocations it depends on.
type step func(ctx context.Context) (models.Status, error)

// plan is an ordered list of steps. Mailboxes come before threads, threads
// before emails, so that later state checks see the earlier advances.
type plan []step

func (p plan) run(ctx context.Context) (models.Status, error) {
	statuses := make([]models.Status, 0, len(p))
	for _, st := range p {
		status, err := st(ctx)
		if err != nil {
			return models.StatusUnchanged, err
		}
		statuses = append(statuses, status)
	}
	return models.ReduceStatus(statuses...), nil
}

// repeat runs once until it stops reporting HAS_MORE, at most
// MaxChangesIterations times.
func (s *mailService) repeat(ctx context.Context, op string, once func(ctx context.Context) (models.Status, error)) (models.Status, error) {
	changed := false
	for i := 0; i < s.cfg.MaxChangesIterations; i++ {
		status, err := once(ctx)
		if err != nil {
			s.logger.Err(err).Str("op", op).Int("iteration", i).Msg("sync operation failed")
			return models.StatusUnchanged, err
		}
		if status != models.StatusHasMore {
			status = models.ReduceStatus(models.StatusOf(changed), status)
			s.logger.Debug().Str("op", op).Stringer("status", status).Msg("sync operation finished")
			return status, nil
		}
		changed = true
	}

	s.logger.Warn().
		Str("op", op).
		Int("iterations", s.cfg.MaxChangesIterations).
		Msg("server still reports more changes, giving up for now")
	return models.StatusHasMore, nil
}

func (s *mailService) objectsState(ctx context.Context) (models.ObjectsState, error) {
	return workers.Do(ctx, s.queue, func() (models.ObjectsState, error) {
		return s.cache.ObjectsState(), nil
	})
}

// piggyback enqueues whatever sync of mailboxes, threads and emails is due.
// Mailboxes are loaded when they never were; threads and emails are only
// updated.
func (s *mailService) piggyback(b *batch.Batch, objects models.ObjectsState) plan {
	return append(plan{s.syncMailboxes(b, objects.MailboxState)}, s.syncObjects(b, objects)...)
}

func (s *mailService) syncMailboxes(b *batch.Batch, state string) step {
	if state == "" {
		get := b.Add(models.KindMailbox, models.VerbGet, models.GetCall{AccountID: s.accountID})
		return func(ctx context.Context) (models.Status, error) {
			resp, err := batch.Main[models.GetResponse[models.Mailbox]](ctx, get)
			if err != nil {
				return models.StatusUnchanged, err
			}
			err = workers.Run(ctx, s.queue, func() error {
				s.cache.SetMailboxes(resp.State, resp.List)
				return nil
			})
			return models.StatusUpdated, err
		}
	}

	return enqueueUpdate(s, b, models.KindMailbox, state, getProperties{fromChanges: true}, s.cache.UpdateMailboxes)
}

func (s *mailService) syncObjects(b *batch.Batch, objects models.ObjectsState) plan {
	var p plan
	if objects.ThreadState != "" {
		p = append(p, enqueueUpdate(s, b, models.KindThread, objects.ThreadState, getProperties{}, s.cache.UpdateThreads))
	}
	if objects.EmailState != "" {
		p = append(p, enqueueUpdate(s, b, models.KindEmail, objects.EmailState, getProperties{list: models.EmailMutableProperties}, s.cache.UpdateEmails))
	}
	return p
}

// getProperties selects the properties fetched for updated objects. With
// fromChanges the server's updatedProperties are forwarded by reference;
// with list only those properties are fetched and patched. The zero value
// fetches and replaces whole objects.
type getProperties struct {
	list        []string
	fromChanges bool
}

// enqueueUpdate adds a changes call and the two gets for its created and
// updated ids. The returned step applies the resulting update in the queue.
func enqueueUpdate[T models.Entity](s *mailService, b *batch.Batch, kind models.EntityKind, since string, props getProperties, apply func(models.Update[T]) error) step {
	changes := b.Add(kind, models.VerbChanges, models.ChangesCall{
		AccountID:  s.accountID,
		SinceState: since,
		MaxChanges: s.cfg.MaxChanges,
	})
	created := b.Add(kind, models.VerbGet, models.GetCall{
		AccountID: s.accountID,
		IDsRef:    changes.Ref(models.PathCreated),
	})
	updatedCall := models.GetCall{
		AccountID:  s.accountID,
		IDsRef:     changes.Ref(models.PathUpdated),
		Properties: props.list,
	}
	if props.fromChanges {
		updatedCall.PropertiesRef = changes.Ref(models.PathUpdatedProperties)
	}
	updated := b.Add(kind, models.VerbGet, updatedCall)

	return func(ctx context.Context) (models.Status, error) {
		changesResp, err := batch.Main[models.ChangesResponse](ctx, changes)
		if err != nil {
			return models.StatusUnchanged, err
		}
		createdResp, err := batch.Main[models.GetResponse[T]](ctx, created)
		if err != nil {
			return models.StatusUnchanged, err
		}
		updatedResp, err := batch.Main[models.GetResponse[T]](ctx, updated)
		if err != nil {
			return models.StatusUnchanged, err
		}

		update := models.NewUpdate(changesResp, createdResp, updatedResp)
		if props.list != nil {
			update.Properties = props.list
		}
		if !update.HasChanges() {
			return update.Status(), nil
		}

		if err = workers.Run(ctx, s.queue, func() error { return apply(update) }); err != nil {
			return models.StatusUnchanged, fmt.Errorf("apply %s update: %w", kind, err)
		}
		return update.Status(), nil
	}
}

// storeThreads and storeEmails insert fetched objects, loading the type if it
// was never synced. They must run in the queue.
func (s *mailService) storeThreads(state string, threads []models.Thread) error {
	if s.cache.ObjectsState().ThreadState == "" {
		s.cache.SetThreads(state, threads)
		return nil
	}
	return s.cache.AddThreads(state, threads)
}

func (s *mailService) storeEmails(state string, emails []models.Email) error {
	if s.cache.ObjectsState().EmailState == "" {
		s.cache.SetEmails(state, emails)
		return nil
	}
	return s.cache.AddEmails(state, emails)
}

// checkEmailState reports a conflict if state cannot be stored against the
// cached emails. It must run in the queue.
func (s *mailService) checkEmailState(state string) error {
	current := s.cache.ObjectsState().EmailState
	if current != "" && current != state {
		return fmt.Errorf("%w: email state is %q, response has %q", store.ErrCacheConflict, current, state)
	}
	return nil
}
