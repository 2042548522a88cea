package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/store"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

// methodErrorCannotCalculateChanges is returned by queryChanges when the
// server no longer knows the old query state.
const methodErrorCannotCalculateChanges = "cannotCalculateChanges"

func (s *mailService) Query(ctx context.Context, query models.EmailQuery) *workers.Future[models.Status] {
	fp := query.Fingerprint()

	return workers.Async(ctx, func(ctx context.Context) (models.Status, error) {
		return s.repeat(ctx, "query", func(ctx context.Context) (models.Status, error) {
			window, err := s.queryState(ctx, fp)
			if err != nil {
				return models.StatusUnchanged, err
			}
			if window.QueryState == "" {
				return s.initialQuery(ctx, query, fp, window.Objects)
			}
			return s.refreshQuery(ctx, query, fp, window)
		})
	})
}

func (s *mailService) queryState(ctx context.Context, fp string) (models.QueryWindowState, error) {
	return workers.Do(ctx, s.queue, func() (models.QueryWindowState, error) {
		return s.cache.QueryState(fp), nil
	})
}

// initialQuery fetches the first page of query. When threads or emails were
// never synced it loads the referenced ones in the same batch.
func (s *mailService) initialQuery(ctx context.Context, query models.EmailQuery, fp string, objects models.ObjectsState) (models.Status, error) {
	b := s.batches.New()
	p := s.piggyback(b, objects)

	ids := b.Add(models.KindEmail, models.VerbQuery, models.QueryCall{
		AccountID:       s.accountID,
		Filter:          query.Filter,
		Sort:            query.Sort,
		Limit:           s.cfg.PageSize,
		CollapseThreads: query.CollapseThreads,
	})
	threadIDs := b.Add(models.KindEmail, models.VerbGet, models.GetCall{
		AccountID:  s.accountID,
		IDsRef:     ids.Ref(models.PathIDs),
		Properties: models.ThreadIDProperties,
	})

	load := objects.ThreadState == "" || objects.EmailState == ""
	var threads, emails *batch.Pending
	if load {
		threads = b.Add(models.KindThread, models.VerbGet, models.GetCall{
			AccountID: s.accountID,
			IDsRef:    threadIDs.Ref(models.PathListThreadIDs),
		})
		emails = b.Add(models.KindEmail, models.VerbGet, models.GetCall{
			AccountID: s.accountID,
			IDsRef:    threads.Ref(models.PathListEmailIDs),
		})
	}
	b.Execute(ctx)

	status, err := p.run(ctx)
	if err != nil || status == models.StatusHasMore {
		return status, err
	}

	result, err := queryResult(ctx, ids, threadIDs)
	if err != nil {
		return models.StatusUnchanged, err
	}
	if result.Position != 0 {
		return models.StatusUnchanged, fmt.Errorf("%w: first page starts at %d", ErrUnexpectedQueryPosition, result.Position)
	}

	if !load {
		if err = workers.Run(ctx, s.queue, func() error { return s.cache.SetQueryResult(fp, result) }); err != nil {
			return models.StatusUnchanged, err
		}
		missing, err := s.fetchMissing(ctx, fp)
		if err != nil {
			return models.StatusUnchanged, err
		}
		return models.ReduceStatus(models.StatusUpdated, missing), nil
	}

	threadsResp, err := batch.Main[models.GetResponse[models.Thread]](ctx, threads)
	if err != nil {
		return models.StatusUnchanged, err
	}
	emailsResp, err := batch.Main[models.GetResponse[models.Email]](ctx, emails)
	if err != nil {
		return models.StatusUnchanged, err
	}

	err = workers.Run(ctx, s.queue, func() error {
		if err := s.checkEmailState(emailsResp.State); err != nil {
			return err
		}
		if emailsResp.State != result.EmailState {
			return fmt.Errorf("%w: emails at %q, query at %q", store.ErrCacheConflict, emailsResp.State, result.EmailState)
		}
		if err := s.storeThreads(threadsResp.State, threadsResp.List); err != nil {
			return err
		}
		if err := s.storeEmails(emailsResp.State, emailsResp.List); err != nil {
			return err
		}
		return s.cache.SetQueryResult(fp, result)
	})
	if err != nil {
		return models.StatusUnchanged, err
	}

	return models.StatusUpdated, nil
}

// refreshQuery reconciles the cached window with the server. If the server
// cannot calculate the changes the window is fetched again from scratch.
func (s *mailService) refreshQuery(ctx context.Context, query models.EmailQuery, fp string, window models.QueryWindowState) (models.Status, error) {
	b := s.batches.New()
	p := s.piggyback(b, window.Objects)
	changes, added := s.enqueueQueryChanges(b, query, window)
	b.Execute(ctx)

	status, err := p.run(ctx)
	if err != nil || status == models.StatusHasMore {
		return status, err
	}

	update, err := queryUpdate(ctx, changes, added)
	var methodErr *batch.MethodError
	if errors.As(err, &methodErr) && methodErr.Type == methodErrorCannotCalculateChanges {
		s.logger.Info().Str("query_state", window.QueryState).Msg("query changes unavailable, fetching the window again")
		objects, err := s.objectsState(ctx)
		if err != nil {
			return models.StatusUnchanged, err
		}
		return s.initialQuery(ctx, query, fp, objects)
	}
	if err != nil {
		return models.StatusUnchanged, err
	}

	if update.HasChanges() {
		if err = workers.Run(ctx, s.queue, func() error { return s.cache.UpdateQueryResult(fp, update) }); err != nil {
			return models.StatusUnchanged, err
		}
	}

	missing, err := s.fetchMissing(ctx, fp)
	if err != nil {
		return models.StatusUnchanged, err
	}
	return models.ReduceStatus(status, update.Status(), missing), nil
}

func (s *mailService) QueryPage(ctx context.Context, query models.EmailQuery, afterEmailID string) *workers.Future[bool] {
	fp := query.Fingerprint()

	return workers.Async(ctx, func(ctx context.Context) (bool, error) {
		window, err := s.queryState(ctx, fp)
		if err != nil {
			return false, err
		}
		if window.QueryState == "" || window.UpTo != afterEmailID {
			return false, fmt.Errorf("%w: window ends at %q, page requested after %q", ErrInconsistentQueryState, window.UpTo, afterEmailID)
		}

		b := s.batches.New()
		p := s.piggyback(b, window.Objects)
		changes, added := s.enqueueQueryChanges(b, query, window)
		ids := b.Add(models.KindEmail, models.VerbQuery, models.QueryCall{
			AccountID:       s.accountID,
			Filter:          query.Filter,
			Sort:            query.Sort,
			Anchor:          afterEmailID,
			AnchorOffset:    1,
			Limit:           s.cfg.PageSize,
			CollapseThreads: query.CollapseThreads,
		})
		threadIDs := b.Add(models.KindEmail, models.VerbGet, models.GetCall{
			AccountID:  s.accountID,
			IDsRef:     ids.Ref(models.PathIDs),
			Properties: models.ThreadIDProperties,
		})
		b.Execute(ctx)

		status, err := p.run(ctx)
		if err != nil {
			return false, err
		}
		if status == models.StatusHasMore {
			s.logger.Debug().Msg("objects still catching up, page not stored")
			return false, nil
		}

		update, err := queryUpdate(ctx, changes, added)
		if err != nil {
			return false, err
		}
		page, err := queryResult(ctx, ids, threadIDs)
		if err != nil {
			return false, err
		}

		err = workers.Run(ctx, s.queue, func() error {
			if update.HasChanges() {
				if err := s.cache.UpdateQueryResult(fp, update); err != nil {
					return err
				}
			}
			return s.cache.AddQueryResult(fp, page)
		})
		if err != nil {
			return false, err
		}

		if _, err = s.fetchMissing(ctx, fp); err != nil {
			return false, err
		}
		return len(page.Items) > 0, nil
	})
}

func (s *mailService) enqueueQueryChanges(b *batch.Batch, query models.EmailQuery, window models.QueryWindowState) (changes, added *batch.Pending) {
	changes = b.Add(models.KindEmail, models.VerbQueryChanges, models.QueryChangesCall{
		AccountID:       s.accountID,
		Filter:          query.Filter,
		Sort:            query.Sort,
		SinceQueryState: window.QueryState,
		MaxChanges:      s.cfg.MaxChanges,
		UpToID:          window.UpTo,
		CollapseThreads: query.CollapseThreads,
	})
	added = b.Add(models.KindEmail, models.VerbGet, models.GetCall{
		AccountID:  s.accountID,
		IDsRef:     changes.Ref(models.PathAddedIDs),
		Properties: models.ThreadIDProperties,
	})
	return changes, added
}

func queryResult(ctx context.Context, ids, threadIDs *batch.Pending) (models.QueryResult, error) {
	idsResp, err := batch.Main[models.QueryResponse](ctx, ids)
	if err != nil {
		return models.QueryResult{}, err
	}
	threadIDsResp, err := batch.Main[models.GetResponse[models.Email]](ctx, threadIDs)
	if err != nil {
		return models.QueryResult{}, err
	}
	return models.NewQueryResult(idsResp, threadIDsResp)
}

func queryUpdate(ctx context.Context, changes, added *batch.Pending) (models.QueryUpdate, error) {
	changesResp, err := batch.Main[models.QueryChangesResponse](ctx, changes)
	if err != nil {
		return models.QueryUpdate{}, err
	}
	addedResp, err := batch.Main[models.GetResponse[models.Email]](ctx, added)
	if err != nil {
		return models.QueryUpdate{}, err
	}
	return models.NewQueryUpdate(changesResp, addedResp)
}

// fetchMissing backfills the threads and emails referenced by the window of
// fp that are not cached yet.
func (s *mailService) fetchMissing(ctx context.Context, fp string) (models.Status, error) {
	missing, err := workers.Do(ctx, s.queue, func() (models.Missing, error) {
		return s.cache.Missing(fp)
	})
	if err != nil || missing.IsEmpty() {
		return models.StatusUnchanged, err
	}

	b := s.batches.New()
	p := s.syncObjects(b, models.ObjectsState{ThreadState: missing.ThreadState, EmailState: missing.EmailState})

	var threads, threadEmails, emails *batch.Pending
	if len(missing.ThreadIDs) > 0 {
		threads = b.Add(models.KindThread, models.VerbGet, models.GetCall{
			AccountID: s.accountID,
			IDs:       missing.ThreadIDs,
		})
		threadEmails = b.Add(models.KindEmail, models.VerbGet, models.GetCall{
			AccountID: s.accountID,
			IDsRef:    threads.Ref(models.PathListEmailIDs),
		})
	}
	if len(missing.EmailIDs) > 0 {
		emails = b.Add(models.KindEmail, models.VerbGet, models.GetCall{
			AccountID: s.accountID,
			IDs:       missing.EmailIDs,
		})
	}
	b.Execute(ctx)

	status, err := p.run(ctx)
	if err != nil || status == models.StatusHasMore {
		return status, err
	}

	var (
		threadsResp models.GetResponse[models.Thread]
		fetched     []models.GetResponse[models.Email]
	)
	if threads != nil {
		if threadsResp, err = batch.Main[models.GetResponse[models.Thread]](ctx, threads); err != nil {
			return models.StatusUnchanged, err
		}
		resp, err := batch.Main[models.GetResponse[models.Email]](ctx, threadEmails)
		if err != nil {
			return models.StatusUnchanged, err
		}
		fetched = append(fetched, resp)
	}
	if emails != nil {
		resp, err := batch.Main[models.GetResponse[models.Email]](ctx, emails)
		if err != nil {
			return models.StatusUnchanged, err
		}
		fetched = append(fetched, resp)
	}

	err = workers.Run(ctx, s.queue, func() error {
		for _, resp := range fetched {
			if resp.State != fetched[0].State {
				return fmt.Errorf("%w: emails fetched at %q and %q", store.ErrCacheConflict, fetched[0].State, resp.State)
			}
			if err := s.checkEmailState(resp.State); err != nil {
				return err
			}
		}
		if threads != nil {
			if err := s.storeThreads(threadsResp.State, threadsResp.List); err != nil {
				return err
			}
		}
		for _, resp := range fetched {
			if err := s.storeEmails(resp.State, resp.List); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.StatusUnchanged, fmt.Errorf("store missing objects: %w", err)
	}

	s.logger.Debug().
		Int("threads", len(missing.ThreadIDs)).
		Int("emails", len(missing.EmailIDs)).
		Msg("missing objects fetched")
	return models.StatusUpdated, nil
}
