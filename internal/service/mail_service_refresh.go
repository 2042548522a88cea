package service

import (
	"context"

	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
	"golang.org/x/sync/errgroup"
)

func (s *mailService) Refresh(ctx context.Context) *workers.Future[models.Status] {
	return workers.Async(ctx, func(ctx context.Context) (models.Status, error) {
		return s.repeat(ctx, "refresh", s.refreshOnce)
	})
}

func (s *mailService) refreshOnce(ctx context.Context) (models.Status, error) {
	objects, err := s.objectsState(ctx)
	if err != nil {
		return models.StatusUnchanged, err
	}

	b := s.batches.New()
	p := s.piggyback(b, objects)
	b.Execute(ctx)

	return p.run(ctx)
}

func (s *mailService) RefreshMailboxes(ctx context.Context) *workers.Future[models.Status] {
	return workers.Async(ctx, func(ctx context.Context) (models.Status, error) {
		return s.repeat(ctx, "refresh mailboxes", func(ctx context.Context) (models.Status, error) {
			objects, err := s.objectsState(ctx)
			if err != nil {
				return models.StatusUnchanged, err
			}

			b := s.batches.New()
			p := plan{s.syncMailboxes(b, objects.MailboxState)}
			b.Execute(ctx)

			return p.run(ctx)
		})
	})
}

func (s *mailService) RefreshIdentities(ctx context.Context) *workers.Future[models.Status] {
	return workers.Async(ctx, func(ctx context.Context) (models.Status, error) {
		return s.repeat(ctx, "refresh identities", s.refreshIdentitiesOnce)
	})
}

func (s *mailService) refreshIdentitiesOnce(ctx context.Context) (models.Status, error) {
	state, err := workers.Do(ctx, s.queue, func() (string, error) {
		return s.cache.IdentityState(), nil
	})
	if err != nil {
		return models.StatusUnchanged, err
	}

	b := s.batches.New()
	var apply step
	if state == "" {
		get := b.Add(models.KindIdentity, models.VerbGet, models.GetCall{AccountID: s.accountID})
		apply = func(ctx context.Context) (models.Status, error) {
			resp, err := batch.Main[models.GetResponse[models.Identity]](ctx, get)
			if err != nil {
				return models.StatusUnchanged, err
			}
			err = workers.Run(ctx, s.queue, func() error {
				s.cache.SetIdentities(resp.State, resp.List)
				return nil
			})
			return models.StatusUpdated, err
		}
	} else {
		apply = enqueueUpdate(s, b, models.KindIdentity, state, getProperties{}, s.cache.UpdateIdentities)
	}
	b.Execute(ctx)

	return apply(ctx)
}

func (s *mailService) RefreshAll(ctx context.Context) *workers.Future[models.Status] {
	return workers.Async(ctx, func(ctx context.Context) (models.Status, error) {
		var objects, identities models.Status

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			objects, err = s.Refresh(gctx).Await(gctx)
			return err
		})
		g.Go(func() (err error) {
			identities, err = s.RefreshIdentities(gctx).Await(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return models.StatusUnchanged, err
		}

		return models.ReduceStatus(objects, identities), nil
	})
}
