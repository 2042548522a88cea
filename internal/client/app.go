package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-jmap-sync/internal/adapter"
	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/internal/service"
	"github.com/MKhiriev/go-jmap-sync/internal/store"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

type App struct {
	services *service.ClientServices
	pool     *workers.Pool
	queue    *workers.Queue
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

// NewApp wires the transport, the cache and the services of the configured
// account.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	transport, err := adapter.NewHTTPTransport(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	pool := workers.NewPool(cfg.Workers.PoolSize)
	queue := workers.NewQueue()
	cache := store.NewMemoryCache(logger)
	batches := batch.NewFactory(transport, pool, logger)

	return &App{
		services: service.NewClientServices(cfg, cache, batches, queue, logger),
		pool:     pool,
		queue:    queue,
		cfg:      cfg,
		logger:   logger.WithAccount(cfg.Account.ID),
	}, nil
}

// Run syncs the account once, then keeps it in sync in the background until
// the process receives a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	if err := a.syncMailbox(ctx); err != nil {
		return err
	}

	a.logger.Info().Dur("interval", a.cfg.Workers.SyncInterval).Msg("background sync started")
	workers.NewWorkers(a.services.SyncJob).Run(ctx)
	a.logger.Info().Msg("client stopped gracefully")

	return nil
}

// syncMailbox refreshes everything and loads the first page of the mailbox
// with the configured role.
func (a *App) syncMailbox(ctx context.Context) error {
	mail := a.services.Mail

	status, err := mail.RefreshAll(ctx).Await(ctx)
	if err != nil {
		return fmt.Errorf("initial sync: %w", err)
	}
	a.logger.Info().
		Stringer("status", status).
		Int("mailboxes", len(mail.Mailboxes())).
		Int("identities", len(mail.Identities())).
		Msg("account synced")

	mailbox, ok := models.FindMailboxByRole(mail.Mailboxes(), a.cfg.Sync.MailboxRole)
	if !ok {
		a.logger.Warn().Str("role", a.cfg.Sync.MailboxRole).Msg("no mailbox with role, skipping query")
		return nil
	}

	query := models.InMailbox(mailbox.ID)
	if _, err = mail.Query(ctx, query).Await(ctx); err != nil {
		return fmt.Errorf("query %s: %w", mailbox.Name, err)
	}
	items, err := mail.QueryItems(query)
	if err != nil {
		return fmt.Errorf("read %s: %w", mailbox.Name, err)
	}
	a.logger.Info().Str("mailbox", mailbox.Name).Int("emails", len(items)).Msg("mailbox loaded")
	a.services.SyncJob.Watch(query)

	return nil
}

func (a *App) close() {
	a.services.SyncJob.Stop()
	a.pool.Wait()
	a.queue.Close()
}
