package service

import (
	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/internal/store"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
)

type ClientServices struct {
	Mail    MailService
	SyncJob SyncJob
}

func NewClientServices(cfg *config.ClientConfig, cache store.Cache, batches *batch.Factory, queue *workers.Queue, logger *logger.Logger) *ClientServices {
	mail := NewMailService(cfg.Account.ID, cache, batches, queue, cfg.Sync, logger)

	return &ClientServices{
		Mail:    mail,
		SyncJob: NewSyncJob(mail, cfg.Workers.SyncInterval, logger),
	}
}
