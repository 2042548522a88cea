package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds settings used by the HTTP transport.
type ClientAdapter struct {
	// APIURL is the JMAP API endpoint.
	APIURL string
	// AccessToken is the bearer token.
	AccessToken string
	// RequestTimeout bounds one round trip.
	RequestTimeout time.Duration
	// UserAgent is sent with every request when set. It comes from the build
	// info, not from a config source.
	UserAgent string
}

// ClientAccount identifies the synchronized account.
type ClientAccount struct {
	ID string
}

// ClientSync contains orchestrator tuning.
type ClientSync struct {
	PageSize             int
	MaxChanges           int
	MaxChangesIterations int
	MailboxRole          string
}

// ClientWorkers contains background execution settings.
type ClientWorkers struct {
	// PoolSize is the network pool size.
	PoolSize int
	// SyncInterval defines how often the background refresh runs.
	SyncInterval time.Duration
}

// ClientLog contains logging settings.
type ClientLog struct {
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Account ClientAccount
	Sync    ClientSync
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			AccessToken:    cfg.Adapter.AccessToken,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Account: ClientAccount{ID: cfg.Account.ID},
		Sync: ClientSync{
			PageSize:             cfg.Sync.PageSize,
			MaxChanges:           cfg.Sync.MaxChanges,
			MaxChangesIterations: cfg.Sync.MaxChangesIterations,
			MailboxRole:          cfg.Sync.MailboxRole,
		},
		Workers: ClientWorkers{
			PoolSize:     cfg.Workers.PoolSize,
			SyncInterval: cfg.Workers.SyncInterval,
		},
		Log: ClientLog{Level: cfg.Log.Level},
	}

	return clientCfg, clientCfg.validate()
}
