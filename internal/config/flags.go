package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// URLValue holds a validated absolute http(s) URL.
// It implements the flag.Value interface.
type URLValue struct {
	URL string
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a API endpoint URL
//	-token bearer access token
//	-account account id
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size query page size
//	-max-changes maxChanges hint for changes calls
//	-max-changes-iterations cap on delta pages per refresh
//	-mailbox-role role of the mailbox kept in sync
//	-pool-size network pool size
//	-sync-interval background refresh period (e.g., "5m")
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("jmap-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var apiURL URLValue
	var accessToken, accountID, jsonConfigPath, mailboxRole, logLevel string
	var requestTimeout, syncInterval time.Duration
	var pageSize, maxChanges, maxChangesIterations, poolSize int

	fs.Var(&apiURL, "a", "JMAP API endpoint URL")
	fs.StringVar(&accessToken, "token", "", "Bearer access token")
	fs.StringVar(&accountID, "account", "", "Account id")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Query page size")
	fs.IntVar(&maxChanges, "max-changes", 0, "maxChanges hint for changes calls")
	fs.IntVar(&maxChangesIterations, "max-changes-iterations", 0, "Cap on delta pages per refresh")
	fs.StringVar(&mailboxRole, "mailbox-role", "", "Role of the mailbox kept in sync")
	fs.IntVar(&poolSize, "pool-size", 0, "Network pool size")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background refresh period (e.g., 5m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         apiURL.String(),
			AccessToken:    accessToken,
			RequestTimeout: requestTimeout,
		},
		Account: Account{ID: accountID},
		Sync: Sync{
			PageSize:             pageSize,
			MaxChanges:           maxChanges,
			MaxChangesIterations: maxChangesIterations,
			MailboxRole:          mailboxRole,
		},
		Workers: Workers{
			PoolSize:     poolSize,
			SyncInterval: syncInterval,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL or an empty string when unset.
func (u *URLValue) String() string {
	return u.URL
}

// Set validates that s is an absolute http or https URL with a host.
func (u *URLValue) Set(s string) error {
	s = strings.TrimSpace(s)
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url scheme must be http or https")
	}
	if parsed.Host == "" {
		return errors.New("url must include a host")
	}

	u.URL = s
	return nil
}
