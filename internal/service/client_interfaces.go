package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/mail_service_mock.go -package=mock

// MailService keeps the local cache of one account in sync with the server.
// Every operation returns immediately with a deferred result; all cache
// writes of an operation happen in the account's serializing queue.
type MailService interface {
	// Refresh brings mailboxes, threads and emails up to date. Entity types
	// that were never loaded are skipped, except mailboxes which are loaded.
	Refresh(ctx context.Context) *workers.Future[models.Status]

	// RefreshMailboxes loads or updates mailboxes only.
	RefreshMailboxes(ctx context.Context) *workers.Future[models.Status]

	// RefreshIdentities loads or updates sender identities.
	RefreshIdentities(ctx context.Context) *workers.Future[models.Status]

	// RefreshAll runs Refresh and RefreshIdentities concurrently and reduces
	// their statuses.
	RefreshAll(ctx context.Context) *workers.Future[models.Status]

	// Query populates the window of query on first use and reconciles it
	// with the server afterwards.
	Query(ctx context.Context, query models.EmailQuery) *workers.Future[models.Status]

	// QueryPage appends the page following afterEmailID, which must be the
	// last email id of the cached window. It resolves true if the page had
	// any items.
	QueryPage(ctx context.Context, query models.EmailQuery, afterEmailID string) *workers.Future[bool]

	// SetKeyword and RemoveKeyword toggle keyword on the cached emails of
	// emailIDs that do not have it, or have it, yet.
	SetKeyword(ctx context.Context, emailIDs []string, keyword string) *workers.Future[bool]
	RemoveKeyword(ctx context.Context, emailIDs []string, keyword string) *workers.Future[bool]

	// CopyToMailbox adds mailboxID to every email; RemoveFromMailbox removes
	// it, moving emails it was the only mailbox of to the archive.
	CopyToMailbox(ctx context.Context, emailIDs []string, mailboxID string) *workers.Future[bool]
	RemoveFromMailbox(ctx context.Context, emailIDs []string, mailboxID string) *workers.Future[bool]

	// MoveToTrash makes the trash mailbox the only mailbox of every email,
	// creating it first when the account has none.
	MoveToTrash(ctx context.Context, emailIDs []string) *workers.Future[bool]

	// Archive moves the emails that are in the inbox to the archive mailbox,
	// creating the archive first when the account has none. The account must
	// have an inbox.
	Archive(ctx context.Context, emailIDs []string) *workers.Future[bool]

	// MoveToInbox takes every email out of the archive and the trash and puts
	// it into the inbox.
	MoveToInbox(ctx context.Context, emailIDs []string) *workers.Future[bool]

	// Draft saves a new email in the drafts mailbox.
	Draft(ctx context.Context, email models.Email) *workers.Future[bool]

	// Submit sends the stored email emailID as the cached identity
	// identityID and files it under sent.
	Submit(ctx context.Context, emailID, identityID string) *workers.Future[bool]

	// Send is Draft followed by Submit in a single round trip.
	Send(ctx context.Context, email models.Email, identityID string) *workers.Future[bool]

	// CreateMailbox creates mailbox and resolves with its server id.
	CreateMailbox(ctx context.Context, mailbox models.Mailbox) *workers.Future[string]

	// Mailboxes, Identities and QueryItems read the cache without network.
	Mailboxes() []models.Mailbox
	Identities() []models.Identity
	QueryItems(query models.EmailQuery) ([]models.QueryResultItem, error)
}

// SyncJob periodically refreshes the cache in the background.
type SyncJob interface {
	workers.Worker

	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Watch adds query to the windows reconciled after every refresh. Watching
	// the same query twice has no further effect.
	Watch(query models.EmailQuery)
}
