package store

import (
	"github.com/MKhiriev/go-jmap-sync/models"
)

// Cache is the local object cache of one account: one state-versioned map
// per entity type plus one query window per query fingerprint.
//
// Every write either applies completely or returns an error and leaves the
// cache untouched.
type Cache interface {
	// ObjectsState returns the current mailbox, thread and email states.
	ObjectsState() models.ObjectsState
	IdentityState() string

	SetMailboxes(state string, mailboxes []models.Mailbox)
	UpdateMailboxes(update models.Update[models.Mailbox]) error
	Mailboxes() []models.Mailbox

	SetThreads(state string, threads []models.Thread)
	// AddThreads inserts threads fetched at state, which must be the current
	// thread state.
	AddThreads(state string, threads []models.Thread) error
	UpdateThreads(update models.Update[models.Thread]) error
	Thread(id string) (models.Thread, bool)

	SetEmails(state string, emails []models.Email)
	AddEmails(state string, emails []models.Email) error
	UpdateEmails(update models.Update[models.Email]) error
	Email(id string) (models.Email, bool)

	SetIdentities(state string, identities []models.Identity)
	UpdateIdentities(update models.Update[models.Identity]) error
	Identities() []models.Identity

	// QueryState describes the window of fingerprint. QueryState and UpTo are
	// empty when no window exists.
	QueryState(fingerprint string) models.QueryWindowState
	// SetQueryResult replaces the window of fingerprint. result.EmailState
	// must equal the current email state.
	SetQueryResult(fingerprint string, result models.QueryResult) error
	// AddQueryResult appends a page at result.Position, which must equal the
	// current window length.
	AddQueryResult(fingerprint string, result models.QueryResult) error
	// UpdateQueryResult removes, then inserts, then advances the query state.
	UpdateQueryResult(fingerprint string, update models.QueryUpdate) error
	QueryItems(fingerprint string) ([]models.QueryResultItem, error)
	// Missing lists threads referenced by the window that are not cached and
	// the not cached emails of the threads that are.
	Missing(fingerprint string) (models.Missing, error)
}
