// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/models"
)

type queryWindow struct {
	queryState string
	items      []models.QueryResultItem
}

// memoryCache is the in-memory [Cache]. Each entity table guards itself;
// query windows share one lock. Locks are always taken windows first, then
// tables.
type memoryCache struct {
	mailboxes  *entityTable[models.Mailbox]
	threads    *entityTable[models.Thread]
	emails     *entityTable[models.Email]
	identities *entityTable[models.Identity]

	queriesMu sync.RWMutex
	queries   map[string]*queryWindow

	logger *logger.Logger
}

// NewMemoryCache constructs an empty [Cache]. Nothing survives the process.
func NewMemoryCache(logger *logger.Logger) Cache {
	return &memoryCache{
		mailboxes:  newEntityTable(models.KindMailbox, mailboxFields),
		threads:    newEntityTable[models.Thread](models.KindThread, nil),
		emails:     newEntityTable(models.KindEmail, emailFields),
		identities: newEntityTable[models.Identity](models.KindIdentity, nil),
		queries:    make(map[string]*queryWindow),
		logger:     logger,
	}
}

func (c *memoryCache) ObjectsState() models.ObjectsState {
	return models.ObjectsState{
		MailboxState: c.mailboxes.State(),
		ThreadState:  c.threads.State(),
		EmailState:   c.emails.State(),
	}
}

func (c *memoryCache) IdentityState() string {
	return c.identities.State()
}

// ── mailboxes ───────────────────────────────────────────────────────────────

func (c *memoryCache) SetMailboxes(state string, mailboxes []models.Mailbox) {
	c.mailboxes.set(state, mailboxes)
}

func (c *memoryCache) UpdateMailboxes(update models.Update[models.Mailbox]) error {
	return c.mailboxes.apply(update)
}

func (c *memoryCache) Mailboxes() []models.Mailbox {
	return c.mailboxes.all()
}

// ── threads ─────────────────────────────────────────────────────────────────

func (c *memoryCache) SetThreads(state string, threads []models.Thread) {
	c.threads.set(state, threads)
}

func (c *memoryCache) AddThreads(state string, threads []models.Thread) error {
	return c.threads.add(state, threads)
}

func (c *memoryCache) UpdateThreads(update models.Update[models.Thread]) error {
	return c.threads.apply(update)
}

func (c *memoryCache) Thread(id string) (models.Thread, bool) {
	return c.threads.get(id)
}

// ── emails ──────────────────────────────────────────────────────────────────

func (c *memoryCache) SetEmails(state string, emails []models.Email) {
	c.emails.set(state, emails)
}

func (c *memoryCache) AddEmails(state string, emails []models.Email) error {
	return c.emails.add(state, emails)
}

func (c *memoryCache) UpdateEmails(update models.Update[models.Email]) error {
	return c.emails.apply(update)
}

func (c *memoryCache) Email(id string) (models.Email, bool) {
	return c.emails.get(id)
}

// ── identities ──────────────────────────────────────────────────────────────

func (c *memoryCache) SetIdentities(state string, identities []models.Identity) {
	if state == "" {
		c.logger.Warn().Msg("identities loaded without a state")
	}
	c.identities.set(state, identities)
}

func (c *memoryCache) UpdateIdentities(update models.Update[models.Identity]) error {
	return c.identities.apply(update)
}

func (c *memoryCache) Identities() []models.Identity {
	return c.identities.all()
}

// ── query windows ───────────────────────────────────────────────────────────

func (c *memoryCache) QueryState(fingerprint string) models.QueryWindowState {
	c.queriesMu.RLock()
	defer c.queriesMu.RUnlock()

	state := models.QueryWindowState{Objects: c.ObjectsState()}
	if w, ok := c.queries[fingerprint]; ok {
		state.QueryState = w.queryState
		if n := len(w.items); n > 0 {
			state.UpTo = w.items[n-1].EmailID
		}
	}
	return state
}

func (c *memoryCache) checkEmailState(emailState string) error {
	current := c.emails.State()
	if emailState == "" || emailState != current {
		return fmt.Errorf("%w: query result read at email state %q, cached state is %q", ErrCacheConflict, emailState, current)
	}
	return nil
}

func (c *memoryCache) SetQueryResult(fingerprint string, result models.QueryResult) error {
	c.queriesMu.Lock()
	defer c.queriesMu.Unlock()

	if err := c.checkEmailState(result.EmailState); err != nil {
		return err
	}

	c.queries[fingerprint] = &queryWindow{
		queryState: result.QueryState,
		items:      slices.Clone(result.Items),
	}
	return nil
}

func (c *memoryCache) AddQueryResult(fingerprint string, result models.QueryResult) error {
	c.queriesMu.Lock()
	defer c.queriesMu.Unlock()

	if err := c.checkEmailState(result.EmailState); err != nil {
		return err
	}
	w, ok := c.queries[fingerprint]
	if !ok {
		return fmt.Errorf("%w: %w", ErrCacheConflict, ErrQueryWindowNotFound)
	}
	if result.QueryState == "" || result.QueryState != w.queryState {
		return fmt.Errorf("%w: page read at query state %q, window is at %q", ErrCacheConflict, result.QueryState, w.queryState)
	}
	if result.Position != len(w.items) {
		return fmt.Errorf("%w: page starts at %d, window has %d items", ErrCacheConflict, result.Position, len(w.items))
	}

	w.items = append(w.items, result.Items...)
	return nil
}

func (c *memoryCache) UpdateQueryResult(fingerprint string, update models.QueryUpdate) error {
	c.queriesMu.Lock()
	defer c.queriesMu.Unlock()

	w, ok := c.queries[fingerprint]
	if !ok {
		return fmt.Errorf("%w: %w", ErrCacheWrite, ErrQueryWindowNotFound)
	}
	if err := c.checkEmailState(update.EmailState); err != nil {
		return err
	}
	if update.OldQueryState == "" || update.OldQueryState != w.queryState {
		return fmt.Errorf("%w: query update from %q, window is at %q", ErrCacheConflict, update.OldQueryState, w.queryState)
	}

	items := slices.Clone(w.items)
	for _, removed := range update.Removed {
		if i := slices.IndexFunc(items, func(item models.QueryResultItem) bool { return item.EmailID == removed }); i >= 0 {
			items = slices.Delete(items, i, i+1)
		}
	}
	for _, added := range update.Added {
		if added.Index < 0 || added.Index > len(items) {
			return fmt.Errorf("%w: insert of %s at %d into %d items", ErrCacheWrite, added.Item.EmailID, added.Index, len(items))
		}
		items = slices.Insert(items, added.Index, added.Item)
	}

	w.items = items
	w.queryState = update.NewQueryState
	return nil
}

func (c *memoryCache) QueryItems(fingerprint string) ([]models.QueryResultItem, error) {
	c.queriesMu.RLock()
	defer c.queriesMu.RUnlock()

	w, ok := c.queries[fingerprint]
	if !ok {
		return nil, ErrQueryWindowNotFound
	}
	return slices.Clone(w.items), nil
}

func (c *memoryCache) Missing(fingerprint string) (models.Missing, error) {
	c.queriesMu.RLock()
	w, ok := c.queries[fingerprint]
	if !ok {
		c.queriesMu.RUnlock()
		return models.Missing{}, ErrQueryWindowNotFound
	}
	threadIDs := make([]string, 0, len(w.items))
	seen := make(map[string]struct{}, len(w.items))
	for _, item := range w.items {
		if _, ok := seen[item.ThreadID]; !ok {
			seen[item.ThreadID] = struct{}{}
			threadIDs = append(threadIDs, item.ThreadID)
		}
	}
	c.queriesMu.RUnlock()

	missing := models.Missing{}
	var memberIDs []string

	c.threads.mu.RLock()
	missing.ThreadState = c.threads.state
	for _, id := range threadIDs {
		thread, ok := c.threads.items[id]
		if !ok {
			missing.ThreadIDs = append(missing.ThreadIDs, id)
			continue
		}
		memberIDs = append(memberIDs, thread.EmailIDs...)
	}
	c.threads.mu.RUnlock()

	c.emails.mu.RLock()
	missing.EmailState = c.emails.state
	clear(seen)
	for _, id := range memberIDs {
		if _, cached := c.emails.items[id]; cached {
			continue
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			missing.EmailIDs = append(missing.EmailIDs, id)
		}
	}
	c.emails.mu.RUnlock()

	return missing, nil
}
