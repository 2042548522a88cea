package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/internal/batch"
	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

const newMailboxID = "mb-new"

// specialMailboxes names the mailboxes a mutation creates when the account
// has none with that role.
var specialMailboxes = map[string]string{
	models.RoleInbox:   "Inbox",
	models.RoleArchive: "Archive",
	models.RoleDrafts:  "Drafts",
	models.RoleSent:    "Sent",
	models.RoleTrash:   "Trash",
}

// mailboxCreationID is the creation id of a role mailbox created alongside
// an email mutation.
func mailboxCreationID(role string) string {
	return "mb-" + role
}

// emailMutation is what one mutation sends: an optional Mailbox/set creating
// role mailboxes, an Email/set and an EmailSubmission/set. Empty parts are
// left out of the batch.
type emailMutation struct {
	createMailboxes map[string]any
	createEmails    map[string]any
	update          map[string]models.Patch
	submissions     map[string]any
	onSuccessUpdate map[string]models.Patch
}

func (m *emailMutation) empty() bool {
	return len(m.createEmails)+len(m.update)+len(m.submissions) == 0
}

func (m *emailMutation) size() int {
	return len(m.createEmails) + len(m.update) + len(m.submissions)
}

func (s *mailService) SetKeyword(ctx context.Context, emailIDs []string, keyword string) *workers.Future[bool] {
	return s.mutate(ctx, "set keyword", func(models.ObjectsState) (emailMutation, error) {
		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if _, ok := email.Keywords[keyword]; ok {
				return nil, nil
			}
			return models.Patch{}.Set("keywords/"+keyword, true), nil
		})
		return m, err
	})
}

func (s *mailService) RemoveKeyword(ctx context.Context, emailIDs []string, keyword string) *workers.Future[bool] {
	return s.mutate(ctx, "remove keyword", func(models.ObjectsState) (emailMutation, error) {
		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if _, ok := email.Keywords[keyword]; !ok {
				return nil, nil
			}
			return models.Patch{}.Remove("keywords/" + keyword), nil
		})
		return m, err
	})
}

func (s *mailService) CopyToMailbox(ctx context.Context, emailIDs []string, mailboxID string) *workers.Future[bool] {
	return s.mutate(ctx, "copy to mailbox", func(models.ObjectsState) (emailMutation, error) {
		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if email.MailboxIDs[mailboxID] {
				return nil, nil
			}
			return models.Patch{}.Set("mailboxIds/"+mailboxID, true), nil
		})
		return m, err
	})
}

// RemoveFromMailbox moves an email that is only in mailboxID to the archive
// instead, since an email must stay in at least one mailbox.
func (s *mailService) RemoveFromMailbox(ctx context.Context, emailIDs []string, mailboxID string) *workers.Future[bool] {
	return s.mutate(ctx, "remove from mailbox", func(objects models.ObjectsState) (emailMutation, error) {
		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if !email.MailboxIDs[mailboxID] {
				return nil, nil
			}
			patch := models.Patch{}.Remove("mailboxIds/" + mailboxID)
			if len(email.MailboxIDs) == 1 {
				if objects.MailboxState == "" {
					return nil, ErrNotSynchronized
				}
				patch.Set("mailboxIds/"+s.roleMailbox(&m, models.RoleArchive), true)
			}
			return patch, nil
		})
		return m, err
	})
}

// MoveToTrash replaces the mailboxes of every email with the trash. Emails
// already only in the trash are skipped.
func (s *mailService) MoveToTrash(ctx context.Context, emailIDs []string) *workers.Future[bool] {
	return s.mutate(ctx, "move to trash", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}

		trash, hasTrash := models.FindMailboxByRole(s.cache.Mailboxes(), models.RoleTrash)
		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if hasTrash && len(email.MailboxIDs) == 1 && email.MailboxIDs[trash.ID] {
				return nil, nil
			}
			target := s.roleMailbox(&m, models.RoleTrash)
			return models.Patch{}.Set("mailboxIds", map[string]bool{target: true}), nil
		})
		return m, err
	})
}

// Archive moves the emails that are in the inbox to the archive.
func (s *mailService) Archive(ctx context.Context, emailIDs []string) *workers.Future[bool] {
	return s.mutate(ctx, "archive", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}
		inbox, ok := models.FindMailboxByRole(s.cache.Mailboxes(), models.RoleInbox)
		if !ok {
			return emailMutation{}, fmt.Errorf("%w: %s", ErrMailboxNotFound, models.RoleInbox)
		}

		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			if !email.MailboxIDs[inbox.ID] {
				return nil, nil
			}
			return models.Patch{}.
				Remove("mailboxIds/"+inbox.ID).
				Set("mailboxIds/"+s.roleMailbox(&m, models.RoleArchive), true), nil
		})
		return m, err
	})
}

// MoveToInbox takes the emails out of the archive and the trash and puts them
// into the inbox.
func (s *mailService) MoveToInbox(ctx context.Context, emailIDs []string) *workers.Future[bool] {
	return s.mutate(ctx, "move to inbox", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}

		mailboxes := s.cache.Mailboxes()
		var leave []string
		for _, role := range []string{models.RoleArchive, models.RoleTrash} {
			if mailbox, ok := models.FindMailboxByRole(mailboxes, role); ok {
				leave = append(leave, mailbox.ID)
			}
		}
		inbox, hasInbox := models.FindMailboxByRole(mailboxes, models.RoleInbox)

		var m emailMutation
		err := s.patchEmails(&m, emailIDs, func(email models.Email) (models.Patch, error) {
			patch := models.Patch{}
			for _, id := range leave {
				if email.MailboxIDs[id] {
					patch.Remove("mailboxIds/" + id)
				}
			}
			if hasInbox && email.MailboxIDs[inbox.ID] && len(patch) == 0 {
				return nil, nil
			}
			return patch.Set("mailboxIds/"+s.roleMailbox(&m, models.RoleInbox), true), nil
		})
		return m, err
	})
}

// patchEmails adds one patch per cached email of emailIDs to m. Emails that
// are not cached, or for which patch returns nil, are left alone. It must run
// in the queue.
func (s *mailService) patchEmails(m *emailMutation, emailIDs []string, patch func(models.Email) (models.Patch, error)) error {
	for _, id := range emailIDs {
		email, ok := s.cache.Email(id)
		if !ok {
			s.logger.Debug().Str("email", id).Msg("email is not cached, skipping")
			continue
		}
		p, err := patch(email)
		if err != nil {
			return err
		}
		if p == nil {
			continue
		}
		if m.update == nil {
			m.update = make(map[string]models.Patch, len(emailIDs))
		}
		m.update[id] = p
	}
	return nil
}

// roleMailbox returns the id of the mailbox with role, or a reference to a
// mailbox created in m when there is none. It must run in the queue.
func (s *mailService) roleMailbox(m *emailMutation, role string) string {
	if mailbox, ok := models.FindMailboxByRole(s.cache.Mailboxes(), role); ok {
		return mailbox.ID
	}
	if m.createMailboxes == nil {
		m.createMailboxes = make(map[string]any)
	}
	cid := mailboxCreationID(role)
	m.createMailboxes[cid] = models.Mailbox{Name: specialMailboxes[role], Role: role, IsSubscribed: true}
	return "#" + cid
}

// mutate runs prepare in the queue, sends the resulting set calls together
// with the due sync, and resolves true if every email and submission set
// created or updated something. Nothing is sent when prepare leaves nothing
// to do.
func (s *mailService) mutate(ctx context.Context, op string, prepare func(models.ObjectsState) (emailMutation, error)) *workers.Future[bool] {
	type prepared struct {
		objects       models.ObjectsState
		identityState string
		mutation      emailMutation
	}

	return workers.Async(ctx, func(ctx context.Context) (bool, error) {
		pre, err := workers.Do(ctx, s.queue, func() (prepared, error) {
			objects := s.cache.ObjectsState()
			m, err := prepare(objects)
			return prepared{objects: objects, identityState: s.cache.IdentityState(), mutation: m}, err
		})
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		m := pre.mutation
		if m.empty() {
			return false, nil
		}

		b := s.batches.New()
		var mailboxSet *batch.Pending
		if len(m.createMailboxes) > 0 {
			mailboxSet = b.Add(models.KindMailbox, models.VerbSet, models.SetCall{
				AccountID: s.accountID,
				IfInState: pre.objects.MailboxState,
				Create:    m.createMailboxes,
			})
		}
		var sets []*batch.Pending
		if len(m.createEmails)+len(m.update) > 0 {
			call := models.SetCall{AccountID: s.accountID, Create: m.createEmails, Update: m.update}
			if len(m.update) > 0 {
				call.IfInState = pre.objects.EmailState
			}
			sets = append(sets, b.Add(models.KindEmail, models.VerbSet, call))
		}
		if len(m.submissions) > 0 {
			sets = append(sets, b.Add(models.KindEmailSubmission, models.VerbSet, models.SetCall{
				AccountID:            s.accountID,
				Create:               m.submissions,
				OnSuccessUpdateEmail: m.onSuccessUpdate,
			}))
		}
		p := s.piggyback(b, pre.objects)
		if len(m.submissions) > 0 && pre.identityState != "" {
			p = append(p, enqueueUpdate(s, b, models.KindIdentity, pre.identityState, getProperties{}, s.cache.UpdateIdentities))
		}
		b.Execute(ctx)

		if mailboxSet != nil {
			if _, err = setResult(ctx, mailboxSet); err != nil {
				return false, fmt.Errorf("%s: %w", op, err)
			}
		}
		changed := true
		for _, set := range sets {
			resp, err := setResult(ctx, set)
			if err != nil {
				return false, fmt.Errorf("%s: %w", op, err)
			}
			changed = changed && resp.UpdatedCreatedCount() > 0
		}

		status, err := p.run(ctx)
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		s.logger.Debug().
			Str("op", op).
			Int("objects", m.size()).
			Stringer("status", status).
			Msg("emails updated")

		return changed, nil
	})
}

func (s *mailService) CreateMailbox(ctx context.Context, mailbox models.Mailbox) *workers.Future[string] {
	return workers.Async(ctx, func(ctx context.Context) (string, error) {
		objects, err := s.objectsState(ctx)
		if err != nil {
			return "", err
		}

		b := s.batches.New()
		set := b.Add(models.KindMailbox, models.VerbSet, models.SetCall{
			AccountID: s.accountID,
			IfInState: objects.MailboxState,
			Create:    map[string]any{newMailboxID: mailbox},
		})
		p := plan{s.syncMailboxes(b, objects.MailboxState)}
		b.Execute(ctx)

		resp, err := setResult(ctx, set)
		if err != nil {
			return "", fmt.Errorf("create mailbox: %w", err)
		}
		var created struct {
			ID string `json:"id"`
		}
		if err = json.Unmarshal(resp.Created[newMailboxID], &created); err != nil || created.ID == "" {
			return "", fmt.Errorf("create mailbox: %w: no id for %s", batch.ErrDecodingResult, newMailboxID)
		}

		if _, err = p.run(ctx); err != nil {
			return "", fmt.Errorf("create mailbox: %w", err)
		}
		return created.ID, nil
	})
}

// setResult awaits a set call and turns rejected objects into ErrSetFailed.
func setResult(ctx context.Context, set *batch.Pending) (models.SetResponse, error) {
	resp, err := batch.Main[models.SetResponse](ctx, set)
	if err != nil {
		return resp, err
	}
	if failures := resp.Failures(); len(failures) > 0 {
		return resp, fmt.Errorf("%w: %v", ErrSetFailed, failures)
	}
	return resp, nil
}
