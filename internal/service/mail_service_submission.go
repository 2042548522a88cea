package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-jmap-sync/internal/workers"
	"github.com/MKhiriev/go-jmap-sync/models"
)

// Creation ids of the draft and the submission of a Send.
const (
	draftCreationID      = "e0"
	submissionCreationID = "es0"
)

// Draft stores email in the drafts mailbox with the draft and seen keywords.
func (s *mailService) Draft(ctx context.Context, email models.Email) *workers.Future[bool] {
	return s.mutate(ctx, "draft", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}

		var m emailMutation
		draft, err := s.draftEmail(&m, email)
		if err != nil {
			return emailMutation{}, err
		}
		m.createEmails = map[string]any{draftCreationID: draft}
		return m, nil
	})
}

// Submit sends a stored email as identityID. Once the server accepted the
// submission the email leaves the drafts mailbox, loses the draft keyword and
// lands in the sent mailbox.
func (s *mailService) Submit(ctx context.Context, emailID, identityID string) *workers.Future[bool] {
	return s.mutate(ctx, "submit", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}
		identity, err := s.identity(identityID)
		if err != nil {
			return emailMutation{}, err
		}

		email, cached := s.cache.Email(emailID)
		var draftsID string
		if drafts, ok := models.FindMailboxByRole(s.cache.Mailboxes(), models.RoleDrafts); ok && (!cached || email.MailboxIDs[drafts.ID]) {
			draftsID = drafts.ID
		}
		var env *models.Envelope
		if cached {
			env = envelope(identity, email)
		}

		var m emailMutation
		s.addSubmission(&m, emailID, identity, draftsID, env)
		return m, nil
	})
}

// Send drafts email and submits it in the same batch.
func (s *mailService) Send(ctx context.Context, email models.Email, identityID string) *workers.Future[bool] {
	return s.mutate(ctx, "send", func(objects models.ObjectsState) (emailMutation, error) {
		if objects.MailboxState == "" {
			return emailMutation{}, ErrNotSynchronized
		}
		identity, err := s.identity(identityID)
		if err != nil {
			return emailMutation{}, err
		}

		var m emailMutation
		draft, err := s.draftEmail(&m, email)
		if err != nil {
			return emailMutation{}, err
		}
		m.createEmails = map[string]any{draftCreationID: draft}
		s.addSubmission(&m, "#"+draftCreationID, identity, s.roleMailbox(&m, models.RoleDrafts), envelope(identity, email))
		return m, nil
	})
}

// draftEmail returns a copy of email placed in the drafts mailbox. It must run
// in the queue.
func (s *mailService) draftEmail(m *emailMutation, email models.Email) (models.Email, error) {
	if email.ID != "" || email.BlobID != "" || email.ThreadID != "" {
		return models.Email{}, fmt.Errorf("%w: id, blobId and threadId are set by the server", ErrInvalidDraft)
	}

	email.MailboxIDs = maps.Clone(email.MailboxIDs)
	if email.MailboxIDs == nil {
		email.MailboxIDs = make(map[string]bool, 1)
	}
	email.MailboxIDs[s.roleMailbox(m, models.RoleDrafts)] = true

	email.Keywords = maps.Clone(email.Keywords)
	if email.Keywords == nil {
		email.Keywords = make(map[string]bool, 2)
	}
	email.Keywords[models.KeywordDraft] = true
	email.Keywords[models.KeywordSeen] = true

	return email, nil
}

// addSubmission adds the EmailSubmission of emailID to m, together with the
// email update the server applies once it succeeded. draftsID may be empty.
func (s *mailService) addSubmission(m *emailMutation, emailID string, identity models.Identity, draftsID string, env *models.Envelope) {
	patch := models.Patch{}.
		Remove("keywords/"+models.KeywordDraft).
		Set("mailboxIds/"+s.roleMailbox(m, models.RoleSent), true)
	if draftsID != "" {
		patch.Remove("mailboxIds/" + draftsID)
	}

	m.submissions = map[string]any{submissionCreationID: models.EmailSubmission{
		EmailID:    emailID,
		IdentityID: identity.ID,
		Envelope:   env,
	}}
	m.onSuccessUpdate = map[string]models.Patch{"#" + submissionCreationID: patch}
}

// identity looks up a cached identity. It must run in the queue.
func (s *mailService) identity(id string) (models.Identity, error) {
	for _, identity := range s.cache.Identities() {
		if identity.ID == id {
			return identity, nil
		}
	}
	return models.Identity{}, fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
}

// envelope addresses email from identity to every distinct recipient. It
// returns nil when email has no recipients, leaving the envelope to the
// server.
func envelope(identity models.Identity, email models.Email) *models.Envelope {
	seen := make(map[string]bool)
	var rcpt []models.EmailAddress
	for _, list := range [][]models.EmailAddress{email.To, email.Cc, email.Bcc} {
		for _, addr := range list {
			if addr.Email == "" || seen[addr.Email] {
				continue
			}
			seen[addr.Email] = true
			rcpt = append(rcpt, models.EmailAddress{Email: addr.Email})
		}
	}
	if len(rcpt) == 0 {
		return nil
	}
	return &models.Envelope{MailFrom: models.EmailAddress{Email: identity.Email}, RcptTo: rcpt}
}
