// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity is implemented by every object type kept in the local cache.
// Entities reference each other only by id.
type Entity interface {
	EntityID() string
}

// Mailbox roles used by the mutations that need a special mailbox.
const (
	RoleInbox   = "inbox"
	RoleArchive = "archive"
	RoleDrafts  = "drafts"
	RoleSent    = "sent"
	RoleTrash   = "trash"
	RoleJunk    = "junk"
)

// Well-known keywords.
const (
	KeywordSeen     = "$seen"
	KeywordFlagged  = "$flagged"
	KeywordDraft    = "$draft"
	KeywordAnswered = "$answered"
)

// MailboxRights mirrors the myRights object of a mailbox.
type MailboxRights struct {
	MayReadItems   bool `json:"mayReadItems"`
	MayAddItems    bool `json:"mayAddItems"`
	MayRemoveItems bool `json:"mayRemoveItems"`
	MaySetSeen     bool `json:"maySetSeen"`
	MaySetKeywords bool `json:"maySetKeywords"`
	MayCreateChild bool `json:"mayCreateChild"`
	MayRename      bool `json:"mayRename"`
	MayDelete      bool `json:"mayDelete"`
	MaySubmit      bool `json:"maySubmit"`
}

// Mailbox is a named container of emails, optionally carrying a special role.
type Mailbox struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name,omitempty"`
	ParentID      string         `json:"parentId,omitempty"`
	Role          string         `json:"role,omitempty"`
	SortOrder     int64          `json:"sortOrder,omitempty"`
	TotalEmails   int64          `json:"totalEmails,omitempty"`
	UnreadEmails  int64          `json:"unreadEmails,omitempty"`
	TotalThreads  int64          `json:"totalThreads,omitempty"`
	UnreadThreads int64          `json:"unreadThreads,omitempty"`
	MyRights      *MailboxRights `json:"myRights,omitempty"`
	IsSubscribed  bool           `json:"isSubscribed,omitempty"`
}

func (m Mailbox) EntityID() string { return m.ID }

// Thread groups the ids of emails belonging to one conversation.
type Thread struct {
	ID       string   `json:"id"`
	EmailIDs []string `json:"emailIds"`
}

func (t Thread) EntityID() string { return t.ID }

// EmailAddress is a display name plus address pair.
type EmailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// EmailBodyPart describes one MIME part of an email.
type EmailBodyPart struct {
	PartID      string `json:"partId,omitempty"`
	BlobID      string `json:"blobId,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Charset     string `json:"charset,omitempty"`
	Disposition string `json:"disposition,omitempty"`
	CID         string `json:"cid,omitempty"`
}

// EmailBodyValue holds decoded text of a body part.
type EmailBodyValue struct {
	Value             string `json:"value"`
	IsEncodingProblem bool   `json:"isEncodingProblem,omitempty"`
	IsTruncated       bool   `json:"isTruncated,omitempty"`
}

// Email is a single message. MailboxIDs and Keywords are the only properties
// that change after creation.
type Email struct {
	ID            string                    `json:"id,omitempty"`
	BlobID        string                    `json:"blobId,omitempty"`
	ThreadID      string                    `json:"threadId,omitempty"`
	MailboxIDs    map[string]bool           `json:"mailboxIds,omitempty"`
	Keywords      map[string]bool           `json:"keywords,omitempty"`
	Size          int64                     `json:"size,omitempty"`
	ReceivedAt    *time.Time                `json:"receivedAt,omitempty"`
	MessageID     []string                  `json:"messageId,omitempty"`
	InReplyTo     []string                  `json:"inReplyTo,omitempty"`
	References    []string                  `json:"references,omitempty"`
	Sender        []EmailAddress            `json:"sender,omitempty"`
	From          []EmailAddress            `json:"from,omitempty"`
	To            []EmailAddress            `json:"to,omitempty"`
	Cc            []EmailAddress            `json:"cc,omitempty"`
	Bcc           []EmailAddress            `json:"bcc,omitempty"`
	ReplyTo       []EmailAddress            `json:"replyTo,omitempty"`
	Subject       string                    `json:"subject,omitempty"`
	SentAt        *time.Time                `json:"sentAt,omitempty"`
	BodyValues    map[string]EmailBodyValue `json:"bodyValues,omitempty"`
	TextBody      []EmailBodyPart           `json:"textBody,omitempty"`
	HTMLBody      []EmailBodyPart           `json:"htmlBody,omitempty"`
	Attachments   []EmailBodyPart           `json:"attachments,omitempty"`
	HasAttachment bool                      `json:"hasAttachment,omitempty"`
	Preview       string                    `json:"preview,omitempty"`
}

func (e Email) EntityID() string { return e.ID }

// Identity is a sender identity the account may submit mail as.
type Identity struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	Email         string         `json:"email"`
	ReplyTo       []EmailAddress `json:"replyTo,omitempty"`
	Bcc           []EmailAddress `json:"bcc,omitempty"`
	TextSignature string         `json:"textSignature,omitempty"`
	HTMLSignature string         `json:"htmlSignature,omitempty"`
	MayDelete     bool           `json:"mayDelete,omitempty"`
}

func (i Identity) EntityID() string { return i.ID }

// Envelope is the SMTP envelope of a submission.
type Envelope struct {
	MailFrom EmailAddress   `json:"mailFrom"`
	RcptTo   []EmailAddress `json:"rcptTo"`
}

// UndoStatus of an email submission.
type UndoStatus string

const (
	UndoStatusPending  UndoStatus = "pending"
	UndoStatusFinal    UndoStatus = "final"
	UndoStatusCanceled UndoStatus = "canceled"
)

// EmailSubmission records an email handed over for delivery.
type EmailSubmission struct {
	ID             string            `json:"id,omitempty"`
	IdentityID     string            `json:"identityId,omitempty"`
	EmailID        string            `json:"emailId,omitempty"`
	ThreadID       string            `json:"threadId,omitempty"`
	Envelope       *Envelope         `json:"envelope,omitempty"`
	SendAt         *time.Time        `json:"sendAt,omitempty"`
	UndoStatus     UndoStatus        `json:"undoStatus,omitempty"`
	DeliveryStatus map[string]string `json:"deliveryStatus,omitempty"`
	DSNBlobIDs     []string          `json:"dsnBlobIds,omitempty"`
	MDNBlobIDs     []string          `json:"mdnBlobIds,omitempty"`
}

func (s EmailSubmission) EntityID() string { return s.ID }

// FindMailboxByRole returns the first mailbox carrying role, or false.
func FindMailboxByRole(mailboxes []Mailbox, role string) (Mailbox, bool) {
	for _, m := range mailboxes {
		if m.Role == role {
			return m, true
		}
	}
	return Mailbox{}, false
}
