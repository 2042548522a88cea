package service

import "errors"

var (
	// ErrInconsistentQueryState is returned by QueryPage when the window is
	// missing or does not end with the given email id. No request is sent.
	ErrInconsistentQueryState = errors.New("inconsistent query state")

	// ErrNotSynchronized is returned by operations that need mailboxes which
	// were never loaded.
	ErrNotSynchronized = errors.New("mailboxes are not synchronized")

	// ErrSetFailed is returned when a set call rejected any of its objects.
	ErrSetFailed = errors.New("set call failed")

	// ErrMailboxNotFound is returned when a mutation needs a mailbox with a
	// role the account does not have.
	ErrMailboxNotFound = errors.New("mailbox not found")

	// ErrInvalidDraft is returned by Draft and Send for an email carrying
	// server-set properties.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrUnknownIdentity is returned when submitting as an identity that is
	// not cached.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrUnexpectedQueryPosition is returned when an initial query page does
	// not start at position 0.
	ErrUnexpectedQueryPosition = errors.New("unexpected query position")
)
