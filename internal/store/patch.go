package store

import (
	"fmt"

	"github.com/MKhiriev/go-jmap-sync/models"
)

// fieldTable maps a wire property name to a function copying that property
// from src onto dst.
type fieldTable[T models.Entity] map[string]func(dst *T, src T)

var mailboxFields = fieldTable[models.Mailbox]{
	"name":          func(dst *models.Mailbox, src models.Mailbox) { dst.Name = src.Name },
	"parentId":      func(dst *models.Mailbox, src models.Mailbox) { dst.ParentID = src.ParentID },
	"role":          func(dst *models.Mailbox, src models.Mailbox) { dst.Role = src.Role },
	"sortOrder":     func(dst *models.Mailbox, src models.Mailbox) { dst.SortOrder = src.SortOrder },
	"totalEmails":   func(dst *models.Mailbox, src models.Mailbox) { dst.TotalEmails = src.TotalEmails },
	"unreadEmails":  func(dst *models.Mailbox, src models.Mailbox) { dst.UnreadEmails = src.UnreadEmails },
	"totalThreads":  func(dst *models.Mailbox, src models.Mailbox) { dst.TotalThreads = src.TotalThreads },
	"unreadThreads": func(dst *models.Mailbox, src models.Mailbox) { dst.UnreadThreads = src.UnreadThreads },
	"myRights":      func(dst *models.Mailbox, src models.Mailbox) { dst.MyRights = src.MyRights },
	"isSubscribed":  func(dst *models.Mailbox, src models.Mailbox) { dst.IsSubscribed = src.IsSubscribed },
}

var emailFields = fieldTable[models.Email]{
	"keywords":   func(dst *models.Email, src models.Email) { dst.Keywords = src.Keywords },
	"mailboxIds": func(dst *models.Email, src models.Email) { dst.MailboxIDs = src.MailboxIDs },
}

// patcher resolves properties into one copy function. A nil patcher means
// wholesale replacement.
func (f fieldTable[T]) patcher(properties []string) (func(dst *T, src T), error) {
	if len(properties) == 0 {
		return nil, nil
	}

	copies := make([]func(dst *T, src T), 0, len(properties))
	for _, p := range properties {
		copyFn, ok := f[p]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownProperty, p)
		}
		copies = append(copies, copyFn)
	}

	return func(dst *T, src T) {
		for _, copyFn := range copies {
			copyFn(dst, src)
		}
	}, nil
}
