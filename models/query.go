package models

// Comparator is one sort criterion. The order of comparators in a sort list
// is significant.
type Comparator struct {
	Property    string `json:"property"`
	IsAscending bool   `json:"isAscending"`
	Collation   string `json:"collation,omitempty"`
}

func (c Comparator) Fingerprint() string {
	return encodeFields(levelComparator, c.Property, c.IsAscending, optional(c.Collation))
}

// SortByReceivedAt is the default email sort, newest first.
var SortByReceivedAt = []Comparator{{Property: "receivedAt", IsAscending: false}}

// EmailQuery identifies an email search. Its fingerprint keys the query
// window cache.
type EmailQuery struct {
	Filter          Filter
	Sort            []Comparator
	CollapseThreads bool
}

func (q EmailQuery) Fingerprint() string {
	return encodeFields(levelQuery, string(KindEmail), q.Filter, optionalList(q.Sort), q.CollapseThreads)
}

// MailboxQuery identifies a mailbox search.
type MailboxQuery struct {
	Filter       Filter
	Sort         []Comparator
	SortAsTree   bool
	FilterAsTree bool
}

func (q MailboxQuery) Fingerprint() string {
	return encodeFields(levelQuery, string(KindMailbox), q.Filter, optionalList(q.Sort), q.SortAsTree, q.FilterAsTree)
}

// EmailSubmissionQuery identifies an email submission search.
type EmailSubmissionQuery struct {
	Filter Filter
	Sort   []Comparator
}

func (q EmailSubmissionQuery) Fingerprint() string {
	return encodeFields(levelQuery, string(KindEmailSubmission), q.Filter, optionalList(q.Sort))
}

// InMailbox is the query listing the threads of one mailbox, newest first.
func InMailbox(mailboxID string) EmailQuery {
	return EmailQuery{
		Filter:          EmailFilterCondition{InMailbox: mailboxID},
		Sort:            SortByReceivedAt,
		CollapseThreads: true,
	}
}
