package models

// ObjectsState is a snapshot of the entity states a query window depends on.
// An empty string means the entity type was never loaded.
type ObjectsState struct {
	MailboxState string
	ThreadState  string
	EmailState   string
}

// QueryWindowState describes a cached window: its query state, the email id
// of its last item (the paging anchor) and the entity states of the cache.
type QueryWindowState struct {
	QueryState string
	UpTo       string
	Objects    ObjectsState
}

// Missing lists ids a query window references that are not cached, together
// with the states a backfill insert has to be checked against.
type Missing struct {
	ThreadState string
	EmailState  string
	ThreadIDs   []string
	EmailIDs    []string
}

func (m Missing) IsEmpty() bool {
	return len(m.ThreadIDs) == 0 && len(m.EmailIDs) == 0
}
