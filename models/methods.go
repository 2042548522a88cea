package models

import "encoding/json"

// GetCall are the arguments of "<Kind>/get". Either IDs or IDsRef is sent;
// nil IDs without a reference fetches every object.
type GetCall struct {
	AccountID     string
	IDs           []string
	IDsRef        *ResultReference
	Properties    []string
	PropertiesRef *ResultReference
}

func (c GetCall) MarshalJSON() ([]byte, error) {
	args := map[string]any{"accountId": c.AccountID}
	if c.IDsRef != nil {
		args["#ids"] = c.IDsRef
	} else {
		args["ids"] = c.IDs
	}
	switch {
	case c.PropertiesRef != nil:
		args["#properties"] = c.PropertiesRef
	case c.Properties != nil:
		args["properties"] = c.Properties
	}
	return json.Marshal(args)
}

// GetResponse is the result of "<Kind>/get".
type GetResponse[T Entity] struct {
	AccountID string   `json:"accountId"`
	State     string   `json:"state"`
	List      []T      `json:"list"`
	NotFound  []string `json:"notFound,omitempty"`
}

// ChangesCall are the arguments of "<Kind>/changes".
type ChangesCall struct {
	AccountID  string `json:"accountId"`
	SinceState string `json:"sinceState"`
	MaxChanges int    `json:"maxChanges,omitempty"`
}

// ChangesResponse is the result of "<Kind>/changes". UpdatedProperties is only
// sent for mailboxes, and only when every update touched counters alone.
type ChangesResponse struct {
	AccountID         string   `json:"accountId"`
	OldState          string   `json:"oldState"`
	NewState          string   `json:"newState"`
	HasMoreChanges    bool     `json:"hasMoreChanges"`
	Created           []string `json:"created"`
	Updated           []string `json:"updated"`
	Destroyed         []string `json:"destroyed"`
	UpdatedProperties []string `json:"updatedProperties,omitempty"`
}

// QueryCall are the arguments of "<Kind>/query".
type QueryCall struct {
	AccountID       string       `json:"accountId"`
	Filter          Filter       `json:"filter,omitempty"`
	Sort            []Comparator `json:"sort,omitempty"`
	Position        int          `json:"position,omitempty"`
	Anchor          string       `json:"anchor,omitempty"`
	AnchorOffset    int          `json:"anchorOffset,omitempty"`
	Limit           int          `json:"limit,omitempty"`
	CalculateTotal  bool         `json:"calculateTotal,omitempty"`
	CollapseThreads bool         `json:"collapseThreads,omitempty"`
}

// QueryResponse is the result of "<Kind>/query".
type QueryResponse struct {
	AccountID           string   `json:"accountId"`
	QueryState          string   `json:"queryState"`
	CanCalculateChanges bool     `json:"canCalculateChanges"`
	Position            int      `json:"position"`
	IDs                 []string `json:"ids"`
	Total               int      `json:"total,omitempty"`
}

// QueryChangesCall are the arguments of "<Kind>/queryChanges".
type QueryChangesCall struct {
	AccountID       string       `json:"accountId"`
	Filter          Filter       `json:"filter,omitempty"`
	Sort            []Comparator `json:"sort,omitempty"`
	SinceQueryState string       `json:"sinceQueryState"`
	MaxChanges      int          `json:"maxChanges,omitempty"`
	UpToID          string       `json:"upToId,omitempty"`
	CalculateTotal  bool         `json:"calculateTotal,omitempty"`
	CollapseThreads bool         `json:"collapseThreads,omitempty"`
}

// AddedID is one entry of the "added" list of a queryChanges result.
type AddedID struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// QueryChangesResponse is the result of "<Kind>/queryChanges".
type QueryChangesResponse struct {
	AccountID     string    `json:"accountId"`
	OldQueryState string    `json:"oldQueryState"`
	NewQueryState string    `json:"newQueryState"`
	Total         int       `json:"total,omitempty"`
	Removed       []string  `json:"removed"`
	Added         []AddedID `json:"added"`
}

// SetCall are the arguments of "<Kind>/set".
type SetCall struct {
	AccountID string           `json:"accountId"`
	IfInState string           `json:"ifInState,omitempty"`
	Create    map[string]any   `json:"create,omitempty"`
	Update    map[string]Patch `json:"update,omitempty"`
	Destroy   []string         `json:"destroy,omitempty"`

	// OnSuccessUpdateEmail is only sent with EmailSubmission/set. Keys are
	// submission ids or "#" creation ids; the server answers with an
	// implicit Email/set sharing the call id.
	OnSuccessUpdateEmail map[string]Patch `json:"onSuccessUpdateEmail,omitempty"`
}

// SetError explains why one create/update/destroy of a set call failed.
type SetError struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Properties  []string `json:"properties,omitempty"`
}

// SetResponse is the result of "<Kind>/set".
type SetResponse struct {
	AccountID    string                     `json:"accountId"`
	OldState     string                     `json:"oldState,omitempty"`
	NewState     string                     `json:"newState"`
	Created      map[string]json.RawMessage `json:"created,omitempty"`
	Updated      map[string]json.RawMessage `json:"updated,omitempty"`
	Destroyed    []string                   `json:"destroyed,omitempty"`
	NotCreated   map[string]SetError        `json:"notCreated,omitempty"`
	NotUpdated   map[string]SetError        `json:"notUpdated,omitempty"`
	NotDestroyed map[string]SetError        `json:"notDestroyed,omitempty"`
}

// UpdatedCreatedCount is the number of objects the call created or updated.
func (r SetResponse) UpdatedCreatedCount() int {
	return len(r.Created) + len(r.Updated)
}

// Failures flattens every per-id failure of the response, keyed by
// "create:<id>", "update:<id>" or "destroy:<id>".
func (r SetResponse) Failures() map[string]SetError {
	if len(r.NotCreated)+len(r.NotUpdated)+len(r.NotDestroyed) == 0 {
		return nil
	}
	out := make(map[string]SetError, len(r.NotCreated)+len(r.NotUpdated)+len(r.NotDestroyed))
	for id, e := range r.NotCreated {
		out["create:"+id] = e
	}
	for id, e := range r.NotUpdated {
		out["update:"+id] = e
	}
	for id, e := range r.NotDestroyed {
		out["destroy:"+id] = e
	}
	return out
}

// Patch is a set of JSON-pointer keyed changes. A nil value is encoded as
// null and removes the addressed property.
type Patch map[string]any

// Set assigns value at path.
func (p Patch) Set(path string, value any) Patch {
	p[path] = value
	return p
}

// Remove marks path for removal.
func (p Patch) Remove(path string) Patch {
	p[path] = nil
	return p
}

// EmailMutableProperties are the email properties that can change after
// creation; email updates fetch and patch only these.
var EmailMutableProperties = []string{"keywords", "mailboxIds"}

// ThreadIDProperties restricts an Email/get to the thread id.
var ThreadIDProperties = []string{"threadId"}
