// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Update is one delta page for entity type T: everything that happened
// between OldState and NewState.
//
// Properties, when non-empty, restricts how Updated entries are applied: only
// the listed properties are copied onto the cached object. An empty list
// replaces cached objects wholesale.
type Update[T Entity] struct {
	OldState   string
	NewState   string
	Created    []T
	Updated    []T
	Destroyed  []string
	Properties []string
	HasMore    bool
}

// NewUpdate assembles an Update from a changes result and the two get
// results fetched for its created and updated ids.
func NewUpdate[T Entity](changes ChangesResponse, created, updated GetResponse[T]) Update[T] {
	return Update[T]{
		OldState:   changes.OldState,
		NewState:   changes.NewState,
		Created:    created.List,
		Updated:    updated.List,
		Destroyed:  changes.Destroyed,
		Properties: changes.UpdatedProperties,
		HasMore:    changes.HasMoreChanges,
	}
}

// HasChanges reports whether applying the update would alter the cache.
func (u Update[T]) HasChanges() bool {
	return len(u.Created) > 0 || len(u.Updated) > 0 || len(u.Destroyed) > 0 || u.OldState != u.NewState
}

// Status is HAS_MORE for truncated pages, else UPDATED or UNCHANGED.
func (u Update[T]) Status() Status {
	if u.HasMore {
		return StatusHasMore
	}
	return StatusOf(u.HasChanges())
}

// QueryResultItem is one row of a query window. Both ids are required.
type QueryResultItem struct {
	EmailID  string `json:"emailId"`
	ThreadID string `json:"threadId"`
}

// AddedItem is a query result item inserted at Index of the post-removal
// window.
type AddedItem struct {
	Index int
	Item  QueryResultItem
}

// QueryResult is one page returned by Email/query, joined with the thread id
// of every returned email. EmailState is the Email state the thread ids were
// read at.
type QueryResult struct {
	QueryState          string
	CanCalculateChanges bool
	Position            int
	Total               int
	Items               []QueryResultItem
	EmailState          string
}

// NewQueryResult joins a query page with the Email/get that resolved its
// thread ids.
func NewQueryResult(query QueryResponse, threadIDs GetResponse[Email]) (QueryResult, error) {
	items, err := joinThreadIDs(query.IDs, threadIDs)
	if err != nil {
		return QueryResult{}, err
	}

	return QueryResult{
		QueryState:          query.QueryState,
		CanCalculateChanges: query.CanCalculateChanges,
		Position:            query.Position,
		Total:               query.Total,
		Items:               items,
		EmailState:          threadIDs.State,
	}, nil
}

// QueryUpdate is a queryChanges delta for one window.
type QueryUpdate struct {
	OldQueryState string
	NewQueryState string
	Removed       []string
	Added         []AddedItem
	EmailState    string
}

// NewQueryUpdate joins a queryChanges result with the Email/get that
// resolved the thread ids of the added emails.
func NewQueryUpdate(changes QueryChangesResponse, threadIDs GetResponse[Email]) (QueryUpdate, error) {
	ids := make([]string, 0, len(changes.Added))
	for _, a := range changes.Added {
		ids = append(ids, a.ID)
	}
	items, err := joinThreadIDs(ids, threadIDs)
	if err != nil {
		return QueryUpdate{}, err
	}

	added := make([]AddedItem, 0, len(items))
	for i, item := range items {
		added = append(added, AddedItem{Index: changes.Added[i].Index, Item: item})
	}

	return QueryUpdate{
		OldQueryState: changes.OldQueryState,
		NewQueryState: changes.NewQueryState,
		Removed:       changes.Removed,
		Added:         added,
		EmailState:    threadIDs.State,
	}, nil
}

func (u QueryUpdate) HasChanges() bool {
	return len(u.Removed) > 0 || len(u.Added) > 0 || u.OldQueryState != u.NewQueryState
}

func (u QueryUpdate) Status() Status {
	return StatusOf(u.HasChanges())
}

func joinThreadIDs(emailIDs []string, threadIDs GetResponse[Email]) ([]QueryResultItem, error) {
	byID := make(map[string]string, len(threadIDs.List))
	for _, e := range threadIDs.List {
		byID[e.ID] = e.ThreadID
	}

	items := make([]QueryResultItem, 0, len(emailIDs))
	for _, id := range emailIDs {
		threadID := byID[id]
		if threadID == "" {
			return nil, fmt.Errorf("%w: email %s", ErrMissingThreadID, id)
		}
		items = append(items, QueryResultItem{EmailID: id, ThreadID: threadID})
	}
	return items, nil
}
