package store

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-jmap-sync/models"
)

// entityTable holds every cached object of one entity type together with
// the state they were fetched at. An empty state means never loaded.
type entityTable[T models.Entity] struct {
	kind   models.EntityKind
	fields fieldTable[T]

	mu    sync.RWMutex
	state string
	items map[string]T
}

func newEntityTable[T models.Entity](kind models.EntityKind, fields fieldTable[T]) *entityTable[T] {
	return &entityTable[T]{kind: kind, fields: fields, items: make(map[string]T)}
}

func (t *entityTable[T]) State() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// set replaces the table with a full load.
func (t *entityTable[T]) set(state string, list []T) {
	items := make(map[string]T, len(list))
	for _, item := range list {
		items[item.EntityID()] = item
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = items
	t.state = state
}

// add inserts objects fetched at state without advancing the state.
func (t *entityTable[T]) add(state string, list []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state == "" || state != t.state {
		return fmt.Errorf("%w: adding %s at state %q, cached state is %q", ErrCacheConflict, t.kind, state, t.state)
	}
	for _, item := range list {
		t.items[item.EntityID()] = item
	}
	return nil
}

// apply validates the whole update before touching the table. Wholesale
// updates of objects that are not cached insert them; patches need a target.
func (t *entityTable[T]) apply(u models.Update[T]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == "" || u.OldState != t.state {
		return fmt.Errorf("%w: %s update from %q, cached state is %q", ErrCacheConflict, t.kind, u.OldState, t.state)
	}

	patch, err := t.fields.patcher(u.Properties)
	if err != nil {
		return fmt.Errorf("%s update: %w", t.kind, err)
	}
	if patch != nil {
		for _, item := range u.Updated {
			if _, ok := t.items[item.EntityID()]; !ok {
				return fmt.Errorf("%w: cannot patch %s %s, it is not cached", ErrCacheWrite, t.kind, item.EntityID())
			}
		}
	}

	for _, item := range u.Created {
		t.items[item.EntityID()] = item
	}
	for _, item := range u.Updated {
		if patch == nil {
			t.items[item.EntityID()] = item
			continue
		}
		target := t.items[item.EntityID()]
		patch(&target, item)
		t.items[item.EntityID()] = target
	}
	for _, id := range u.Destroyed {
		delete(t.items, id)
	}
	t.state = u.NewState

	return nil
}

func (t *entityTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[id]
	return item, ok
}

// all returns every object ordered by id.
func (t *entityTable[T]) all() []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item)
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(a.EntityID(), b.EntityID()) })
	return out
}
