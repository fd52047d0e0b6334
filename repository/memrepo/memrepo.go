// Package memrepo provides map-backed repositories for tests. Every read and
// write copies the entity so callers never share memory with the store.
package memrepo

import (
	"context"
	"sync"

	"freightdesk/apperr"
)

// table is an insertion-ordered map of cloned values.
type table[T any] struct {
	mu     sync.Mutex
	entity string
	clone  func(*T) *T
	order  []string
	rows   map[string]*T

	// FailUpdate and FailDelete make writes to the given id return the error.
	FailUpdate map[string]error
	FailDelete map[string]error
}

func newTable[T any](entity string, clone func(*T) *T) *table[T] {
	return &table[T]{
		entity:     entity,
		clone:      clone,
		rows:       map[string]*T{},
		FailUpdate: map[string]error{},
		FailDelete: map[string]error{},
	}
}

func (t *table[T]) insert(_ context.Context, id string, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return apperr.Conflict("%s already exists", t.entity)
	}
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(_ context.Context, id string) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, apperr.NotFound(t.entity, id)
	}
	return t.clone(v), nil
}

func (t *table[T]) all(match func(*T) bool) []*T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if match == nil || match(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

func (t *table[T]) replace(_ context.Context, id string, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.FailUpdate[id]; err != nil {
		return err
	}
	if _, ok := t.rows[id]; !ok {
		return apperr.NotFound(t.entity, id)
	}
	t.rows[id] = t.clone(v)
	return nil
}

func (t *table[T]) upsert(_ context.Context, id string, v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
}

func (t *table[T]) remove(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.FailDelete[id]; err != nil {
		return err
	}
	if _, ok := t.rows[id]; !ok {
		return apperr.NotFound(t.entity, id)
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored rows.
func (t *table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}
