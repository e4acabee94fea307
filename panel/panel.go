// Package panel is the one CRUD panel implementation shared by every
// admin resource (events, participants, users, gallery, videos, system
// images). A Panel keeps the last known-good list for its resource and
// guarantees the list only ever reflects confirmed server state:
// wholesale replacement on load, server-returned entities on create and
// update, removal only after a confirmed delete.
// File: panel/panel.go
package panel

import (
	"context"
	"errors"
	"sync"
)

// ErrConfirmationRequired is returned by Delete when the caller has not
// carried an explicit user confirmation.
var ErrConfirmationRequired = errors.New("panel: delete requires explicit confirmation")

// Panel manages the in-memory list for one resource type. Safe for
// concurrent use; reads vastly outnumber writes.
type Panel[T any] struct {
	name string
	id   func(T) int

	mu    sync.RWMutex
	items []T
}

// New creates a panel for a resource. id extracts the server-assigned
// identifier from an entity.
func New[T any](name string, id func(T) int) *Panel[T] {
	return &Panel[T]{name: name, id: id}
}

// Name returns the resource name the panel was created with.
func (p *Panel[T]) Name() string { return p.name }

// Items returns a copy of the last known-good list, in server order.
func (p *Panel[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// ----------------------- CRUD operations -----------------------

// Load fetches the full list and replaces the in-memory copy wholesale.
// On failure the prior list is left untouched; there is no partial
// merge.
func (p *Panel[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	items, err := fetch(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	return nil
}

// Create runs the create call and, on success, appends the entity the
// server returned — never a locally built draft. On failure the list is
// unchanged and the caller keeps the form open.
func (p *Panel[T]) Create(ctx context.Context, create func(context.Context) (T, error)) (T, error) {
	created, err := create(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	p.mu.Lock()
	p.items = append(p.items, created)
	p.mu.Unlock()
	return created, nil
}

// Update runs the update call and, on success, replaces the matching
// entry with the server's copy. On failure the list is unchanged.
func (p *Panel[T]) Update(ctx context.Context, id int, update func(context.Context) (T, error)) (T, error) {
	updated, err := update(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	p.mu.Lock()
	for i, item := range p.items {
		if p.id(item) == id {
			p.items[i] = updated
			break
		}
	}
	p.mu.Unlock()
	return updated, nil
}

// Delete removes an entry only after the server confirms the delete,
// never optimistically before, and only when the user has explicitly
// confirmed. On failure the entry stays visible.
func (p *Panel[T]) Delete(ctx context.Context, id int, confirmed bool, remove func(context.Context) error) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := remove(ctx); err != nil {
		return err
	}
	p.mu.Lock()
	for i, item := range p.items {
		if p.id(item) == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	return nil
}
