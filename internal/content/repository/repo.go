package repository

import (
	"fmt"
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/storage/memory"
)

// Input is a typed request body that can be merged into a record.
type Input[T any] interface {
	Apply(*T)
}

// Repo is the CRUD set for one content kind, backed by a memory table.
type Repo[T any, In Input[T]] struct {
	kind  domain.Kind
	table *memory.Table[T]
	stamp func(id string, createdAt time.Time) T
}

func newRepo[T any, In Input[T]](kind domain.Kind, table *memory.Table[T], stamp func(string, time.Time) T) *Repo[T, In] {
	return &Repo[T, In]{kind: kind, table: table, stamp: stamp}
}

func (r *Repo[T, In]) Kind() domain.Kind { return r.kind }

// List returns all records in the kind's display order.
func (r *Repo[T, In]) List() []T {
	return r.table.List()
}

func (r *Repo[T, In]) Get(id string) (T, error) {
	v, ok := r.table.Get(id)
	if !ok {
		return v, fmt.Errorf("%s %q: %w", r.kind, id, domain.ErrNotFound)
	}
	return v, nil
}

// Create stores a new record built from in with a fresh id and timestamp.
func (r *Repo[T, In]) Create(in In) T {
	return r.table.Insert(func(id string, at time.Time) T {
		rec := r.stamp(id, at)
		in.Apply(&rec)
		return rec
	})
}

// Update merges the supplied fields of in into the stored record.
func (r *Repo[T, In]) Update(id string, in In) (T, error) {
	v, ok := r.table.Update(id, in.Apply)
	if !ok {
		return v, fmt.Errorf("%s %q: %w", r.kind, id, domain.ErrNotFound)
	}
	return v, nil
}

// Delete reports whether a record was removed.
func (r *Repo[T, In]) Delete(id string) bool {
	return r.table.Delete(id)
}

func (r *Repo[T, In]) Count() int {
	return r.table.Count()
}
