package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Row is a stored record together with its insertion sequence.
// Seq is monotonically increasing per table and breaks sort ties.
type Row[T any] struct {
	Seq   uint64
	Value T
}

// Compare orders two rows for List. It follows the cmp.Compare contract.
type Compare[T any] func(a, b Row[T]) int

// NewestFirst sorts by creation time descending; rows created in the same
// instant keep the most recently inserted one first.
func NewestFirst[T any](createdAt func(T) time.Time) Compare[T] {
	return func(a, b Row[T]) int {
		if c := createdAt(b.Value).Compare(createdAt(a.Value)); c != 0 {
			return c
		}
		return cmp.Compare(b.Seq, a.Seq)
	}
}

// Ascending sorts by an integer key, then by insertion order.
func Ascending[T any](key func(T) int) Compare[T] {
	return func(a, b Row[T]) int {
		if c := cmp.Compare(key(a.Value), key(b.Value)); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	}
}

type options struct {
	newID func() string
	now   func() time.Time
}

// Option customises a Table.
type Option func(*options)

// WithIDFunc overrides the identifier generator (uuid v4 by default).
func WithIDFunc(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

// Table is a process-local keyed collection of records of one kind.
// It is safe for concurrent use.
type Table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]Row[T]
	seq     uint64
	compare Compare[T]
	newID   func() string
	now     func() time.Time
}

func NewTable[T any](compare Compare[T], opts ...Option) *Table[T] {
	o := options{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[T]{
		rows:    make(map[string]Row[T]),
		compare: compare,
		newID:   o.newID,
		now:     o.now,
	}
}

// Insert allocates an identifier and creation time, builds the record
// from them and stores it.
func (t *Table[T]) Insert(build func(id string, createdAt time.Time) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.newID()
	for _, taken := t.rows[id]; taken; _, taken = t.rows[id] {
		id = t.newID()
	}

	t.seq++
	v := build(id, t.now())
	t.rows[id] = Row[T]{Seq: t.seq, Value: v}
	return v
}

func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	return r.Value, ok
}

// Update applies mutate to the stored record in place. The record keeps
// its original insertion sequence.
func (t *Table[T]) Update(id string, mutate func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&r.Value)
	t.rows[id] = r
	return r.Value, true
}

func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// List returns every record in table order. The result is never nil.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	rows := make([]Row[T], 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	t.mu.RUnlock()

	slices.SortFunc(rows, func(a, b Row[T]) int { return t.compare(a, b) })

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}
	return out
}

// Find returns the first record (in insertion order) matching pred.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		found T
		seq   uint64
		ok    bool
	)
	for _, r := range t.rows {
		if pred(r.Value) && (!ok || r.Seq < seq) {
			found, seq, ok = r.Value, r.Seq, true
		}
	}
	return found, ok
}

func (t *Table[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
