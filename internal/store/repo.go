package store

import (
	"sort"
	"sync"
	"time"
)

// Record is a stored entity addressed by its store-assigned id.
type Record interface {
	Key() string
}

// Insert is an insertable shape that knows how to become a full record once
// the store has chosen an id and creation time. Build merges the shape's
// defaults.
type Insert[T any] interface {
	Build(id string, at time.Time) T
}

// Patch is a partial shape. Apply shallow-merges the supplied fields onto a
// copy of the record and returns it.
type Patch[T any] interface {
	Apply(T) T
}

// Repo is the in-memory repository for one entity kind. Missing ids are
// reported through boolean returns, never as errors.
type Repo[T Record, I Insert[T], P Patch[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string

	// less orders List output; nil keeps insertion order.
	less func(a, b T) bool
	// keep copies immutable fields from the stored record onto an update
	// result.
	keep func(stored, updated T) T

	newID func() string
	now   func() time.Time
}

func newRepo[T Record, I Insert[T], P Patch[T]](newID func() string, now func() time.Time) *Repo[T, I, P] {
	return &Repo[T, I, P]{
		items: make(map[string]T),
		newID: newID,
		now:   now,
	}
}

// Create assigns a fresh id and timestamp, stores the record built from in
// and returns it.
func (r *Repo[T, I, P]) Create(in I) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for _, taken := r.items[id]; taken; _, taken = r.items[id] {
		id = r.newID()
	}
	rec := in.Build(id, r.now())
	r.items[id] = rec
	r.order = append(r.order, id)
	return rec
}

// Get returns the record stored under id.
func (r *Repo[T, I, P]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	return rec, ok
}

// List returns every record, ordered by the repository's ordering when it
// has one and by insertion otherwise.
func (r *Repo[T, I, P]) List() []T {
	return r.Filter(nil)
}

// Filter returns the records matching keep in List order. A nil keep
// matches everything.
func (r *Repo[T, I, P]) Filter(keep func(T) bool) []T {
	r.mu.RLock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		rec := r.items[id]
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	if r.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return r.less(out[i], out[j]) })
	}
	return out
}

// Find returns the first record in insertion order matching match.
func (r *Repo[T, I, P]) Find(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if rec := r.items[id]; match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Update shallow-merges p onto the record stored under id. The id and
// creation time of the stored record survive whatever Apply returns.
func (r *Repo[T, I, P]) Update(id string, p P) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := p.Apply(stored)
	if r.keep != nil {
		updated = r.keep(stored, updated)
	}
	r.items[id] = updated
	return updated, true
}

// Delete removes the record stored under id and reports whether one existed.
func (r *Repo[T, I, P]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored records.
func (r *Repo[T, I, P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
