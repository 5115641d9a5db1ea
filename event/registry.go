package event

import (
	"sort"
	"sync"
)

// entry is one registered handler reference plus bookkeeping.
type entry struct {
	// owner is the listener that contributed this reference.
	owner Listener

	// seq is the registration sequence number. Entries with equal priority
	// dispatch in registration (FIFO) order; the ordering is explicit, not
	// an accident of a stable sort over an append-only slice.
	seq uint64

	ref HandlerRef
}

// Registry holds handler references sorted by (priority, registration order).
// It is safe for concurrent use. Dispatch works on snapshots so that
// register/unregister never interferes with an in-progress pass.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	nextSeq uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add validates and appends all of a listener's references, then re-sorts.
// On any invalid reference nothing is registered and ErrInvalidHandler is
// returned. Adding the same listener twice duplicates its handlers.
func (r *Registry) Add(owner Listener, refs []HandlerRef) error {
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ref := range refs {
		r.entries = append(r.entries, entry{
			owner: owner,
			seq:   r.nextSeq,
			ref:   ref,
		})
		r.nextSeq++
	}

	sort.Slice(r.entries, func(i, j int) bool {
		if r.entries[i].ref.Priority != r.entries[j].ref.Priority {
			return r.entries[i].ref.Priority < r.entries[j].ref.Priority
		}
		return r.entries[i].seq < r.entries[j].seq
	})

	return nil
}

// RemoveOwner removes every reference the listener contributed and returns
// how many were removed. Other listeners' references are untouched.
func (r *Registry) RemoveOwner(owner Listener) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	removed := 0
	for _, e := range r.entries {
		if e.owner == owner {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Zero the tail so removed owners are not pinned.
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry{}
	}
	r.entries = kept

	return removed
}

// Snapshot returns a copy of the current entries in dispatch order.
func (r *Registry) Snapshot() []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil
	}
	out := make([]entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered references.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
