package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is a thread-safe set of named counters.
// Registration takes the mutex; cached pointers are updated lock-free.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*atomic.Int64),
	}
}

// Counter returns the counter for key, creating it at zero if absent
func (r *Registry) Counter(key string) *atomic.Int64 {
	// Fast path: RLock check
	r.mu.RLock()
	if ptr, ok := r.items[key]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := r.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	r.items[key] = ptr
	return ptr
}

// Value reads a counter without creating it; missing keys read as zero
func (r *Registry) Value(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ptr, ok := r.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits every counter in sorted key order
func (r *Registry) Range(fn func(key string, value int64)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, r.items[k].Load())
	}
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
