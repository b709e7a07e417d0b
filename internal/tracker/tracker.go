// Package tracker counts lookup requests per normalized name.
package tracker

import (
	"sort"
	"sync"

	"agelookup/internal/validation"
)

// Tracker holds per-name request counts for the lifetime of the process.
// It is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	counts map[string]int
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Increment bumps the counter for name's normalized form and returns that form.
func (t *Tracker) Increment(name string) (string, error) {
	key, err := validation.NormalizeName(name)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[key]++
	return key, nil
}

// Snapshot returns a copy of the current counts. Never nil.
func (t *Tracker) Snapshot() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Names returns the tracked names in sorted order.
func (t *Tracker) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.counts))
	for k := range t.counts {
		names = append(names, k)
	}
	t.mu.RUnlock()

	sort.Strings(names)
	return names
}
