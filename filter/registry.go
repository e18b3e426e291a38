// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/uvmap/settings"
)

// globalRegistry holds the kinds registered with Register.
var globalRegistry = NewRegistry()

// Registry maps kind IDs to kinds.
//
// Hosts look kinds up by the ID they stored with a scene:
//
//	kind, ok := filter.Lookup("uvmap-cell-shuffle")
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds a kind to the global registry. Registering an ID that
// already exists replaces the previous kind.
func Register(k Kind) { globalRegistry.Register(k) }

// Unregister removes a kind from the global registry.
func Unregister(id string) { globalRegistry.Unregister(id) }

// Lookup returns the globally registered kind with the given ID.
func Lookup(id string) (Kind, bool) { return globalRegistry.Lookup(id) }

// List returns the globally registered IDs in sorted order.
func List() []string { return globalRegistry.List() }

// New creates a filter of a globally registered kind.
func New(id string, g Graphics, s settings.Settings) (Filter, error) {
	return globalRegistry.New(id, g, s)
}

// Register adds k to r.
func (r *Registry) Register(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k.ID()] = k
}

// Unregister removes the kind with the given ID.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.kinds, id)
}

// Lookup returns the kind with the given ID.
func (r *Registry) Lookup(id string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[id]
	return k, ok
}

// List returns all registered IDs in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.kinds))
	for id := range r.kinds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// New creates a filter of the kind with the given ID.
func (r *Registry) New(id string, g Graphics, s settings.Settings) (Filter, error) {
	k, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, id)
	}
	return k.Create(g, s)
}
