package templates

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps templates in process memory. Suitable for tests and
// single-process hosts.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Kind]map[string]Template
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[Kind]map[string]Template{}}
}

// Get returns the template with the given id.
func (s *MemoryStore) Get(_ context.Context, kind Kind, id string) (Template, error) {
	if !validKind(kind) {
		return Template{}, ErrInvalidKind
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.data[kind][id]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tpl, nil
}

// List returns all templates of the kind sorted by name.
func (s *MemoryStore) List(_ context.Context, kind Kind) ([]Template, error) {
	if !validKind(kind) {
		return nil, ErrInvalidKind
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Template, 0, len(s.data[kind]))
	for _, tpl := range s.data[kind] {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Save inserts or replaces a template, assigning an id when absent.
func (s *MemoryStore) Save(_ context.Context, kind Kind, tpl Template) (Template, error) {
	if !validKind(kind) {
		return Template{}, ErrInvalidKind
	}
	if strings.TrimSpace(tpl.Body) == "" {
		return Template{}, ErrEmptyBody
	}
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[kind] == nil {
		s.data[kind] = map[string]Template{}
	}
	s.data[kind][tpl.ID] = tpl
	return tpl, nil
}
