package storage

import (
	"sync"

	"github.com/partyoria/eventhub/internal/wizard"
)

// MemoryStore is an in-process Store, used when no data directory is
// configured and as a test double.
type MemoryStore struct {
	mu     sync.Mutex
	events map[string]wizard.FormData
	draft  *wizard.FormData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: map[string]wizard.FormData{}}
}

func (s *MemoryStore) SaveEvent(id string, form wizard.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[id] = form
}

func (s *MemoryStore) GetEvent(id string) *wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if form, ok := s.events[id]; ok {
		return &form
	}
	return nil
}

func (s *MemoryStore) GetAllEvents() map[string]wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]wizard.FormData, len(s.events))
	for id, form := range s.events {
		out[id] = form
	}
	return out
}

func (s *MemoryStore) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
}

func (s *MemoryStore) SaveDraft(form wizard.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &form
}

func (s *MemoryStore) GetDraft() *wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil
	}
	draft := *s.draft
	return &draft
}

func (s *MemoryStore) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}
