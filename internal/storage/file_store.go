package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/partyoria/eventhub/internal/wizard"
)

const (
	eventsFile = "partyoria_events.json"
	draftFile  = "partyoria_draft.json"
)

// FileStore keeps events and the draft as JSON files under a data directory.
// Read and write failures are logged and swallowed; a FileStore never fails
// its caller.
type FileStore struct {
	mu  sync.Mutex
	dir string
	log *slog.Logger
}

func NewFileStore(dir string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) SaveEvent(id string, form wizard.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.readEvents()
	events[id] = form
	s.writeJSON(eventsFile, events)
}

func (s *FileStore) GetEvent(id string) *wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.readEvents()
	if form, ok := events[id]; ok {
		return &form
	}
	return nil
}

func (s *FileStore) GetAllEvents() map[string]wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readEvents()
}

func (s *FileStore) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.readEvents()
	delete(events, id)
	s.writeJSON(eventsFile, events)
}

func (s *FileStore) SaveDraft(form wizard.FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeJSON(draftFile, form)
}

func (s *FileStore) GetDraft() *wizard.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(filepath.Join(s.dir, draftFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("error getting draft from store", slog.Any("error", err))
		}
		return nil
	}
	var form wizard.FormData
	if err := json.Unmarshal(data, &form); err != nil {
		s.log.Error("error getting draft from store", slog.Any("error", err))
		return nil
	}
	return &form
}

func (s *FileStore) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(filepath.Join(s.dir, draftFile)); err != nil && !os.IsNotExist(err) {
		s.log.Error("error clearing draft from store", slog.Any("error", err))
	}
}

func (s *FileStore) readEvents() map[string]wizard.FormData {
	events := map[string]wizard.FormData{}
	data, err := os.ReadFile(filepath.Join(s.dir, eventsFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("error reading events from store", slog.Any("error", err))
		}
		return events
	}
	if err := json.Unmarshal(data, &events); err != nil {
		s.log.Error("error reading events from store", slog.Any("error", err))
		return map[string]wizard.FormData{}
	}
	return events
}

func (s *FileStore) writeJSON(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("error saving to store", slog.String("file", name), slog.Any("error", err))
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("error saving to store", slog.String("file", name), slog.Any("error", err))
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.log.Error("error saving to store", slog.String("file", name), slog.Any("error", err))
	}
}
