package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyoria/eventhub/internal/wizard"
)

func sampleForm(name string) wizard.FormData {
	form := wizard.NewFormData(name)
	form.ClientName = "Priya Sharma"
	form.State = "Karnataka"
	form.City = "Bangalore"
	form.Attendees = 120
	form.Budget = wizard.Budget{Min: 50000, Max: 200000}
	return form
}

func TestFileStoreEventRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)

	require.Nil(t, store.GetEvent("evt-1"))

	store.SaveEvent("evt-1", sampleForm("Garden Wedding"))
	store.SaveEvent("evt-2", sampleForm("Birthday Bash"))

	got := store.GetEvent("evt-1")
	require.NotNil(t, got)
	assert.Equal(t, "Garden Wedding", got.EventName)
	assert.Equal(t, "Bangalore", got.City)

	all := store.GetAllEvents()
	assert.Len(t, all, 2)

	store.DeleteEvent("evt-1")
	assert.Nil(t, store.GetEvent("evt-1"))
	assert.NotNil(t, store.GetEvent("evt-2"))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	NewFileStore(dir, nil).SaveEvent("evt-1", sampleForm("Garden Wedding"))

	reopened := NewFileStore(dir, nil)
	got := reopened.GetEvent("evt-1")
	require.NotNil(t, got)
	assert.Equal(t, "Garden Wedding", got.EventName)
}

func TestFileStoreDraftLifecycle(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)

	assert.Nil(t, store.GetDraft())

	store.SaveDraft(sampleForm("Half-finished Gala"))
	draft := store.GetDraft()
	require.NotNil(t, draft)
	assert.Equal(t, "Half-finished Gala", draft.EventName)

	store.ClearDraft()
	assert.Nil(t, store.GetDraft())

	// Clearing an already-empty slot is harmless.
	store.ClearDraft()
}

func TestFileStoreSurvivesCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partyoria_events.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partyoria_draft.json"), []byte("[]"), 0o644))

	store := NewFileStore(dir, nil)

	assert.Nil(t, store.GetDraft())
	assert.Empty(t, store.GetAllEvents())

	// A save replaces the corrupt file and reads recover.
	store.SaveEvent("evt-1", sampleForm("Garden Wedding"))
	assert.NotNil(t, store.GetEvent("evt-1"))
}

func TestFileStoreMissingDirectoryIsCreatedOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir, nil)

	store.SaveDraft(sampleForm("Garden Wedding"))
	require.NotNil(t, store.GetDraft())
}

func TestMemoryStoreEventRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.Nil(t, store.GetEvent("evt-1"))
	store.SaveEvent("evt-1", sampleForm("Garden Wedding"))

	got := store.GetEvent("evt-1")
	require.NotNil(t, got)
	assert.Equal(t, "Garden Wedding", got.EventName)

	store.DeleteEvent("evt-1")
	assert.Nil(t, store.GetEvent("evt-1"))
}

func TestMemoryStoreDraftIsCopied(t *testing.T) {
	store := NewMemoryStore()
	store.SaveDraft(sampleForm("Garden Wedding"))

	first := store.GetDraft()
	require.NotNil(t, first)
	first.EventName = "mutated"

	second := store.GetDraft()
	assert.Equal(t, "Garden Wedding", second.EventName)

	store.ClearDraft()
	assert.Nil(t, store.GetDraft())
}

func TestStoreInterfaceCompliance(t *testing.T) {
	var _ Store = (*FileStore)(nil)
	var _ Store = (*MemoryStore)(nil)
}
