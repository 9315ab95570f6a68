// Package storage persists saved events and the single in-progress draft.
// It is the local-storage analogue of the surrounding application: every
// operation is best-effort, and a failing backend degrades to nil/no-op
// rather than surfacing an error to the wizard.
package storage

import "github.com/partyoria/eventhub/internal/wizard"

// Store is a key-value adapter over event forms plus one unconditioned
// "current draft" slot.
type Store interface {
	SaveEvent(id string, form wizard.FormData)
	GetEvent(id string) *wizard.FormData
	GetAllEvents() map[string]wizard.FormData
	DeleteEvent(id string)

	SaveDraft(form wizard.FormData)
	GetDraft() *wizard.FormData
	ClearDraft()
}
