package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func resetWizardSessions() {
	wizardSessionsMu.Lock()
	wizardSessions = make(map[string]*wizardSession)
	wizardSessionsMu.Unlock()
}

func TestPruneWizardSessionsEvictsIdleSessions(t *testing.T) {
	resetWizardSessions()
	defer resetWizardSessions()

	now := time.Now()
	wizardSessionsMu.Lock()
	wizardSessions["stale"] = &wizardSession{userID: uuid.New(), lastSeen: now.Add(-2 * wizardSessionTTL)}
	wizardSessions["fresh"] = &wizardSession{userID: uuid.New(), lastSeen: now.Add(-time.Minute)}
	wizardSessionsMu.Unlock()

	pruneWizardSessions(now)

	wizardSessionsMu.Lock()
	defer wizardSessionsMu.Unlock()
	assert.NotContains(t, wizardSessions, "stale")
	assert.Contains(t, wizardSessions, "fresh")
}

func TestDropWizardSession(t *testing.T) {
	resetWizardSessions()
	defer resetWizardSessions()

	wizardSessionsMu.Lock()
	wizardSessions["done"] = &wizardSession{userID: uuid.New(), lastSeen: time.Now()}
	wizardSessionsMu.Unlock()

	dropWizardSession("done")
	dropWizardSession("never-existed")

	wizardSessionsMu.Lock()
	defer wizardSessionsMu.Unlock()
	assert.Empty(t, wizardSessions)
}
