package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgressEmptyForm(t *testing.T) {
	progress := ComputeProgress(NewFormData(""))

	require.Len(t, progress.Steps, 4)
	assert.Equal(t, 4, progress.TotalSteps)

	// Requirements is an optional section and always counts.
	assert.Equal(t, 1, progress.CompletedCount)
	assert.False(t, progress.Steps[0].Completed)
	assert.False(t, progress.Steps[1].Completed)
	assert.False(t, progress.Steps[2].Completed)
	assert.True(t, progress.Steps[3].Completed)
}

func TestComputeProgressPartialForm(t *testing.T) {
	form := NewFormData("Birthday Bash")
	form.ClientName = "Arjun Mehta"
	form.ClientEmail = "arjun@example.com"
	form.ClientPhone = "9876543210"

	progress := ComputeProgress(form)
	assert.Equal(t, 2, progress.CompletedCount)
	assert.True(t, progress.Steps[0].Completed)
	assert.False(t, progress.Steps[1].Completed)
}

func TestComputeProgressDetailsNeedsEveryField(t *testing.T) {
	form := NewFormData("")
	form.DateTime = "2026-09-12T18:30"
	form.Duration = "4 hours"
	form.State = "Karnataka"
	form.Attendees = 50

	// City still empty.
	progress := ComputeProgress(form)
	assert.False(t, progress.Steps[1].Completed)

	form.City = "Mysore"
	progress = ComputeProgress(form)
	assert.True(t, progress.Steps[1].Completed)
}

func TestComputeProgressCompleteForm(t *testing.T) {
	progress := ComputeProgress(validForm())
	assert.Equal(t, 4, progress.CompletedCount)
}
