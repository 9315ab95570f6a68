package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() FormData {
	form := NewFormData("Garden Wedding")
	form.ClientName = "Priya Sharma"
	form.ClientEmail = "priya@example.com"
	form.ClientPhone = "+91 98765 43210"
	form.DateTime = "2026-09-12T18:30"
	form.Duration = "4 hours"
	form.State = "Karnataka"
	form.City = "Bangalore"
	form.Attendees = 150
	form.Budget = Budget{Min: 50000, Max: 200000}
	return form
}

func TestValidatePassesCompleteForm(t *testing.T) {
	errors := Validate(validForm())
	assert.Empty(t, errors)
	assert.True(t, IsFormValid(errors))
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	errors := Validate(NewFormData(""))

	require.Len(t, errors, 8)
	assert.Equal(t, "Event name is required", errors["eventName"])
	assert.Equal(t, "Client name is required", errors["clientName"])
	assert.Equal(t, "Client email is required", errors["clientEmail"])
	assert.Equal(t, "Phone number is required", errors["clientPhone"])
	assert.Equal(t, "Date and time is required", errors["dateTime"])
	assert.Equal(t, "Duration is required", errors["duration"])
	assert.Equal(t, "Number of attendees is required", errors["attendees"])
	assert.Equal(t, "Budget range is required", errors["budget"])
}

func TestValidateWhitespaceOnlyFieldsAreMissing(t *testing.T) {
	form := validForm()
	form.EventName = "   "
	form.ClientName = "\t"

	errors := Validate(form)
	assert.Equal(t, "Event name is required", errors["eventName"])
	assert.Equal(t, "Client name is required", errors["clientName"])
}

func TestValidateEmailFormat(t *testing.T) {
	form := validForm()
	form.ClientEmail = "not-an-email"

	errors := Validate(form)
	assert.Equal(t, "Please enter a valid email address", errors["clientEmail"])

	form.ClientEmail = "a@b.co"
	assert.Empty(t, Validate(form))
}

func TestValidateBudget(t *testing.T) {
	form := validForm()

	form.Budget = Budget{Min: 0, Max: 200000}
	assert.Equal(t, "Budget range is required", Validate(form)["budget"])

	form.Budget = Budget{Min: 50000, Max: 0}
	assert.Equal(t, "Budget range is required", Validate(form)["budget"])

	form.Budget = Budget{Min: 200000, Max: 50000}
	assert.Equal(t, "Maximum budget must be greater than minimum budget", Validate(form)["budget"])

	// Equal bounds fail the ordering rule, producing a single budget error.
	form.Budget = Budget{Min: 50000, Max: 50000}
	errors := Validate(form)
	require.Len(t, errors, 1)
	assert.Equal(t, "Maximum budget must be greater than minimum budget", errors["budget"])
}

func TestValidateIsPure(t *testing.T) {
	form := NewFormData("")
	before := form

	Validate(form)
	assert.Equal(t, before, form)
}
