package wizard

import (
	"regexp"
	"strings"
)

// ValidationErrors maps a field name to a human-readable message. A field
// absent from the map is valid.
type ValidationErrors map[string]string

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate checks the whole form and reports every violation at once. It is
// pure: no I/O, no mutation of the form.
func Validate(form FormData) ValidationErrors {
	errors := ValidationErrors{}

	if strings.TrimSpace(form.EventName) == "" {
		errors["eventName"] = "Event name is required"
	}

	if strings.TrimSpace(form.ClientName) == "" {
		errors["clientName"] = "Client name is required"
	}

	if strings.TrimSpace(form.ClientEmail) == "" {
		errors["clientEmail"] = "Client email is required"
	} else if !emailPattern.MatchString(form.ClientEmail) {
		errors["clientEmail"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(form.ClientPhone) == "" {
		errors["clientPhone"] = "Phone number is required"
	}

	if form.DateTime == "" {
		errors["dateTime"] = "Date and time is required"
	}

	if form.Duration == "" {
		errors["duration"] = "Duration is required"
	}

	if form.Attendees <= 0 {
		errors["attendees"] = "Number of attendees is required"
	}

	if form.Budget.Min == 0 || form.Budget.Max == 0 {
		errors["budget"] = "Budget range is required"
	} else if form.Budget.Min >= form.Budget.Max {
		errors["budget"] = "Maximum budget must be greater than minimum budget"
	}

	return errors
}

// IsFormValid reports whether a validation pass found nothing to complain
// about.
func IsFormValid(errors ValidationErrors) bool {
	return len(errors) == 0
}
