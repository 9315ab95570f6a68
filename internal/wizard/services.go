package wizard

import (
	"context"
	"fmt"
	"time"
)

// EventPayload is the flattened create/update request the event service
// accepts.
type EventPayload struct {
	Name                string          `json:"name"`
	ClientName          string          `json:"client_name"`
	ClientEmail         string          `json:"client_email"`
	ClientPhone         string          `json:"client_phone"`
	Date                string          `json:"date"`
	Duration            string          `json:"duration"`
	CustomDuration      string          `json:"custom_duration"`
	State               string          `json:"state"`
	City                string          `json:"city"`
	VenueDetails        string          `json:"venue_details"`
	TraditionStyle      string          `json:"tradition_style"`
	Attendees           int             `json:"attendees"`
	BudgetMin           int             `json:"budget_min"`
	BudgetMax           int             `json:"budget_max"`
	Description         string          `json:"description"`
	CustomRequirements  string          `json:"custom_requirements"`
	SpecialInstructions string          `json:"special_instructions"`
	AccessibilityNeeds  string          `json:"accessibility_needs"`
	EventPriority       string          `json:"event_priority"`
	ContactPreference   string          `json:"contact_preference"`
	Timeline            []TimelineEntry `json:"timeline"`
	FoodPreferences     []string        `json:"food_preferences"`
	SectionID           string          `json:"section_id"`
	SubsectionID        string          `json:"subsection_id"`
}

// EventRecord is what the event service hands back after a create, update or
// fetch.
type EventRecord struct {
	ID string `json:"id"`
	EventPayload
}

type BookingRequest struct {
	VendorID    string `json:"vendor_id"`
	EventID     string `json:"event_id"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}

type BookingRecord struct {
	ID string `json:"id"`
	BookingRequest
}

// EventService is the external persistence the wizard submits to.
type EventService interface {
	CreateEvent(ctx context.Context, payload EventPayload) (*EventRecord, error)
	UpdateEvent(ctx context.Context, id string, payload EventPayload) (*EventRecord, error)
	GetEvent(ctx context.Context, id string) (*EventRecord, error)
}

// BookingService links vendors and organizers to a created event.
type BookingService interface {
	CreateBooking(ctx context.Context, req BookingRequest) (*BookingRecord, error)
}

// DraftStore is the slice of the storage adapter the wizard itself touches.
// All methods are best-effort; the store never fails the wizard.
type DraftStore interface {
	SaveDraft(form FormData)
	GetDraft() *FormData
	ClearDraft()
	GetEvent(id string) *FormData
}

// Payload flattens the form into the event service's request shape. The
// datetime-local value the form carries is normalized to RFC 3339.
func (f FormData) Payload(sectionID, subsectionID string) EventPayload {
	return EventPayload{
		Name:                f.EventName,
		ClientName:          f.ClientName,
		ClientEmail:         f.ClientEmail,
		ClientPhone:         f.ClientPhone,
		Date:                normalizeDateTime(f.DateTime),
		Duration:            f.Duration,
		CustomDuration:      f.CustomDuration,
		State:               f.State,
		City:                f.City,
		VenueDetails:        f.VenueDetails,
		TraditionStyle:      f.TraditionStyle,
		Attendees:           f.Attendees,
		BudgetMin:           f.Budget.Min,
		BudgetMax:           f.Budget.Max,
		Description:         f.Description,
		CustomRequirements:  f.CustomRequirements,
		SpecialInstructions: f.SpecialInstructions,
		AccessibilityNeeds:  f.AccessibilityNeeds,
		EventPriority:       f.EventPriority,
		ContactPreference:   f.ContactPreference,
		Timeline:            f.Timeline,
		FoodPreferences:     f.FoodPreferences,
		SectionID:           sectionID,
		SubsectionID:        subsectionID,
	}
}

// FormFromRecord hydrates a form from a persisted event, for edit mode.
func FormFromRecord(record *EventRecord) FormData {
	form := NewFormData(record.Name)
	form.ClientName = record.ClientName
	form.ClientEmail = record.ClientEmail
	form.ClientPhone = record.ClientPhone
	form.DateTime = localDateTime(record.Date)
	form.Duration = record.Duration
	form.CustomDuration = record.CustomDuration
	form.State = record.State
	form.City = record.City
	form.VenueDetails = record.VenueDetails
	form.TraditionStyle = record.TraditionStyle
	form.Attendees = record.Attendees
	form.Budget = Budget{Min: record.BudgetMin, Max: record.BudgetMax}
	form.Description = record.Description
	form.CustomRequirements = record.CustomRequirements
	form.SpecialInstructions = record.SpecialInstructions
	form.AccessibilityNeeds = record.AccessibilityNeeds
	if record.EventPriority != "" {
		form.EventPriority = record.EventPriority
	}
	if record.ContactPreference != "" {
		form.ContactPreference = record.ContactPreference
	}
	if record.Timeline != nil {
		form.Timeline = record.Timeline
	}
	if record.FoodPreferences != nil {
		form.FoodPreferences = record.FoodPreferences
	}
	return form
}

const localDateTimeLayout = "2006-01-02T15:04"

func normalizeDateTime(value string) string {
	if value == "" {
		return ""
	}
	if t, err := time.ParseInLocation(localDateTimeLayout, value, time.Local); err == nil {
		return t.Format(time.RFC3339)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(time.RFC3339)
	}
	return value
}

func localDateTime(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(localDateTimeLayout)
	}
	if len(value) >= len(localDateTimeLayout) {
		return value[:len(localDateTimeLayout)]
	}
	return value
}

// ParseEventDate resolves the wire date back into a time.Time.
func ParseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(localDateTimeLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", value)
}
