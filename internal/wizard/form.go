package wizard

// Budget is the requested spend range for an event. Min must be strictly
// below Max once both are set.
type Budget struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type TimelineEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
}

// FormData is the central record the wizard collects. Field names mirror the
// create-event payload so a populated form converts 1:1 into a service call.
type FormData struct {
	EventName   string `json:"event_name"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	DateTime       string `json:"date_time"`
	Duration       string `json:"duration"`
	CustomDuration string `json:"custom_duration"`

	State        string `json:"state"`
	City         string `json:"city"`
	VenueDetails string `json:"venue_details"`

	TraditionStyle string `json:"tradition_style"`
	Attendees      int    `json:"attendees"`
	Budget         Budget `json:"budget"`

	Description         string `json:"description"`
	CustomRequirements  string `json:"custom_requirements"`
	SpecialInstructions string `json:"special_instructions"`
	AccessibilityNeeds  string `json:"accessibility_needs"`

	NeedsVendor       bool   `json:"needs_vendor"`
	EventPriority     string `json:"event_priority"`
	ContactPreference string `json:"contact_preference"`

	SelectedVendors  []string        `json:"selected_vendors"`
	Timeline         []TimelineEntry `json:"timeline"`
	FoodPreferences  []string        `json:"food_preferences"`
	InspirationImage string          `json:"inspiration_image"`
}

// NewFormData returns an empty form with the defaults the wizard starts
// from. eventName is prefilled with the subsection name when known.
func NewFormData(eventName string) FormData {
	return FormData{
		EventName:         eventName,
		EventPriority:     "medium",
		ContactPreference: "both",
		SelectedVendors:   []string{},
		Timeline:          []TimelineEntry{},
		FoodPreferences:   []string{},
	}
}
