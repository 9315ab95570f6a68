package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	ClientName          string    `gorm:"not null" json:"client_name"`
	ClientEmail         string    `gorm:"not null" json:"client_email"`
	ClientPhone         string    `gorm:"not null" json:"client_phone"`
	Date                time.Time `gorm:"not null" json:"date"`
	Duration            string    `json:"duration"`
	CustomDuration      string    `json:"custom_duration"`
	State               string    `json:"state"`
	City                string    `json:"city"`
	VenueDetails        string    `json:"venue_details"`
	TraditionStyle      string    `json:"tradition_style"`
	Attendees           int       `gorm:"not null" json:"attendees"`
	BudgetMin           int       `json:"budget_min"`
	BudgetMax           int       `json:"budget_max"`
	Description         string    `json:"description"`
	CustomRequirements  string    `json:"custom_requirements"`
	SpecialInstructions string    `json:"special_instructions"`
	AccessibilityNeeds  string    `json:"accessibility_needs"`
	EventPriority       string    `gorm:"default:'medium'" json:"event_priority"`
	ContactPreference   string    `gorm:"default:'both'" json:"contact_preference"`
	NeedsVendor         bool      `gorm:"default:false" json:"needs_vendor"`
	Status              string    `gorm:"not null;default:'planning'" json:"status"`
	SectionID           string    `json:"section_id"`
	SubsectionID        string    `json:"subsection_id"`
	InspirationImage    string    `json:"inspiration_image"`

	FoodPreferences pq.StringArray  `gorm:"type:text[]" json:"food_preferences"`
	Timeline        []TimelineEntry `gorm:"foreignKey:EventID" json:"timeline"`
	Guests          []EventGuest    `gorm:"foreignKey:EventID" json:"guests,omitempty"`
	Bookings        []Booking       `gorm:"foreignKey:EventID" json:"bookings,omitempty"`

	User   User      `json:"user,omitempty"`
	UserID uuid.UUID `json:"user_id"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

type TimelineEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	Title   string    `gorm:"not null" json:"title"`
	Time    string    `gorm:"not null" json:"time"`
	EventID uuid.UUID `gorm:"type:uuid;index" json:"event_id"`
}
