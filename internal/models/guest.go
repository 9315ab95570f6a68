package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventGuest struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"not null" json:"email"`
	Phone      string         `json:"phone"`
	RSVPStatus string         `gorm:"not null;default:'pending'" json:"rsvp_status"`
	EventID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
