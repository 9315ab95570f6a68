package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Location    string    `gorm:"not null;index" json:"location"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	PriceRange  string    `json:"price_range"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
