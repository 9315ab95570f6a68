package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `gorm:"not null;index" json:"category"`
	Description   string    `json:"description"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	Location      string    `json:"location"`
	PriceRangeMin int       `json:"price_range_min"`
	PriceRangeMax int       `json:"price_range_max"`
	Rating        float64   `gorm:"default:0" json:"rating"`
	IsAvailable   bool      `gorm:"default:true" json:"is_available"`
}

func (vendor *Vendor) BeforeCreate(tx *gorm.DB) (err error) {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	return
}
