package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	State     string         `gorm:"not null;uniqueIndex:idx_state_city" json:"state"`
	City      string         `gorm:"not null;uniqueIndex:idx_state_city" json:"city"`
	IsPopular bool           `gorm:"default:false" json:"is_popular"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
