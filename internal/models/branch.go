package models

import (
	"time"

	"gorm.io/datatypes"
)

type Branch struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:255;not null;default:''" json:"address"`

	StartTime *datatypes.Time `json:"start_time"`
	EndTime   *datatypes.Time `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
