package model

import "time"

type Person struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:128;not null" json:"name"`
	Role      string     `gorm:"size:128" json:"role"`
	Level     string     `gorm:"size:32" json:"level"`
	Team      string     `gorm:"size:128" json:"team"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
