package model

import "time"

// Session is one recorded 1:1 meeting for a person.
type Session struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PersonID         uint      `gorm:"not null;index" json:"person_id"`
	Date             time.Time `gorm:"not null;index" json:"date"`
	RawNotes         string    `gorm:"type:text" json:"raw_notes"`
	GeneratedSummary string    `gorm:"type:text" json:"generated_summary"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
