package model

import "time"

type ProgramUpdate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProgramID       uint      `gorm:"not null;index" json:"program_id"`
	Summary         string    `gorm:"type:text;not null" json:"summary"`
	GeneratedReport string    `gorm:"type:text" json:"generated_report"`
	CreatedAt       time.Time `json:"created_at"`
}
