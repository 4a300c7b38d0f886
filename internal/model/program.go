package model

import "time"

type ProgramStatus string

const (
	StatusOnTrack   ProgramStatus = "on-track"
	StatusAtRisk    ProgramStatus = "at-risk"
	StatusOffTrack  ProgramStatus = "off-track"
	StatusBlocked   ProgramStatus = "blocked"
	StatusCompleted ProgramStatus = "completed"
	StatusOnHold    ProgramStatus = "on-hold"
)

func (s ProgramStatus) Valid() bool {
	switch s {
	case StatusOnTrack, StatusAtRisk, StatusOffTrack, StatusBlocked, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type Program struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"size:128;not null" json:"name"`
	Objective    string        `gorm:"type:text" json:"objective"`
	Status       ProgramStatus `gorm:"size:32;not null" json:"status"`
	Owner        string        `gorm:"size:128" json:"owner"`
	TargetDate   *time.Time    `json:"target_date,omitempty"`
	Stakeholders string        `gorm:"type:text" json:"stakeholders"`
	Notes        string        `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
