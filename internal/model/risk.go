package model

import "time"

type RiskSeverity string

const (
	SeverityCritical RiskSeverity = "critical"
	SeverityHigh     RiskSeverity = "high"
	SeverityMedium   RiskSeverity = "medium"
	SeverityLow      RiskSeverity = "low"
)

func (s RiskSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Rank orders severities for display: critical sorts before high, and so on.
// Unknown severities sort last.
func (s RiskSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

type Risk struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	ProgramID  uint         `gorm:"not null;index" json:"program_id"`
	Title      string       `gorm:"size:256;not null" json:"title"`
	Details    string       `gorm:"type:text" json:"details"`
	Severity   RiskSeverity `gorm:"size:16;not null" json:"severity"`
	Mitigation string       `gorm:"type:text" json:"mitigation"`
	Owner      string       `gorm:"size:128" json:"owner"`
	CreatedAt  time.Time    `json:"created_at"`
}
