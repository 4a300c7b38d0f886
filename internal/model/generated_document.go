package model

import "time"

type DocumentKind string

const (
	KindPerformanceReview DocumentKind = "performance-review"
	KindPromotionPacket   DocumentKind = "promotion-packet"
	KindOneOnOneSummary   DocumentKind = "one-on-one-summary"
	KindDevelopmentPlan   DocumentKind = "development-plan"
	KindProgramStatus     DocumentKind = "program-status"
	KindStakeholderEmail  DocumentKind = "stakeholder-email"
	KindRiskReport        DocumentKind = "risk-report"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case KindPerformanceReview, KindPromotionPacket, KindOneOnOneSummary,
		KindDevelopmentPlan, KindProgramStatus, KindStakeholderEmail, KindRiskReport:
		return true
	}
	return false
}

// GeneratedDocument archives one successful generation. PersonID is nil for
// program-scoped kinds; PersonName is denormalized so the archive stays
// readable after a person record changes.
type GeneratedDocument struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Kind       DocumentKind `gorm:"size:32;not null;index" json:"kind"`
	Title      string       `gorm:"size:256;not null" json:"title"`
	InputNotes string       `gorm:"type:text" json:"input_notes"`
	Content    string       `gorm:"type:text;not null" json:"content"`
	Rating     string       `gorm:"size:64" json:"rating,omitempty"`
	Period     string       `gorm:"size:64" json:"period,omitempty"`
	PersonID   *uint        `gorm:"index" json:"person_id,omitempty"`
	PersonName string       `gorm:"size:128" json:"person_name,omitempty"`
	ProgramID  *uint        `gorm:"index" json:"program_id,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
