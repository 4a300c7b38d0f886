package model

import "time"

// ActionItem is a tracked commitment arising from a session. PersonID is
// denormalized from the owning session so per-person queries need no join.
type ActionItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SessionID   uint       `gorm:"not null;index" json:"session_id"`
	PersonID    uint       `gorm:"not null;index" json:"person_id"`
	Title       string     `gorm:"size:256;not null" json:"title"`
	Owner       string     `gorm:"size:128" json:"owner"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `gorm:"not null;default:false;index" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsOverdue holds iff a due date exists, is strictly before now, and the item
// is not completed.
func (a *ActionItem) IsOverdue(now time.Time) bool {
	return a.DueDate != nil && a.DueDate.Before(now) && !a.IsCompleted
}
