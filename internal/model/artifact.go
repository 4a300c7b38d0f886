package model

import "time"

type ArtifactType string

const (
	ArtifactPR           ArtifactType = "pr"
	ArtifactDesignDoc    ArtifactType = "design-doc"
	ArtifactIncident     ArtifactType = "incident"
	ArtifactLaunch       ArtifactType = "launch"
	ArtifactPresentation ArtifactType = "presentation"
	ArtifactOther        ArtifactType = "other"
)

func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactPR, ArtifactDesignDoc, ArtifactIncident, ArtifactLaunch, ArtifactPresentation, ArtifactOther:
		return true
	}
	return false
}

// Artifact is a unit of work evidence (PR, design doc, incident, ...) recorded
// against a session. ArtifactDate is when the work happened, not when the
// record was created. PersonID is denormalized from the owning session.
type Artifact struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	SessionID    uint         `gorm:"not null;index" json:"session_id"`
	PersonID     uint         `gorm:"not null;index" json:"person_id"`
	Title        string       `gorm:"size:256;not null" json:"title"`
	Type         ArtifactType `gorm:"size:32;not null" json:"type"`
	URL          string       `gorm:"size:512" json:"url"`
	Notes        string       `gorm:"type:text" json:"notes"`
	ArtifactDate time.Time    `gorm:"not null;index" json:"artifact_date"`
	CreatedAt    time.Time    `json:"created_at"`
}
