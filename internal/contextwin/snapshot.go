// Package contextwin selects the bounded historical context passed to a
// generation request: the most recent 1:1 sessions, every outstanding action
// item, and recent work artifacts for a person, or status and risks for a
// program.
package contextwin

import "time"

// Snapshot is the bounded bundle of historical data assembled before a
// generation call. Empty slices mean "no data", never an error.
type Snapshot struct {
	PastSessions    []SessionDigest  `json:"past_sessions,omitempty"`
	OpenActionItems []ActionItemLine `json:"open_action_items,omitempty"`
	RecentArtifacts []ArtifactLine   `json:"recent_artifacts,omitempty"`

	ProgramStatus string     `json:"program_status,omitempty"`
	Stakeholders  string     `json:"stakeholders,omitempty"`
	RiskLines     []string   `json:"risk_lines,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// SessionDigest is one past session's contribution: its generated summary if
// present, otherwise its raw notes, plus titles of its still-open items.
type SessionDigest struct {
	SessionID  uint      `json:"session_id"`
	Date       time.Time `json:"date"`
	Text       string    `json:"text"`
	OpenTitles []string  `json:"open_titles,omitempty"`
}

type ActionItemLine struct {
	Title   string     `json:"title"`
	Owner   string     `json:"owner,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

type ArtifactLine struct {
	Title string    `json:"title"`
	Type  string    `json:"type"`
	Date  time.Time `json:"date"`
}

// IsEmpty reports whether the snapshot carries no context at all.
func (s *Snapshot) IsEmpty() bool {
	return len(s.PastSessions) == 0 &&
		len(s.OpenActionItems) == 0 &&
		len(s.RecentArtifacts) == 0 &&
		s.ProgramStatus == "" &&
		len(s.RiskLines) == 0
}
