// Package prompt assembles the (system instructions, user message) pair for
// each document kind. It is pure: no storage access, no side effects.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"managerdocs/internal/contextwin"
	"managerdocs/internal/model"
)

// ErrMissingParam marks a caller contract violation: a required parameter for
// the chosen document kind was not supplied. The orchestrator must fill in
// everything a kind needs before calling Build.
var ErrMissingParam = errors.New("missing required prompt parameter")

// Section headings of the 1:1 user message, in their fixed order.
const (
	headingPastSessions = "Context From Recent Past 1:1s"
	headingOpenItems    = "All Open Action Items"
	headingArtifacts    = "Recent Work Artifacts"
	headingTodayNotes   = "Today's 1:1 Notes"
)

const sectionSeparator = "\n\n---\n\n"

// Params carries the named inputs for every document kind. Which fields are
// required depends on the kind; see Build.
type Params struct {
	PersonName   string
	Role         string
	Level        string
	Period       string
	TargetRating string
	TargetLevel  string

	ProgramName string
	SessionDate time.Time

	Notes    string
	Snapshot *contextwin.Snapshot
}

// Build returns the system instructions and user message for kind. A missing
// required parameter yields ErrMissingParam; missing optional context only
// shrinks the message.
func Build(kind model.DocumentKind, p Params) (system, user string, err error) {
	switch kind {
	case model.KindPerformanceReview:
		if err := require(map[string]string{
			"person name": p.PersonName, "role": p.Role, "level": p.Level,
			"period": p.Period, "target rating": p.TargetRating,
		}); err != nil {
			return "", "", err
		}
		return performanceReviewSystem, personUserMessage(kind, p), nil

	case model.KindPromotionPacket:
		if err := require(map[string]string{
			"person name": p.PersonName, "role": p.Role, "level": p.Level,
			"target level": p.TargetLevel,
		}); err != nil {
			return "", "", err
		}
		return promotionPacketSystem, personUserMessage(kind, p), nil

	case model.KindOneOnOneSummary:
		if err := require(map[string]string{"person name": p.PersonName}); err != nil {
			return "", "", err
		}
		return oneOnOneSummarySystem, oneOnOneUserMessage(p), nil

	case model.KindDevelopmentPlan:
		if err := require(map[string]string{"person name": p.PersonName, "role": p.Role}); err != nil {
			return "", "", err
		}
		return developmentPlanSystem, personUserMessage(kind, p), nil

	case model.KindProgramStatus:
		if err := require(map[string]string{"program name": p.ProgramName}); err != nil {
			return "", "", err
		}
		return programStatusSystem, programUserMessage(p), nil

	case model.KindStakeholderEmail:
		if err := require(map[string]string{"program name": p.ProgramName}); err != nil {
			return "", "", err
		}
		return stakeholderEmailSystem, programUserMessage(p), nil

	case model.KindRiskReport:
		if err := require(map[string]string{"program name": p.ProgramName}); err != nil {
			return "", "", err
		}
		return riskReportSystem, programUserMessage(p), nil
	}
	return "", "", fmt.Errorf("%w: unknown document kind %q", ErrMissingParam, kind)
}

func require(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
	}
	return nil
}

// oneOnOneUserMessage concatenates, in fixed order: past-session blocks, the
// combined open-item list, recent artifacts, and today's notes. Sections with
// no content are omitted entirely.
func oneOnOneUserMessage(p Params) string {
	var sections []string
	snap := p.Snapshot
	if snap == nil {
		snap = &contextwin.Snapshot{}
	}

	if len(snap.PastSessions) > 0 {
		var b strings.Builder
		b.WriteString("## " + headingPastSessions + "\n")
		for _, session := range snap.PastSessions {
			b.WriteString("\n### 1:1 on " + session.Date.Format("2006-01-02") + "\n")
			if text := strings.TrimSpace(session.Text); text != "" {
				b.WriteString(text + "\n")
			}
			for _, title := range session.OpenTitles {
				b.WriteString("- [ ] " + title + "\n")
			}
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if len(snap.OpenActionItems) > 0 {
		var b strings.Builder
		b.WriteString("## " + headingOpenItems + "\n")
		for _, item := range snap.OpenActionItems {
			b.WriteString("- " + item.Title)
			if item.Owner != "" {
				b.WriteString(" (owner: " + item.Owner + ")")
			}
			if item.DueDate != nil {
				b.WriteString(" (due " + item.DueDate.Format("2006-01-02") + ")")
			}
			b.WriteString("\n")
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if len(snap.RecentArtifacts) > 0 {
		var b strings.Builder
		b.WriteString("## " + headingArtifacts + "\n")
		for _, artifact := range snap.RecentArtifacts {
			b.WriteString(fmt.Sprintf("- [%s] %s (%s)\n", artifact.Type, artifact.Title, artifact.Date.Format("2006-01-02")))
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	if notes := strings.TrimSpace(p.Notes); notes != "" {
		var b strings.Builder
		b.WriteString("## " + headingTodayNotes)
		if !p.SessionDate.IsZero() {
			b.WriteString(" (" + p.SessionDate.Format("2006-01-02") + ")")
		}
		b.WriteString("\n" + notes)
		sections = append(sections, b.String())
	}

	return strings.Join(sections, sectionSeparator)
}

// personUserMessage serves the person-scoped document kinds: a facts header,
// then the same context sections a 1:1 gets, then the manager's input notes.
func personUserMessage(kind model.DocumentKind, p Params) string {
	var sections []string

	var b strings.Builder
	b.WriteString("## Engineer\n")
	b.WriteString("Name: " + p.PersonName + "\n")
	b.WriteString("Role: " + p.Role + "\n")
	if p.Level != "" {
		b.WriteString("Level: " + p.Level + "\n")
	}
	switch kind {
	case model.KindPerformanceReview:
		b.WriteString("Review period: " + p.Period + "\n")
		b.WriteString("Target rating: " + p.TargetRating + "\n")
	case model.KindPromotionPacket:
		b.WriteString("Target level: " + p.TargetLevel + "\n")
	}
	sections = append(sections, strings.TrimRight(b.String(), "\n"))

	if ctx := oneOnOneUserMessage(Params{Snapshot: p.Snapshot}); ctx != "" {
		sections = append(sections, ctx)
	}

	if notes := strings.TrimSpace(p.Notes); notes != "" {
		sections = append(sections, "## Manager Notes\n"+notes)
	}

	return strings.Join(sections, sectionSeparator)
}

func programUserMessage(p Params) string {
	var sections []string
	snap := p.Snapshot
	if snap == nil {
		snap = &contextwin.Snapshot{}
	}

	var b strings.Builder
	b.WriteString("## Program\n")
	b.WriteString("Name: " + p.ProgramName + "\n")
	if snap.ProgramStatus != "" {
		b.WriteString("Status: " + snap.ProgramStatus + "\n")
	}
	if snap.TargetDate != nil {
		b.WriteString("Target date: " + snap.TargetDate.Format("2006-01-02") + "\n")
	}
	if snap.Stakeholders != "" {
		b.WriteString("Stakeholders: " + snap.Stakeholders + "\n")
	}
	sections = append(sections, strings.TrimRight(b.String(), "\n"))

	if len(snap.RiskLines) > 0 {
		var rb strings.Builder
		rb.WriteString("## Open Risks\n")
		for _, line := range snap.RiskLines {
			rb.WriteString("- " + line + "\n")
		}
		sections = append(sections, strings.TrimRight(rb.String(), "\n"))
	}

	if notes := strings.TrimSpace(p.Notes); notes != "" {
		sections = append(sections, "## Update Notes\n"+notes)
	}

	return strings.Join(sections, sectionSeparator)
}
