package contextwin

import (
	"strings"
	"time"

	"managerdocs/internal/model"
	"managerdocs/internal/repository"
)

const (
	// DefaultMaxPastSessions bounds how many prior 1:1s feed a prompt.
	DefaultMaxPastSessions = 3
	// DefaultArtifactWindowDays is the trailing window for "recent" work,
	// inclusive at the lower edge.
	DefaultArtifactWindowDays = 45
)

// Selector produces reproducible context snapshots. It only reads; repeated
// calls with unchanged data return the same snapshot.
type Selector struct {
	sessionRepo    *repository.SessionRepository
	actionItemRepo *repository.ActionItemRepository
	artifactRepo   *repository.ArtifactRepository
	programRepo    *repository.ProgramRepository
	riskRepo       *repository.RiskRepository

	maxPastSessions    int
	artifactWindowDays int
	now                func() time.Time
}

func NewSelector(
	sessionRepo *repository.SessionRepository,
	actionItemRepo *repository.ActionItemRepository,
	artifactRepo *repository.ArtifactRepository,
	programRepo *repository.ProgramRepository,
	riskRepo *repository.RiskRepository,
	maxPastSessions, artifactWindowDays int,
) *Selector {
	if maxPastSessions <= 0 {
		maxPastSessions = DefaultMaxPastSessions
	}
	if artifactWindowDays <= 0 {
		artifactWindowDays = DefaultArtifactWindowDays
	}
	return &Selector{
		sessionRepo:        sessionRepo,
		actionItemRepo:     actionItemRepo,
		artifactRepo:       artifactRepo,
		programRepo:        programRepo,
		riskRepo:           riskRepo,
		maxPastSessions:    maxPastSessions,
		artifactWindowDays: artifactWindowDays,
		now:                time.Now,
	}
}

// OneOnOne assembles the 1:1 context for a person. excludeSessionID drops the
// session currently being edited so it never references itself; staged holds
// artifacts from the current edit that are not yet persisted.
func (s *Selector) OneOnOne(personID, excludeSessionID uint, staged []model.Artifact) (*Snapshot, error) {
	snap := &Snapshot{}

	sessions, err := s.sessionRepo.ListRecentByPersonID(personID, excludeSessionID, s.maxPastSessions)
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		text := session.GeneratedSummary
		if strings.TrimSpace(text) == "" {
			text = session.RawNotes
		}
		open, err := s.actionItemRepo.ListOpenBySessionID(session.ID)
		if err != nil {
			return nil, err
		}
		digest := SessionDigest{
			SessionID: session.ID,
			Date:      session.Date,
			Text:      text,
		}
		for _, item := range open {
			digest.OpenTitles = append(digest.OpenTitles, item.Title)
		}
		snap.PastSessions = append(snap.PastSessions, digest)
	}

	// All outstanding commitments, not just those from the sessions above.
	openItems, err := s.actionItemRepo.ListOpenByPersonID(personID)
	if err != nil {
		return nil, err
	}
	for _, item := range openItems {
		snap.OpenActionItems = append(snap.OpenActionItems, ActionItemLine{
			Title:   item.Title,
			Owner:   item.Owner,
			DueDate: item.DueDate,
		})
	}

	cutoff := s.now().AddDate(0, 0, -s.artifactWindowDays)
	artifacts, err := s.artifactRepo.ListByPersonSince(personID, cutoff)
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]struct{}, len(artifacts))
	for _, artifact := range artifacts {
		seen[artifact.ID] = struct{}{}
		snap.RecentArtifacts = append(snap.RecentArtifacts, artifactLine(artifact))
	}
	for _, artifact := range staged {
		if artifact.ID != 0 {
			if _, dup := seen[artifact.ID]; dup {
				continue
			}
			seen[artifact.ID] = struct{}{}
		}
		snap.RecentArtifacts = append(snap.RecentArtifacts, artifactLine(artifact))
	}

	return snap, nil
}

// Program assembles reporting context for a program: status, stakeholders,
// and every risk as a "<severity>: <title>" line, ordered by severity rank.
// No time window applies.
func (s *Selector) Program(programID uint) (*Snapshot, error) {
	program, err := s.programRepo.GetByID(programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return &Snapshot{}, nil
	}

	snap := &Snapshot{
		ProgramStatus: string(program.Status),
		Stakeholders:  program.Stakeholders,
		TargetDate:    program.TargetDate,
	}

	risks, err := s.riskRepo.ListByProgramID(programID)
	if err != nil {
		return nil, err
	}
	for _, risk := range risks {
		snap.RiskLines = append(snap.RiskLines, string(risk.Severity)+": "+risk.Title)
	}
	return snap, nil
}

func artifactLine(artifact model.Artifact) ArtifactLine {
	return ArtifactLine{
		Title: artifact.Title,
		Type:  string(artifact.Type),
		Date:  artifact.ArtifactDate,
	}
}
