package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"managerdocs/internal/ai"
	"managerdocs/internal/contextwin"
	"managerdocs/internal/model"
	"managerdocs/internal/prompt"
	"managerdocs/internal/repository"
)

// TextGenerator is the outbound LLM collaborator: one stateless request,
// one text response.
type TextGenerator interface {
	Generate(ctx context.Context, cfg ai.Config, systemPrompt, userMessage string) (string, error)
}

// DocumentPublisher enqueues generated-document archive records for async
// persistence.
type DocumentPublisher interface {
	Publish(ctx context.Context, doc model.GeneratedDocument) error
}

// GenerationService sequences context selection, prompt assembly, the
// external call, and persistence. One generation may be in flight per target
// record; a failed generation leaves every record untouched.
type GenerationService struct {
	selector    *contextwin.Selector
	personRepo  *repository.PersonRepository
	programRepo *repository.ProgramRepository
	sessionRepo *repository.SessionRepository
	updateRepo  *repository.ProgramUpdateRepository
	llm         TextGenerator
	llmCfg      ai.Config
	publisher   DocumentPublisher
	cache       SnapshotCache

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGenerationService(
	selector *contextwin.Selector,
	personRepo *repository.PersonRepository,
	programRepo *repository.ProgramRepository,
	sessionRepo *repository.SessionRepository,
	updateRepo *repository.ProgramUpdateRepository,
	llm TextGenerator,
	llmCfg ai.Config,
	publisher DocumentPublisher,
	cache SnapshotCache,
) *GenerationService {
	return &GenerationService{
		selector:    selector,
		personRepo:  personRepo,
		programRepo: programRepo,
		sessionRepo: sessionRepo,
		updateRepo:  updateRepo,
		llm:         llm,
		llmCfg:      llmCfg,
		publisher:   publisher,
		cache:       cache,
		inFlight:    make(map[string]struct{}),
	}
}

type SessionSummaryInput struct {
	SessionID uint
	// Notes overrides the stored raw notes when the user edited them without
	// saving first. Empty means "use what is stored".
	Notes string
	// StagedArtifacts are artifacts added in the current edit but not yet
	// persisted; they join the recent-artifact context.
	StagedArtifacts []model.Artifact
}

type SessionSummaryResult struct {
	Summary  string                  `json:"summary"`
	Document model.GeneratedDocument `json:"document"`
}

// GenerateSessionSummary produces and stores a 1:1 summary for a session.
// The raw model response is stored verbatim; block structuring happens at
// display time.
func (s *GenerationService) GenerateSessionSummary(ctx context.Context, input SessionSummaryInput) (*SessionSummaryResult, error) {
	if input.SessionID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(s.llmCfg.APIKey) == "" {
		return nil, ai.ErrNoAPIKey
	}

	session, err := s.sessionRepo.GetByID(input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	person, err := s.personRepo.GetByID(session.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	key := fmt.Sprintf("session:%d", session.ID)
	if !s.acquire(key) {
		return nil, ErrGenerationInFlight
	}
	defer s.release(key)

	snapshot, err := s.selector.OneOnOne(session.PersonID, session.ID, input.StagedArtifacts)
	if err != nil {
		return nil, err
	}

	notes := input.Notes
	if strings.TrimSpace(notes) == "" {
		notes = session.RawNotes
	}
	system, user, err := prompt.Build(model.KindOneOnOneSummary, prompt.Params{
		PersonName:  person.Name,
		SessionDate: session.Date,
		Notes:       notes,
		Snapshot:    snapshot,
	})
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Generate(ctx, s.llmCfg, system, user)
	if err != nil {
		return nil, err
	}

	// The session may have been deleted while the call was in flight; a late
	// result must not resurrect it.
	current, err := s.sessionRepo.GetByID(session.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTargetGone
	}
	if err := s.sessionRepo.SetGeneratedSummary(session.ID, text); err != nil {
		return nil, err
	}

	doc := model.GeneratedDocument{
		Kind:       model.KindOneOnOneSummary,
		Title:      fmt.Sprintf("1:1 Summary - %s (%s)", person.Name, session.Date.Format("2006-01-02")),
		InputNotes: notes,
		Content:    text,
		PersonID:   &person.ID,
		PersonName: person.Name,
	}
	// The summary is already stored on the session; the library copy is
	// best-effort.
	s.archive(ctx, doc)
	s.invalidate(person.ID)

	return &SessionSummaryResult{Summary: text, Document: doc}, nil
}

type PersonDocumentInput struct {
	PersonID     uint
	Kind         model.DocumentKind
	Notes        string
	Period       string
	TargetRating string
	TargetLevel  string
}

// GeneratePersonDocument produces a person-scoped document (performance
// review, promotion packet, development plan) and enqueues it for the
// document library.
func (s *GenerationService) GeneratePersonDocument(ctx context.Context, input PersonDocumentInput) (*model.GeneratedDocument, error) {
	switch input.Kind {
	case model.KindPerformanceReview, model.KindPromotionPacket, model.KindDevelopmentPlan:
	default:
		return nil, ErrInvalidInput
	}
	if input.PersonID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(s.llmCfg.APIKey) == "" {
		return nil, ai.ErrNoAPIKey
	}

	person, err := s.personRepo.GetByID(input.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	key := fmt.Sprintf("person:%d", person.ID)
	if !s.acquire(key) {
		return nil, ErrGenerationInFlight
	}
	defer s.release(key)

	snapshot, err := s.personSnapshot(ctx, person.ID)
	if err != nil {
		return nil, err
	}

	system, user, err := prompt.Build(input.Kind, prompt.Params{
		PersonName:   person.Name,
		Role:         person.Role,
		Level:        person.Level,
		Period:       input.Period,
		TargetRating: input.TargetRating,
		TargetLevel:  input.TargetLevel,
		Notes:        input.Notes,
		Snapshot:     snapshot,
	})
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Generate(ctx, s.llmCfg, system, user)
	if err != nil {
		return nil, err
	}

	current, err := s.personRepo.GetByID(person.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTargetGone
	}

	doc := model.GeneratedDocument{
		Kind:       input.Kind,
		Title:      documentTitle(input.Kind, person.Name),
		InputNotes: input.Notes,
		Content:    text,
		Rating:     input.TargetRating,
		Period:     input.Period,
		PersonID:   &person.ID,
		PersonName: person.Name,
	}
	if s.publisher == nil {
		return nil, ErrDocumentEnqueue
	}
	if err := s.publisher.Publish(ctx, doc); err != nil {
		return nil, ErrDocumentEnqueue
	}
	return &doc, nil
}

type ProgramReportInput struct {
	ProgramID uint
	Kind      model.DocumentKind
	Notes     string
}

type ProgramReportResult struct {
	Report   string                  `json:"report"`
	Update   model.ProgramUpdate     `json:"update"`
	Document model.GeneratedDocument `json:"document"`
}

// GenerateProgramReport produces a program-scoped document (status report,
// stakeholder email, risk report), records it as a program update, and
// enqueues a library copy.
func (s *GenerationService) GenerateProgramReport(ctx context.Context, input ProgramReportInput) (*ProgramReportResult, error) {
	switch input.Kind {
	case model.KindProgramStatus, model.KindStakeholderEmail, model.KindRiskReport:
	default:
		return nil, ErrInvalidInput
	}
	if input.ProgramID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(s.llmCfg.APIKey) == "" {
		return nil, ai.ErrNoAPIKey
	}

	program, err := s.programRepo.GetByID(input.ProgramID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	key := fmt.Sprintf("program:%d", program.ID)
	if !s.acquire(key) {
		return nil, ErrGenerationInFlight
	}
	defer s.release(key)

	snapshot, err := s.selector.Program(program.ID)
	if err != nil {
		return nil, err
	}

	system, user, err := prompt.Build(input.Kind, prompt.Params{
		ProgramName: program.Name,
		Notes:       input.Notes,
		Snapshot:    snapshot,
	})
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Generate(ctx, s.llmCfg, system, user)
	if err != nil {
		return nil, err
	}

	current, err := s.programRepo.GetByID(program.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTargetGone
	}

	summary := strings.TrimSpace(input.Notes)
	if summary == "" {
		summary = "Generated " + string(input.Kind)
	}
	update := &model.ProgramUpdate{
		ProgramID:       program.ID,
		Summary:         summary,
		GeneratedReport: text,
	}
	if err := s.updateRepo.Create(update); err != nil {
		return nil, err
	}

	doc := model.GeneratedDocument{
		Kind:       input.Kind,
		Title:      documentTitle(input.Kind, program.Name),
		InputNotes: input.Notes,
		Content:    text,
		ProgramID:  &program.ID,
	}
	s.archive(ctx, doc)

	return &ProgramReportResult{Report: text, Update: *update, Document: doc}, nil
}

// personSnapshot serves the person-scoped document kinds, where no session is
// excluded and nothing is staged, so the snapshot is safe to cache per person.
func (s *GenerationService) personSnapshot(ctx context.Context, personID uint) (*contextwin.Snapshot, error) {
	if s.cache != nil {
		if dirty, err := s.cache.IsDirty(ctx, personID); err == nil && !dirty {
			if snap, hit, err := s.cache.GetSnapshot(ctx, personID); err == nil && hit {
				return snap, nil
			}
		}
	}

	snap, err := s.selector.OneOnOne(personID, 0, nil)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, err := s.cache.IsDirty(ctx, personID); err == nil && !dirty {
			_ = s.cache.SetSnapshot(ctx, personID, snap)
		}
	}
	return snap, nil
}

func (s *GenerationService) archive(ctx context.Context, doc model.GeneratedDocument) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, doc); err != nil {
		log.Printf("archive generated document failed: %v", err)
	}
}

func (s *GenerationService) invalidate(personID uint) {
	if s.cache != nil {
		_ = s.cache.MarkDirty(context.Background(), personID)
		_ = s.cache.DeleteSnapshot(context.Background(), personID)
	}
}

func (s *GenerationService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *GenerationService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func documentTitle(kind model.DocumentKind, subject string) string {
	switch kind {
	case model.KindPerformanceReview:
		return "Performance Review - " + subject
	case model.KindPromotionPacket:
		return "Promotion Packet - " + subject
	case model.KindDevelopmentPlan:
		return "Development Plan - " + subject
	case model.KindProgramStatus:
		return "Status Report - " + subject
	case model.KindStakeholderEmail:
		return "Stakeholder Email - " + subject
	case model.KindRiskReport:
		return "Risk Report - " + subject
	}
	return string(kind) + " - " + subject
}
