package app

import (
	"context"
	"strings"
	"time"

	"managerdocs/internal/contextwin"
	"managerdocs/internal/markdown"
	"managerdocs/internal/model"
	"managerdocs/internal/repository"
)

// SnapshotCache is the optional Redis-backed snapshot cache. All methods are
// advisory: a nil cache or a cache error never fails an operation.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, personID uint) (*contextwin.Snapshot, bool, error)
	SetSnapshot(ctx context.Context, personID uint, snap *contextwin.Snapshot) error
	DeleteSnapshot(ctx context.Context, personID uint) error
	MarkDirty(ctx context.Context, personID uint) error
	IsDirty(ctx context.Context, personID uint) (bool, error)
}

// DirectoryService manages people and their owned records: sessions, action
// items, artifacts, and the generated-document library. Deletes cascade
// explicitly through the ownership tree.
type DirectoryService struct {
	personRepo     *repository.PersonRepository
	sessionRepo    *repository.SessionRepository
	actionItemRepo *repository.ActionItemRepository
	artifactRepo   *repository.ArtifactRepository
	documentRepo   *repository.GeneratedDocumentRepository
	cache          SnapshotCache
}

func NewDirectoryService(
	personRepo *repository.PersonRepository,
	sessionRepo *repository.SessionRepository,
	actionItemRepo *repository.ActionItemRepository,
	artifactRepo *repository.ArtifactRepository,
	documentRepo *repository.GeneratedDocumentRepository,
	cache SnapshotCache,
) *DirectoryService {
	return &DirectoryService{
		personRepo:     personRepo,
		sessionRepo:    sessionRepo,
		actionItemRepo: actionItemRepo,
		artifactRepo:   artifactRepo,
		documentRepo:   documentRepo,
		cache:          cache,
	}
}

type PersonInput struct {
	Name      string
	Role      string
	Level     string
	Team      string
	StartDate *time.Time
	Notes     string
}

func (s *DirectoryService) CreatePerson(input PersonInput) (*model.Person, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	person := &model.Person{
		Name:      name,
		Role:      strings.TrimSpace(input.Role),
		Level:     strings.TrimSpace(input.Level),
		Team:      strings.TrimSpace(input.Team),
		StartDate: input.StartDate,
		Notes:     input.Notes,
	}
	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *DirectoryService) UpdatePerson(id uint, input PersonInput) (*model.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	person.Name = name
	person.Role = strings.TrimSpace(input.Role)
	person.Level = strings.TrimSpace(input.Level)
	person.Team = strings.TrimSpace(input.Team)
	person.StartDate = input.StartDate
	person.Notes = input.Notes
	if err := s.personRepo.Update(person); err != nil {
		return nil, err
	}
	s.markDirty(id)
	return person, nil
}

func (s *DirectoryService) GetPerson(id uint) (*model.Person, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

func (s *DirectoryService) ListPeople() ([]model.Person, error) {
	return s.personRepo.List()
}

// DeletePerson removes a person and everything the person owns: sessions
// (with their action items and artifacts) and generated documents.
func (s *DirectoryService) DeletePerson(id uint) error {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return ErrPersonNotFound
	}
	if err := s.actionItemRepo.DeleteByPersonID(id); err != nil {
		return err
	}
	if err := s.artifactRepo.DeleteByPersonID(id); err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteByPersonID(id); err != nil {
		return err
	}
	if err := s.documentRepo.DeleteByPersonID(id); err != nil {
		return err
	}
	if err := s.personRepo.Delete(id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.DeleteSnapshot(context.Background(), id)
	}
	return nil
}

type SessionInput struct {
	PersonID uint
	Date     time.Time
	RawNotes string
}

func (s *DirectoryService) CreateSession(input SessionInput) (*model.Session, error) {
	if input.PersonID == 0 || input.Date.IsZero() {
		return nil, ErrInvalidInput
	}
	person, err := s.personRepo.GetByID(input.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	session := &model.Session{
		PersonID: input.PersonID,
		Date:     input.Date,
		RawNotes: input.RawNotes,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	s.markDirty(input.PersonID)
	return session, nil
}

func (s *DirectoryService) UpdateSessionNotes(id uint, rawNotes string) (*model.Session, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.RawNotes = rawNotes
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	s.markDirty(session.PersonID)
	return session, nil
}

func (s *DirectoryService) GetSession(id uint) (*model.Session, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DirectoryService) ListSessions(personID uint) ([]model.Session, error) {
	if personID == 0 {
		return nil, ErrInvalidInput
	}
	return s.sessionRepo.ListByPersonID(personID)
}

// DeleteSession removes a session and its action items and artifacts.
func (s *DirectoryService) DeleteSession(id uint) error {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if err := s.actionItemRepo.DeleteBySessionID(id); err != nil {
		return err
	}
	if err := s.artifactRepo.DeleteBySessionID(id); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(id); err != nil {
		return err
	}
	s.markDirty(session.PersonID)
	return nil
}

type ActionItemInput struct {
	SessionID uint
	Title     string
	Owner     string
	DueDate   *time.Time
}

// AddActionItem creates an open item under a session. The person reference is
// always copied from the owning session, never taken from the caller.
func (s *DirectoryService) AddActionItem(input ActionItemInput) (*model.ActionItem, error) {
	title := strings.TrimSpace(input.Title)
	if input.SessionID == 0 || title == "" {
		return nil, ErrInvalidInput
	}
	session, err := s.sessionRepo.GetByID(input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	item := &model.ActionItem{
		SessionID: session.ID,
		PersonID:  session.PersonID,
		Title:     title,
		Owner:     strings.TrimSpace(input.Owner),
		DueDate:   input.DueDate,
	}
	if err := s.actionItemRepo.Create(item); err != nil {
		return nil, err
	}
	s.markDirty(session.PersonID)
	return item, nil
}

// SetActionItemCompleted flips the completion flag, keeping the completion
// timestamp in step with it.
func (s *DirectoryService) SetActionItemCompleted(id uint, completed bool) (*model.ActionItem, error) {
	item, err := s.actionItemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrActionItemNotFound
	}
	item.IsCompleted = completed
	if completed {
		now := time.Now()
		item.CompletedAt = &now
	} else {
		item.CompletedAt = nil
	}
	if err := s.actionItemRepo.Update(item); err != nil {
		return nil, err
	}
	s.markDirty(item.PersonID)
	return item, nil
}

func (s *DirectoryService) ListActionItems(sessionID uint) ([]model.ActionItem, error) {
	if sessionID == 0 {
		return nil, ErrInvalidInput
	}
	return s.actionItemRepo.ListBySessionID(sessionID)
}

func (s *DirectoryService) ListOpenActionItems(personID uint) ([]model.ActionItem, error) {
	if personID == 0 {
		return nil, ErrInvalidInput
	}
	return s.actionItemRepo.ListOpenByPersonID(personID)
}

func (s *DirectoryService) DeleteActionItem(id uint) error {
	item, err := s.actionItemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrActionItemNotFound
	}
	if err := s.actionItemRepo.Delete(id); err != nil {
		return err
	}
	s.markDirty(item.PersonID)
	return nil
}

type ArtifactInput struct {
	SessionID    uint
	Title        string
	Type         model.ArtifactType
	URL          string
	Notes        string
	ArtifactDate time.Time
}

func (s *DirectoryService) AddArtifact(input ArtifactInput) (*model.Artifact, error) {
	title := strings.TrimSpace(input.Title)
	if input.SessionID == 0 || title == "" || input.ArtifactDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidInput
	}
	session, err := s.sessionRepo.GetByID(input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	artifact := &model.Artifact{
		SessionID:    session.ID,
		PersonID:     session.PersonID,
		Title:        title,
		Type:         input.Type,
		URL:          strings.TrimSpace(input.URL),
		Notes:        input.Notes,
		ArtifactDate: input.ArtifactDate,
	}
	if err := s.artifactRepo.Create(artifact); err != nil {
		return nil, err
	}
	s.markDirty(session.PersonID)
	return artifact, nil
}

func (s *DirectoryService) ListArtifacts(sessionID uint) ([]model.Artifact, error) {
	if sessionID == 0 {
		return nil, ErrInvalidInput
	}
	return s.artifactRepo.ListBySessionID(sessionID)
}

func (s *DirectoryService) DeleteArtifact(id uint) error {
	artifact, err := s.artifactRepo.GetByID(id)
	if err != nil {
		return err
	}
	if artifact == nil {
		return ErrArtifactNotFound
	}
	if err := s.artifactRepo.Delete(id); err != nil {
		return err
	}
	s.markDirty(artifact.PersonID)
	return nil
}

// ImportActionItems re-parses a session's generated summary and creates one
// action item per checkbox block found. Checked boxes import as completed.
func (s *DirectoryService) ImportActionItems(sessionID uint) ([]model.ActionItem, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if strings.TrimSpace(session.GeneratedSummary) == "" {
		return nil, nil
	}

	var created []model.ActionItem
	for _, box := range markdown.Checkboxes(markdown.Parse(session.GeneratedSummary)) {
		title := strings.TrimSpace(box.Text)
		if title == "" {
			continue
		}
		item := &model.ActionItem{
			SessionID:   session.ID,
			PersonID:    session.PersonID,
			Title:       title,
			IsCompleted: box.Checked,
		}
		if box.Checked {
			now := time.Now()
			item.CompletedAt = &now
		}
		if err := s.actionItemRepo.Create(item); err != nil {
			return nil, err
		}
		created = append(created, *item)
	}
	if len(created) > 0 {
		s.markDirty(session.PersonID)
	}
	return created, nil
}

func (s *DirectoryService) ListDocuments() ([]model.GeneratedDocument, error) {
	return s.documentRepo.List()
}

func (s *DirectoryService) ListDocumentsByPerson(personID uint) ([]model.GeneratedDocument, error) {
	if personID == 0 {
		return nil, ErrInvalidInput
	}
	return s.documentRepo.ListByPersonID(personID)
}

func (s *DirectoryService) GetDocument(id uint) (*model.GeneratedDocument, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	doc, err := s.documentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func (s *DirectoryService) DeleteDocument(id uint) error {
	doc, err := s.documentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}
	return s.documentRepo.Delete(id)
}

func (s *DirectoryService) markDirty(personID uint) {
	if s.cache != nil {
		_ = s.cache.MarkDirty(context.Background(), personID)
		_ = s.cache.DeleteSnapshot(context.Background(), personID)
	}
}
