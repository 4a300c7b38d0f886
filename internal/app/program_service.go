package app

import (
	"strings"
	"time"

	"managerdocs/internal/model"
	"managerdocs/internal/repository"
)

// ProgramService manages programs and their owned risks and updates.
type ProgramService struct {
	programRepo *repository.ProgramRepository
	riskRepo    *repository.RiskRepository
	updateRepo  *repository.ProgramUpdateRepository
}

func NewProgramService(
	programRepo *repository.ProgramRepository,
	riskRepo *repository.RiskRepository,
	updateRepo *repository.ProgramUpdateRepository,
) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		riskRepo:    riskRepo,
		updateRepo:  updateRepo,
	}
}

type ProgramInput struct {
	Name         string
	Objective    string
	Status       model.ProgramStatus
	Owner        string
	TargetDate   *time.Time
	Stakeholders string
	Notes        string
}

// ProgramOverview pairs a program with its derived critical-risk count
// (risks at critical or high severity).
type ProgramOverview struct {
	Program           model.Program `json:"program"`
	CriticalRiskCount int64         `json:"critical_risk_count"`
}

func (s *ProgramService) CreateProgram(input ProgramInput) (*model.Program, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	status := input.Status
	if status == "" {
		status = model.StatusOnTrack
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	program := &model.Program{
		Name:         name,
		Objective:    input.Objective,
		Status:       status,
		Owner:        strings.TrimSpace(input.Owner),
		TargetDate:   input.TargetDate,
		Stakeholders: input.Stakeholders,
		Notes:        input.Notes,
	}
	if err := s.programRepo.Create(program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) UpdateProgram(id uint, input ProgramInput) (*model.Program, error) {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || !input.Status.Valid() {
		return nil, ErrInvalidInput
	}
	program.Name = name
	program.Objective = input.Objective
	program.Status = input.Status
	program.Owner = strings.TrimSpace(input.Owner)
	program.TargetDate = input.TargetDate
	program.Stakeholders = input.Stakeholders
	program.Notes = input.Notes
	if err := s.programRepo.Update(program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) GetProgram(id uint) (*ProgramOverview, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	count, err := s.riskRepo.CountCriticalByProgramID(id)
	if err != nil {
		return nil, err
	}
	return &ProgramOverview{Program: *program, CriticalRiskCount: count}, nil
}

func (s *ProgramService) ListPrograms() ([]model.Program, error) {
	return s.programRepo.List()
}

// DeleteProgram removes a program and its risks and updates.
func (s *ProgramService) DeleteProgram(id uint) error {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		return err
	}
	if program == nil {
		return ErrProgramNotFound
	}
	if err := s.riskRepo.DeleteByProgramID(id); err != nil {
		return err
	}
	if err := s.updateRepo.DeleteByProgramID(id); err != nil {
		return err
	}
	return s.programRepo.Delete(id)
}

type RiskInput struct {
	ProgramID  uint
	Title      string
	Details    string
	Severity   model.RiskSeverity
	Mitigation string
	Owner      string
}

func (s *ProgramService) AddRisk(input RiskInput) (*model.Risk, error) {
	title := strings.TrimSpace(input.Title)
	if input.ProgramID == 0 || title == "" || !input.Severity.Valid() {
		return nil, ErrInvalidInput
	}
	program, err := s.programRepo.GetByID(input.ProgramID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	risk := &model.Risk{
		ProgramID:  program.ID,
		Title:      title,
		Details:    input.Details,
		Severity:   input.Severity,
		Mitigation: input.Mitigation,
		Owner:      strings.TrimSpace(input.Owner),
	}
	if err := s.riskRepo.Create(risk); err != nil {
		return nil, err
	}
	return risk, nil
}

func (s *ProgramService) UpdateRisk(id uint, input RiskInput) (*model.Risk, error) {
	risk, err := s.riskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if risk == nil {
		return nil, ErrRiskNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" || !input.Severity.Valid() {
		return nil, ErrInvalidInput
	}
	risk.Title = title
	risk.Details = input.Details
	risk.Severity = input.Severity
	risk.Mitigation = input.Mitigation
	risk.Owner = strings.TrimSpace(input.Owner)
	if err := s.riskRepo.Update(risk); err != nil {
		return nil, err
	}
	return risk, nil
}

func (s *ProgramService) ListRisks(programID uint) ([]model.Risk, error) {
	if programID == 0 {
		return nil, ErrInvalidInput
	}
	return s.riskRepo.ListByProgramID(programID)
}

func (s *ProgramService) DeleteRisk(id uint) error {
	risk, err := s.riskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if risk == nil {
		return ErrRiskNotFound
	}
	return s.riskRepo.Delete(id)
}

func (s *ProgramService) CreateUpdate(programID uint, summary string) (*model.ProgramUpdate, error) {
	summary = strings.TrimSpace(summary)
	if programID == 0 || summary == "" {
		return nil, ErrInvalidInput
	}
	program, err := s.programRepo.GetByID(programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	update := &model.ProgramUpdate{
		ProgramID: program.ID,
		Summary:   summary,
	}
	if err := s.updateRepo.Create(update); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *ProgramService) ListUpdates(programID uint) ([]model.ProgramUpdate, error) {
	if programID == 0 {
		return nil, ErrInvalidInput
	}
	return s.updateRepo.ListByProgramID(programID)
}

func (s *ProgramService) DeleteUpdate(id uint) error {
	return s.updateRepo.Delete(id)
}
