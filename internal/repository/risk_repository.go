package repository

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type RiskRepository struct {
	db *gorm.DB
}

func NewRiskRepository(db *gorm.DB) *RiskRepository {
	return &RiskRepository{db: db}
}

func (r *RiskRepository) Create(risk *model.Risk) error {
	if err := r.db.Create(risk).Error; err != nil {
		return fmt.Errorf("create risk failed: %w", err)
	}
	return nil
}

func (r *RiskRepository) Update(risk *model.Risk) error {
	if err := r.db.Save(risk).Error; err != nil {
		return fmt.Errorf("update risk failed: %w", err)
	}
	return nil
}

func (r *RiskRepository) GetByID(id uint) (*model.Risk, error) {
	var risk model.Risk
	if err := r.db.First(&risk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query risk by id failed: %w", err)
	}
	return &risk, nil
}

// ListByProgramID returns a program's risks ordered by severity rank
// (critical first), then by creation time. The rank mapping lives on the
// model, so ordering happens here rather than in SQL.
func (r *RiskRepository) ListByProgramID(programID uint) ([]model.Risk, error) {
	var risks []model.Risk
	if err := r.db.Where("program_id = ?", programID).Order("created_at ASC").Find(&risks).Error; err != nil {
		return nil, fmt.Errorf("list risks failed: %w", err)
	}
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Severity.Rank() < risks[j].Severity.Rank()
	})
	return risks, nil
}

// CountCriticalByProgramID counts risks with severity critical or high.
func (r *RiskRepository) CountCriticalByProgramID(programID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Risk{}).
		Where("program_id = ? AND severity IN ?", programID, []model.RiskSeverity{model.SeverityCritical, model.SeverityHigh}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count critical risks failed: %w", err)
	}
	return count, nil
}

func (r *RiskRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Risk{}, id).Error; err != nil {
		return fmt.Errorf("delete risk failed: %w", err)
	}
	return nil
}

func (r *RiskRepository) DeleteByProgramID(programID uint) error {
	if err := r.db.Where("program_id = ?", programID).Delete(&model.Risk{}).Error; err != nil {
		return fmt.Errorf("delete risks by program failed: %w", err)
	}
	return nil
}
