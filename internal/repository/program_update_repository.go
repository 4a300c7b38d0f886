package repository

import (
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type ProgramUpdateRepository struct {
	db *gorm.DB
}

func NewProgramUpdateRepository(db *gorm.DB) *ProgramUpdateRepository {
	return &ProgramUpdateRepository{db: db}
}

func (r *ProgramUpdateRepository) Create(update *model.ProgramUpdate) error {
	if err := r.db.Create(update).Error; err != nil {
		return fmt.Errorf("create program update failed: %w", err)
	}
	return nil
}

func (r *ProgramUpdateRepository) ListByProgramID(programID uint) ([]model.ProgramUpdate, error) {
	var updates []model.ProgramUpdate
	if err := r.db.Where("program_id = ?", programID).Order("created_at DESC").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("list program updates failed: %w", err)
	}
	return updates, nil
}

func (r *ProgramUpdateRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ProgramUpdate{}, id).Error; err != nil {
		return fmt.Errorf("delete program update failed: %w", err)
	}
	return nil
}

func (r *ProgramUpdateRepository) DeleteByProgramID(programID uint) error {
	if err := r.db.Where("program_id = ?", programID).Delete(&model.ProgramUpdate{}).Error; err != nil {
		return fmt.Errorf("delete program updates by program failed: %w", err)
	}
	return nil
}
