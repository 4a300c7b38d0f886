package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(program *model.Program) error {
	if err := r.db.Create(program).Error; err != nil {
		return fmt.Errorf("create program failed: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Update(program *model.Program) error {
	if err := r.db.Save(program).Error; err != nil {
		return fmt.Errorf("update program failed: %w", err)
	}
	return nil
}

func (r *ProgramRepository) GetByID(id uint) (*model.Program, error) {
	var program model.Program
	if err := r.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query program by id failed: %w", err)
	}
	return &program, nil
}

func (r *ProgramRepository) List() ([]model.Program, error) {
	var programs []model.Program
	if err := r.db.Order("updated_at DESC").Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("list programs failed: %w", err)
	}
	return programs, nil
}

func (r *ProgramRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Program{}, id).Error; err != nil {
		return fmt.Errorf("delete program failed: %w", err)
	}
	return nil
}
