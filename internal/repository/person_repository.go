package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(person *model.Person) error {
	if err := r.db.Create(person).Error; err != nil {
		return fmt.Errorf("create person failed: %w", err)
	}
	return nil
}

func (r *PersonRepository) Update(person *model.Person) error {
	if err := r.db.Save(person).Error; err != nil {
		return fmt.Errorf("update person failed: %w", err)
	}
	return nil
}

func (r *PersonRepository) GetByID(id uint) (*model.Person, error) {
	var person model.Person
	if err := r.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query person by id failed: %w", err)
	}
	return &person, nil
}

func (r *PersonRepository) List() ([]model.Person, error) {
	var people []model.Person
	if err := r.db.Order("updated_at DESC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("list people failed: %w", err)
	}
	return people, nil
}

func (r *PersonRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Person{}, id).Error; err != nil {
		return fmt.Errorf("delete person failed: %w", err)
	}
	return nil
}
