package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type ActionItemRepository struct {
	db *gorm.DB
}

func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

func (r *ActionItemRepository) Create(item *model.ActionItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("create action item failed: %w", err)
	}
	return nil
}

func (r *ActionItemRepository) Update(item *model.ActionItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("update action item failed: %w", err)
	}
	return nil
}

func (r *ActionItemRepository) GetByID(id uint) (*model.ActionItem, error) {
	var item model.ActionItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query action item by id failed: %w", err)
	}
	return &item, nil
}

func (r *ActionItemRepository) ListBySessionID(sessionID uint) ([]model.ActionItem, error) {
	var items []model.ActionItem
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list action items failed: %w", err)
	}
	return items, nil
}

func (r *ActionItemRepository) ListOpenBySessionID(sessionID uint) ([]model.ActionItem, error) {
	var items []model.ActionItem
	if err := r.db.Where("session_id = ? AND is_completed = ?", sessionID, false).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list open action items by session failed: %w", err)
	}
	return items, nil
}

// ListOpenByPersonID returns every open item for the person regardless of
// which session produced it.
func (r *ActionItemRepository) ListOpenByPersonID(personID uint) ([]model.ActionItem, error) {
	var items []model.ActionItem
	if err := r.db.Where("person_id = ? AND is_completed = ?", personID, false).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list open action items by person failed: %w", err)
	}
	return items, nil
}

func (r *ActionItemRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ActionItem{}, id).Error; err != nil {
		return fmt.Errorf("delete action item failed: %w", err)
	}
	return nil
}

func (r *ActionItemRepository) DeleteBySessionID(sessionID uint) error {
	if err := r.db.Where("session_id = ?", sessionID).Delete(&model.ActionItem{}).Error; err != nil {
		return fmt.Errorf("delete action items by session failed: %w", err)
	}
	return nil
}

func (r *ActionItemRepository) DeleteByPersonID(personID uint) error {
	if err := r.db.Where("person_id = ?", personID).Delete(&model.ActionItem{}).Error; err != nil {
		return fmt.Errorf("delete action items by person failed: %w", err)
	}
	return nil
}

func (r *ActionItemRepository) CountByPersonID(personID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.ActionItem{}).Where("person_id = ?", personID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count action items failed: %w", err)
	}
	return count, nil
}
