package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type GeneratedDocumentRepository struct {
	db *gorm.DB
}

func NewGeneratedDocumentRepository(db *gorm.DB) *GeneratedDocumentRepository {
	return &GeneratedDocumentRepository{db: db}
}

func (r *GeneratedDocumentRepository) Create(doc *model.GeneratedDocument) error {
	if err := r.db.Create(doc).Error; err != nil {
		return fmt.Errorf("create generated document failed: %w", err)
	}
	return nil
}

func (r *GeneratedDocumentRepository) GetByID(id uint) (*model.GeneratedDocument, error) {
	var doc model.GeneratedDocument
	if err := r.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query generated document by id failed: %w", err)
	}
	return &doc, nil
}

func (r *GeneratedDocumentRepository) List() ([]model.GeneratedDocument, error) {
	var docs []model.GeneratedDocument
	if err := r.db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list generated documents failed: %w", err)
	}
	return docs, nil
}

func (r *GeneratedDocumentRepository) ListByPersonID(personID uint) ([]model.GeneratedDocument, error) {
	var docs []model.GeneratedDocument
	if err := r.db.Where("person_id = ?", personID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list generated documents by person failed: %w", err)
	}
	return docs, nil
}

func (r *GeneratedDocumentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.GeneratedDocument{}, id).Error; err != nil {
		return fmt.Errorf("delete generated document failed: %w", err)
	}
	return nil
}

func (r *GeneratedDocumentRepository) DeleteByPersonID(personID uint) error {
	if err := r.db.Where("person_id = ?", personID).Delete(&model.GeneratedDocument{}).Error; err != nil {
		return fmt.Errorf("delete generated documents by person failed: %w", err)
	}
	return nil
}
