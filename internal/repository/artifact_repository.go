package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type ArtifactRepository struct {
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

func (r *ArtifactRepository) Create(artifact *model.Artifact) error {
	if err := r.db.Create(artifact).Error; err != nil {
		return fmt.Errorf("create artifact failed: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) Update(artifact *model.Artifact) error {
	if err := r.db.Save(artifact).Error; err != nil {
		return fmt.Errorf("update artifact failed: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) GetByID(id uint) (*model.Artifact, error) {
	var artifact model.Artifact
	if err := r.db.First(&artifact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query artifact by id failed: %w", err)
	}
	return &artifact, nil
}

func (r *ArtifactRepository) ListBySessionID(sessionID uint) ([]model.Artifact, error) {
	var artifacts []model.Artifact
	if err := r.db.Where("session_id = ?", sessionID).Order("artifact_date DESC").Find(&artifacts).Error; err != nil {
		return nil, fmt.Errorf("list artifacts failed: %w", err)
	}
	return artifacts, nil
}

// ListByPersonSince returns the person's artifacts with artifact_date at or
// after cutoff. The lower bound is inclusive.
func (r *ArtifactRepository) ListByPersonSince(personID uint, cutoff time.Time) ([]model.Artifact, error) {
	var artifacts []model.Artifact
	err := r.db.Where("person_id = ? AND artifact_date >= ?", personID, cutoff).
		Order("artifact_date DESC").Find(&artifacts).Error
	if err != nil {
		return nil, fmt.Errorf("list artifacts since cutoff failed: %w", err)
	}
	return artifacts, nil
}

func (r *ArtifactRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Artifact{}, id).Error; err != nil {
		return fmt.Errorf("delete artifact failed: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) DeleteBySessionID(sessionID uint) error {
	if err := r.db.Where("session_id = ?", sessionID).Delete(&model.Artifact{}).Error; err != nil {
		return fmt.Errorf("delete artifacts by session failed: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) DeleteByPersonID(personID uint) error {
	if err := r.db.Where("person_id = ?", personID).Delete(&model.Artifact{}).Error; err != nil {
		return fmt.Errorf("delete artifacts by person failed: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) CountByPersonID(personID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Artifact{}).Where("person_id = ?", personID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count artifacts failed: %w", err)
	}
	return count, nil
}
