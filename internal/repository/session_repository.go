package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managerdocs/internal/model"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("create session failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) Update(session *model.Session) error {
	if err := r.db.Save(session).Error; err != nil {
		return fmt.Errorf("update session failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(id uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session by id failed: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) ListByPersonID(personID uint) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.Where("person_id = ?", personID).Order("date DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions failed: %w", err)
	}
	return sessions, nil
}

// ListRecentByPersonID returns the most recent sessions by meeting date,
// excluding excludeID when non-zero.
func (r *SessionRepository) ListRecentByPersonID(personID, excludeID uint, limit int) ([]model.Session, error) {
	if limit <= 0 {
		limit = 3
	}
	query := r.db.Where("person_id = ?", personID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var sessions []model.Session
	if err := query.Order("date DESC").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list recent sessions failed: %w", err)
	}
	return sessions, nil
}

// SetGeneratedSummary writes only the generated summary column.
func (r *SessionRepository) SetGeneratedSummary(id uint, summary string) error {
	if err := r.db.Model(&model.Session{}).Where("id = ?", id).Update("generated_summary", summary).Error; err != nil {
		return fmt.Errorf("set generated summary failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Session{}, id).Error; err != nil {
		return fmt.Errorf("delete session failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByPersonID(personID uint) error {
	if err := r.db.Where("person_id = ?", personID).Delete(&model.Session{}).Error; err != nil {
		return fmt.Errorf("delete sessions by person failed: %w", err)
	}
	return nil
}
