package repositories

import (
	"errors"

	"fiber-tracker/middleware"
	"fiber-tracker/models"

	"gorm.io/gorm"
)

// SessionRepository backs the auth middleware's session check.
type SessionRepository struct {
	db *gorm.DB
}

var _ middleware.SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) IsSessionActive(sessionID string) (bool, error) {
	var session models.UserSession
	err := r.db.First(&session, "session_id = ? AND logout_at IS NULL", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
