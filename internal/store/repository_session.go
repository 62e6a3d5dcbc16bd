package store

import (
	"fmt"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/models"
)

type sessionRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewSessionRepository(kv KeyValue, logger *logger.Logger) SessionRepository {
	return &sessionRepository{kv: kv, logger: logger}
}

// Save persists the token/user pair under a single key, so readers always
// observe them together.
func (r *sessionRepository) Save(session models.Session) error {
	if err := setJSON(r.kv, sessionKey, session); err != nil {
		r.logger.Err(err).
			Int64("user_id", session.User.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get() (models.Session, error) {
	var session models.Session
	ok, err := getJSON(r.kv, sessionKey, &session)
	if err != nil {
		r.logger.Err(err).Msg("failed to read session")
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Clear removes the session. Idempotent: clearing an absent session is not an
// error.
func (r *sessionRepository) Clear() error {
	if err := r.kv.Delete(sessionKey); err != nil {
		r.logger.Err(err).Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
