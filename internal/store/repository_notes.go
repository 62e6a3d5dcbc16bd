package store

import (
	"fmt"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/models"
)

type noteRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewNoteRepository(kv KeyValue, logger *logger.Logger) NoteRepository {
	return &noteRepository{kv: kv, logger: logger}
}

// GetNotes returns the live note cache for userID. An absent key means the
// user has no cached notes yet; that is an empty list, not an error.
func (r *noteRepository) GetNotes(userID int64) ([]models.Note, error) {
	var notes []models.Note
	if _, err := getJSON(r.kv, notesKey(userID), &notes); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to read live note cache")
		return nil, fmt.Errorf("failed to read notes (user_id=%d): %w", userID, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// SaveNotes overwrites the live note cache for userID.
func (r *noteRepository) SaveNotes(userID int64, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	if err := setJSON(r.kv, notesKey(userID), notes); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to persist live note cache")
		return fmt.Errorf("failed to save notes (user_id=%d): %w", userID, err)
	}
	return nil
}
