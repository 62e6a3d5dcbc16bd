package store

import (
	"fmt"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/models"
)

type trashRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewTrashRepository(kv KeyValue, logger *logger.Logger) TrashRepository {
	return &trashRepository{kv: kv, logger: logger}
}

func (r *trashRepository) GetTrash(userID int64) ([]models.Note, error) {
	var notes []models.Note
	if _, err := getJSON(r.kv, trashKey(userID), &notes); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to read trash partition")
		return nil, fmt.Errorf("failed to read trash (user_id=%d): %w", userID, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (r *trashRepository) SaveTrash(userID int64, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	if err := setJSON(r.kv, trashKey(userID), notes); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to persist trash partition")
		return fmt.Errorf("failed to save trash (user_id=%d): %w", userID, err)
	}
	return nil
}
