package store

import (
	"fmt"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/models"
)

type reminderRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewReminderRepository(kv KeyValue, logger *logger.Logger) ReminderRepository {
	return &reminderRepository{kv: kv, logger: logger}
}

func (r *reminderRepository) GetReminders(userID int64) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if _, err := getJSON(r.kv, remindersKey(userID), &reminders); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to read reminders")
		return nil, fmt.Errorf("failed to read reminders (user_id=%d): %w", userID, err)
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return reminders, nil
}

func (r *reminderRepository) SaveReminders(userID int64, reminders []models.Reminder) error {
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	if err := setJSON(r.kv, remindersKey(userID), reminders); err != nil {
		r.logger.Err(err).
			Int64("user_id", userID).
			Msg("failed to persist reminders")
		return fmt.Errorf("failed to save reminders (user_id=%d): %w", userID, err)
	}
	return nil
}
