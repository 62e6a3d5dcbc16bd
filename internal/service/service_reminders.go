package service

import (
	"errors"
	"time"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/store"
	"github.com/annotai/notes-client/models"
)

type reminderService struct {
	store  *store.Storages
	logger *logger.Logger
}

func NewReminderService(storages *store.Storages, logger *logger.Logger) ReminderService {
	return &reminderService{store: storages, logger: logger}
}

func (r *reminderService) currentSession() (models.Session, error) {
	session, err := r.store.Sessions.Get()
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLogged
		}
		return models.Session{}, err
	}
	return session, nil
}

func (r *reminderService) List() ([]models.Reminder, error) {
	session, err := r.currentSession()
	if err != nil {
		return nil, err
	}
	return r.store.Reminders.GetReminders(session.User.UserID)
}

func (r *reminderService) ListByDate(date string) ([]models.Reminder, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Reminder, 0, len(all))
	for _, reminder := range all {
		if reminder.Date == date {
			matched = append(matched, reminder)
		}
	}
	return matched, nil
}

func (r *reminderService) Add(title, content, date, noteID string) error {
	session, err := r.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	reminders, err := r.store.Reminders.GetReminders(userID)
	if err != nil {
		return err
	}

	reminders = append(reminders, models.Reminder{
		ID:      time.Now().UnixMilli(),
		Title:   title,
		Content: content,
		Date:    date,
		NoteID:  noteID,
	})

	return r.store.Reminders.SaveReminders(userID, reminders)
}

func (r *reminderService) Remove(id int64) error {
	session, err := r.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	reminders, err := r.store.Reminders.GetReminders(userID)
	if err != nil {
		return err
	}

	kept := reminders[:0]
	for _, reminder := range reminders {
		if reminder.ID != id {
			kept = append(kept, reminder)
		}
	}

	return r.store.Reminders.SaveReminders(userID, kept)
}
