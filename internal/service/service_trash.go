package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/store"
	"github.com/annotai/notes-client/models"
)

type trashService struct {
	store  *store.Storages
	engine NoteService
	logger *logger.Logger
}

// NewTrashService wires the trash workspace to the storage layer and the note
// engine. The trash service never touches the live cache directly; removal
// and re-creation go through the engine's Delete and Create primitives.
func NewTrashService(storages *store.Storages, engine NoteService, logger *logger.Logger) TrashService {
	return &trashService{store: storages, engine: engine, logger: logger}
}

func (t *trashService) currentSession() (models.Session, error) {
	session, err := t.store.Sessions.Get()
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLogged
		}
		return models.Session{}, err
	}
	return session, nil
}

func (t *trashService) ListTrash() ([]models.Note, error) {
	session, err := t.currentSession()
	if err != nil {
		return nil, err
	}
	return t.store.Trash.GetTrash(session.User.UserID)
}

func (t *trashService) MoveToTrash(ctx context.Context, id string) error {
	session, err := t.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	live, err := t.store.Notes.GetNotes(userID)
	if err != nil {
		return err
	}

	var found *models.Note
	for i := range live {
		if live[i].ID == id {
			found = &live[i]
			break
		}
	}
	if found == nil {
		// The visible list already reflects reality.
		return nil
	}

	trashed := *found
	trashed.IsTrashed = true

	trash, err := t.store.Trash.GetTrash(userID)
	if err != nil {
		return err
	}
	trash = append(trash, trashed)

	// The trash copy must be durable before the delete is attempted, so a
	// failure mid-operation cannot lose the note entirely.
	if err = t.store.Trash.SaveTrash(userID, trash); err != nil {
		return fmt.Errorf("write trash copy: %w", err)
	}

	outcome, err := t.engine.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("remove trashed note from live cache: %w", err)
	}
	if outcome.Status == DeleteRemoteFailed {
		t.logger.Warn().
			Int64("user_id", userID).
			Str("note_id", id).
			Msg("note trashed locally, backend copy not removed")
	}

	return nil
}

func (t *trashService) RestoreFromTrash(ctx context.Context, id string) error {
	session, err := t.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	trash, err := t.store.Trash.GetTrash(userID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range trash {
		if trash[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	note := trash[idx]

	// Restore is creation, not undelete: the backend has no trash state, so
	// the note is re-created under a new id. Only after Create resolves is
	// the trash entry dropped; on failure the note stays recoverable.
	if _, err = t.engine.Create(ctx, note.Title, note.Content, note.Tags); err != nil {
		return fmt.Errorf("recreate trashed note: %w", err)
	}

	trash = append(trash[:idx], trash[idx+1:]...)
	if err = t.store.Trash.SaveTrash(userID, trash); err != nil {
		return fmt.Errorf("drop restored trash entry: %w", err)
	}

	return nil
}

func (t *trashService) DeletePermanently(id string) error {
	session, err := t.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	trash, err := t.store.Trash.GetTrash(userID)
	if err != nil {
		return err
	}

	kept := trash[:0]
	for _, note := range trash {
		if note.ID != id {
			kept = append(kept, note)
		}
	}

	return t.store.Trash.SaveTrash(userID, kept)
}
