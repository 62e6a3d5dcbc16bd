package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/annotai/notes-client/internal/adapter"
	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/store"
	"github.com/annotai/notes-client/models"
)

// DeleteStatus classifies what a Delete actually did. The local removal is
// unconditional; the remote leg depends on session state and backend health.
type DeleteStatus int

const (
	// DeleteSynced: removed locally and on the backend.
	DeleteSynced DeleteStatus = iota
	// DeleteLocalOnly: removed locally; no token, so there was no remote
	// copy to delete.
	DeleteLocalOnly
	// DeleteRemoteFailed: removed locally but the backend delete failed.
	// The local removal is not rolled back; RemoteErr carries the cause so
	// a caller or background reconciler can retry.
	DeleteRemoteFailed
)

// DeleteOutcome is the result of NoteService.Delete.
type DeleteOutcome struct {
	Status    DeleteStatus
	RemoteErr error
}

type noteService struct {
	store   *store.Storages
	gateway adapter.NoteGateway
	logger  *logger.Logger
}

func NewNoteService(storages *store.Storages, gateway adapter.NoteGateway, logger *logger.Logger) NoteService {
	return &noteService{store: storages, gateway: gateway, logger: logger}
}

// currentSession resolves the session every cache operation is keyed to.
// Absent session fails fast instead of silently operating on a shared
// partition.
func (n *noteService) currentSession() (models.Session, error) {
	session, err := n.store.Sessions.Get()
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLogged
		}
		return models.Session{}, err
	}
	return session, nil
}

func (n *noteService) List() ([]models.Note, error) {
	session, err := n.currentSession()
	if err != nil {
		return nil, err
	}
	return n.store.Notes.GetNotes(session.User.UserID)
}

func (n *noteService) Refresh(ctx context.Context) ([]models.Note, error) {
	session, err := n.currentSession()
	if err != nil {
		return nil, err
	}
	userID := session.User.UserID

	fetched, err := n.gateway.ListNotes(ctx)
	if err != nil {
		// Keep serving the stale cache: a backend outage must never blank
		// the user's note list.
		n.logger.Warn().Err(err).
			Int64("user_id", userID).
			Msg("refresh failed, keeping local cache")
		return n.store.Notes.GetNotes(userID)
	}

	if err = n.store.Notes.SaveNotes(userID, fetched); err != nil {
		return nil, fmt.Errorf("overwrite note cache: %w", err)
	}
	return fetched, nil
}

func (n *noteService) Create(ctx context.Context, title, content string, tags []string) (string, error) {
	session, err := n.currentSession()
	if err != nil {
		return "", err
	}
	userID := session.User.UserID

	id := ""
	if session.HasToken() {
		id, err = n.gateway.CreateNote(ctx, models.NotePayload{Title: title, Content: content, Tags: tags})
		if err != nil {
			return "", fmt.Errorf("create note on server: %w", err)
		}
	} else {
		id = uuid.NewString()
	}

	notes, err := n.store.Notes.GetNotes(userID)
	if err != nil {
		return "", err
	}

	note := models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: models.DisplayTime(time.Now()),
	}
	notes = append([]models.Note{note}, notes...)

	if err = n.store.Notes.SaveNotes(userID, notes); err != nil {
		return "", err
	}
	return id, nil
}

func (n *noteService) Update(ctx context.Context, id, title, content string, tags []string) error {
	session, err := n.currentSession()
	if err != nil {
		return err
	}
	userID := session.User.UserID

	if session.HasToken() {
		// Server first: a rejected update must leave the cache entry
		// exactly as it was.
		err = n.gateway.UpdateNote(ctx, id, models.NotePayload{Title: title, Content: content, Tags: tags})
		if err != nil {
			return fmt.Errorf("update note on server: %w", err)
		}
	}

	notes, err := n.store.Notes.GetNotes(userID)
	if err != nil {
		return err
	}

	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		// Field-level merge; CreatedAt and IsTrashed stay as they were.
		notes[i].Title = title
		notes[i].Content = content
		notes[i].Tags = tags
		return n.store.Notes.SaveNotes(userID, notes)
	}

	return nil
}

func (n *noteService) Delete(ctx context.Context, id string) (DeleteOutcome, error) {
	session, err := n.currentSession()
	if err != nil {
		return DeleteOutcome{}, err
	}
	userID := session.User.UserID

	notes, err := n.store.Notes.GetNotes(userID)
	if err != nil {
		return DeleteOutcome{}, err
	}

	kept := notes[:0]
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if err = n.store.Notes.SaveNotes(userID, kept); err != nil {
		return DeleteOutcome{}, err
	}

	if !session.HasToken() {
		return DeleteOutcome{Status: DeleteLocalOnly}, nil
	}

	if err = n.gateway.DeleteNote(ctx, id); err != nil {
		// The local removal already happened and stays; rendering always
		// re-lists from cache, so the divergence is tolerated. The outcome
		// still reports it so a caller can retry.
		n.logger.Warn().Err(err).
			Int64("user_id", userID).
			Str("note_id", id).
			Msg("remote delete failed after local removal")
		return DeleteOutcome{Status: DeleteRemoteFailed, RemoteErr: err}, nil
	}

	return DeleteOutcome{Status: DeleteSynced}, nil
}

func (n *noteService) Tags(ctx context.Context) ([]string, error) {
	session, err := n.currentSession()
	if err != nil {
		return nil, err
	}
	if !session.HasToken() {
		return nil, fmt.Errorf("%w: tag catalog requires a server session", ErrNotLogged)
	}

	return n.gateway.ListTags(ctx)
}

func (n *noteService) AddTag(ctx context.Context, name string) error {
	session, err := n.currentSession()
	if err != nil {
		return err
	}
	if !session.HasToken() {
		return fmt.Errorf("%w: tag catalog requires a server session", ErrNotLogged)
	}

	if err = n.gateway.CreateTag(ctx, name); err != nil {
		return fmt.Errorf("create tag on server: %w", err)
	}
	return nil
}
