package store

import (
	"fmt"

	"github.com/annotai/notes-client/internal/config"
	"github.com/annotai/notes-client/internal/logger"
)

// Storages groups all client-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	Sessions  SessionRepository
	Notes     NoteRepository
	Trash     TrashRepository
	Reminders ReminderRepository
}

// NewStorages initialises the local persistence layer: it opens (or creates)
// the key-value file configured in cfg.FilePath and wires every repository to
// it.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("path", cfg.FilePath).Msg("opening local storage")

	kv, err := NewFileKeyValue(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	return NewStoragesWithKeyValue(kv, logger), nil
}

// NewStoragesWithKeyValue wires the repositories to an existing key-value
// port. Tests use it with an in-memory KeyValue.
func NewStoragesWithKeyValue(kv KeyValue, logger *logger.Logger) *Storages {
	return &Storages{
		Sessions:  NewSessionRepository(kv, logger),
		Notes:     NewNoteRepository(kv, logger),
		Trash:     NewTrashRepository(kv, logger),
		Reminders: NewReminderRepository(kv, logger),
	}
}
