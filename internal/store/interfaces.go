// SPDX-License-Identifier: Apache-2.0

// Package store implements the client's local persistence: a small key-value
// port mirroring browser localStorage semantics, and typed repositories for
// the session, the per-user live note cache, the trash partition, and the
// reminders list.
//
// Per-user data is namespaced by user id in the key itself (notes_<id>,
// trash_notes_<id>, reminders_<id>), so switching accounts exposes a
// different partition without any migration. The session lives under a single
// key holding token and user together.
package store

import "github.com/annotai/notes-client/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the storage port under all repositories. Implementations must
// be safe for concurrent use. Get reports presence explicitly so an absent
// key is not an error.
type KeyValue interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// SessionRepository persists the login session. Save and Clear operate on the
// token/user pair atomically: a reader can never observe a token without its
// matching user.
type SessionRepository interface {
	Save(session models.Session) error
	Get() (models.Session, error)
	Clear() error
}

// NoteRepository persists the per-user live note cache.
type NoteRepository interface {
	GetNotes(userID int64) ([]models.Note, error)
	SaveNotes(userID int64, notes []models.Note) error
}

// TrashRepository persists the per-user trash partition. Trash is local-only;
// it is never synced with the backend.
type TrashRepository interface {
	GetTrash(userID int64) ([]models.Note, error)
	SaveTrash(userID int64, notes []models.Note) error
}

// ReminderRepository persists the per-user reminders list.
type ReminderRepository interface {
	GetReminders(userID int64) ([]models.Reminder, error)
	SaveReminders(userID int64, reminders []models.Reminder) error
}
