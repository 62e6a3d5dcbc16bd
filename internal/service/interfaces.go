// SPDX-License-Identifier: Apache-2.0

// Package service implements the client's core behaviour on top of the local
// store and the remote note gateway: session management, the note cache and
// sync engine, the trash workspace, and reminders.
//
// Availability over freshness: operations that would otherwise blank the
// user's data on a backend outage (Refresh, the remote leg of Delete) swallow
// and log transport failures; operations where a silent loss of a write would
// be unacceptable (Create, Update, RestoreFromTrash) propagate them.
package service

import (
	"context"
	"time"

	"github.com/annotai/notes-client/models"
)

// SessionService manages the single login session of the client. All
// per-user cache operations in the other services resolve the current user
// through the persisted session.
type SessionService interface {
	// Login authenticates against the backend, persists the resulting
	// session, and arms the gateway with the bearer token.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates an account, persists the resulting session, and arms
	// the gateway with the bearer token.
	Register(ctx context.Context, name, email, password string) (models.Session, error)

	// SaveSession persists token and user as one atomic pair. An empty token
	// with a non-zero user puts the client into local-only (demo) mode.
	SaveSession(token string, user models.User) error

	// ClearSession removes the session and disarms the gateway token.
	// Idempotent.
	ClearSession() error

	// Restore loads a previously persisted session at startup and re-arms
	// the gateway token. Returns store.ErrSessionNotFound (wrapped) when no
	// session exists.
	Restore() (models.Session, error)

	// IsLogged reports whether a bearer token is present. No expiry check is
	// done client-side; an expired token surfaces as a 401 on the next
	// remote call.
	IsLogged() bool

	// CurrentUser returns the stored user, or ok=false when no session
	// exists.
	CurrentUser() (user models.User, ok bool)
}

// NoteService is the note cache and sync engine. It owns the per-user live
// cache partition and every reconciliation decision between cache and
// backend. All operations fail fast with ErrNotLogged when no session exists.
type NoteService interface {
	// List returns the live cache verbatim. Synchronous, no network; this is
	// the fast path for rendering.
	List() ([]models.Note, error)

	// Refresh fetches the full note list from the gateway, overwrites the
	// live cache with it, and returns it. On any gateway failure it logs and
	// returns the existing stale cache with a nil error: a transient backend
	// outage must never blank the user's note list.
	Refresh(ctx context.Context) ([]models.Note, error)

	// Create adds a note and returns its id. With a token the id is
	// server-issued; without one a local UUID is generated and no network
	// call is made. Gateway failures propagate with a human-readable message
	// and leave the cache unmodified.
	Create(ctx context.Context, title, content string, tags []string) (string, error)

	// Update modifies the cached note in place (field-level merge, CreatedAt
	// preserved). With a token the gateway call happens first and a failure
	// leaves the cache untouched.
	Update(ctx context.Context, id, title, content string, tags []string) error

	// Delete removes the note from the live cache immediately, then attempts
	// the remote delete when a token is present. The returned outcome makes
	// a failed remote leg observable instead of silently swallowed; the
	// local removal is never rolled back.
	Delete(ctx context.Context, id string) (DeleteOutcome, error)

	// Tags lists the tag labels known to the backend. Requires a token.
	Tags(ctx context.Context) ([]string, error)

	// AddTag registers a new tag label with the backend. Requires a token.
	AddTag(ctx context.Context, name string) error
}

// TrashService is the soft-delete workspace. Trash is a local-only partition;
// the backend has no trash concept, so restoring re-creates the note remotely
// under a new identity.
type TrashService interface {
	// ListTrash returns the trash partition. Synchronous, local only.
	ListTrash() ([]models.Note, error)

	// MoveToTrash copies the note into the trash partition and then hard-
	// deletes it from the live cache and the backend. The trash copy is
	// durably written before the delete is attempted, so a failure
	// mid-operation cannot lose the note. Absent id: no-op.
	MoveToTrash(ctx context.Context, id string) error

	// RestoreFromTrash re-creates the trashed note via the engine's Create —
	// minting a NEW id — and only then drops the trash entry. If Create
	// fails the entry stays in trash and the error propagates. Absent id:
	// no-op.
	RestoreFromTrash(ctx context.Context, id string) error

	// DeletePermanently removes the entry from the trash partition
	// unconditionally. Local only and idempotent: the backend copy was
	// already removed when the note was trashed.
	DeletePermanently(id string) error
}

// ReminderService is pure local CRUD over the per-user calendar reminders.
type ReminderService interface {
	// List returns the current user's reminders in insertion order.
	List() ([]models.Reminder, error)

	// ListByDate returns the reminders for one ISO date (YYYY-MM-DD), in
	// insertion order. Multiple reminders may share a date or a note.
	ListByDate(date string) ([]models.Reminder, error)

	// Add appends a reminder with an id derived from the current time.
	Add(title, content, date, noteID string) error

	// Remove deletes the reminder with the given id. Absent id: no-op.
	Remove(id int64) error
}

// RefreshJob periodically reconciles the live cache with the backend in the
// background. Idle until Start is called.
type RefreshJob interface {
	// Start launches the background goroutine, refreshing every interval
	// (default 5 minutes when non-positive). A previously running job is
	// stopped first. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
