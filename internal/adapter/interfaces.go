// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// remote notes backend.
//
// The primary abstraction is [NoteGateway], which decouples the service layer
// from the REST protocol. The HTTP implementation ([NewHTTPNoteGateway])
// selects its base URL once per process with a liveness probe: when the
// primary backend answers the health endpoint with any status below 500 it is
// used, otherwise the gateway falls back to the local address.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). The wrapped message always
// carries the most human-readable text the response offered: a structured
// `error` field, then the raw body, then the HTTP status text.
package adapter

import (
	"context"

	"github.com/annotai/notes-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_gateway_mock.go -package=mock

// NoteGateway defines transport-agnostic communication with the notes
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type NoteGateway interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Login or Register,
	// and again when a persisted session is restored at startup.
	SetToken(token string)

	// Token returns the bearer token currently held by the gateway, or an
	// empty string if none has been set.
	Token() string

	// Login authenticates with POST /auth/login and returns the resulting
	// session (token plus user identity). No Authorization header is sent;
	// a stale token from a previous session must not leak into the call.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates an account with POST /auth/register and returns the
	// resulting session.
	Register(ctx context.Context, name, email, password string) (models.Session, error)

	// ListNotes fetches the user's full note list from GET /notes, already
	// mapped onto the canonical Note shape.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note from GET /notes/{id}.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// CreateNote posts the payload to POST /notes and returns the
	// server-issued note id (stringified).
	CreateNote(ctx context.Context, payload models.NotePayload) (string, error)

	// UpdateNote puts the payload to PUT /notes/{id}.
	UpdateNote(ctx context.Context, id string, payload models.NotePayload) error

	// DeleteNote sends DELETE /notes/{id}.
	DeleteNote(ctx context.Context, id string) error

	// ListTags fetches the tag labels known to the backend from GET /tags.
	ListTags(ctx context.Context) ([]string, error)

	// CreateTag registers a new tag label with POST /tags.
	CreateTag(ctx context.Context, name string) error
}
