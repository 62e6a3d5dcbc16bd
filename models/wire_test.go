package models

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NoteWire ─────────────────────────────────────────────────────────────────

func TestNoteWire_CanonicalNote_IDSpellings(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain id number", body: `{"id": 42}`, want: "42"},
		{name: "plain id string", body: `{"id": "abc"}`, want: "abc"},
		{name: "upper case ID", body: `{"ID": 7}`, want: "7"},
		{name: "camel idNote", body: `{"idNote": 13}`, want: "13"},
		{name: "snake id_note", body: `{"id_note": 99}`, want: "99"},
		{name: "column style ID_NOTE", body: `{"ID_NOTE": 5}`, want: "5"},
		{name: "id wins over idNote", body: `{"id": 1, "idNote": 2}`, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w NoteWire
			require.NoError(t, json.Unmarshal([]byte(tt.body), &w))
			assert.Equal(t, tt.want, w.CanonicalNote(now).ID)
		})
	}
}

func TestNoteWire_CanonicalNote_Tags(t *testing.T) {
	now := time.Now()

	body := `{"id": 1, "tags": ["go", {"nome": "trabalho"}, {"name": "work"}]}`
	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	note := w.CanonicalNote(now)
	assert.Equal(t, []string{"go", "trabalho", "work"}, note.Tags)
}

func TestNoteWire_CanonicalNote_NoTags(t *testing.T) {
	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1}`), &w))

	note := w.CanonicalNote(time.Now())
	require.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
}

func TestNoteWire_CanonicalNote_CreatedAtDisplayString(t *testing.T) {
	body := `{"id": 1, "createdAt": "27/08/2026 10:30:00"}`
	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	note := w.CanonicalNote(time.Now())
	assert.Equal(t, "27/08/2026 10:30:00", note.CreatedAt)
}

func TestNoteWire_CanonicalNote_CreatedAtRFC3339(t *testing.T) {
	body := `{"id": 1, "created_at": "2026-08-27T10:30:00Z"}`
	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	note := w.CanonicalNote(time.Now())
	assert.Equal(t, "27/08/2026 10:30:00", note.CreatedAt)
}

func TestNoteWire_CanonicalNote_CreatedAtEpochMillis(t *testing.T) {
	ts := time.Date(2026, 8, 27, 10, 30, 0, 0, time.Local)
	body := `{"id": 1, "created_at": ` + strconv.FormatInt(ts.UnixMilli(), 10) + `}`

	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	note := w.CanonicalNote(time.Now())
	assert.Equal(t, "27/08/2026 10:30:00", note.CreatedAt)
}

func TestNoteWire_CanonicalNote_CreatedAtMissingUsesNow(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)

	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1}`), &w))

	note := w.CanonicalNote(now)
	assert.Equal(t, "28/08/2026 23:59:59", note.CreatedAt)
}

func TestNoteWire_CanonicalNote_UnparseableCreatedAtKeptVerbatim(t *testing.T) {
	body := `{"id": 1, "created_at": "yesterday"}`
	var w NoteWire
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	note := w.CanonicalNote(time.Now())
	assert.Equal(t, "yesterday", note.CreatedAt)
}

// ── AuthWire ─────────────────────────────────────────────────────────────────

func TestAuthWire_Session(t *testing.T) {
	body := `{"token": "jwt-token", "userId": 42, "nome": "Alice", "email": "alice@example.com"}`

	var a AuthWire
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	session := a.Session()
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, int64(42), session.User.UserID)
	assert.Equal(t, "Alice", session.User.Name)
	assert.Equal(t, "alice@example.com", session.User.Email)
	assert.True(t, session.HasToken())
}

// ── TagWire ──────────────────────────────────────────────────────────────────

func TestTagWire_Label(t *testing.T) {
	assert.Equal(t, "trabalho", TagWire{Nome: "trabalho", Name: "work"}.Label())
	assert.Equal(t, "work", TagWire{Name: "work"}.Label())
	assert.Equal(t, "", TagWire{}.Label())
}

// ── Note ─────────────────────────────────────────────────────────────────────

func TestNote_IsTrashedOmittedWhenFalse(t *testing.T) {
	b, err := json.Marshal(Note{ID: "1", Title: "t"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "isTrashed")

	b, err = json.Marshal(Note{ID: "1", Title: "t", IsTrashed: true})
	require.NoError(t, err)
	assert.Contains(t, string(b), "isTrashed")
}
