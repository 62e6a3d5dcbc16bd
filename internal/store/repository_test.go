package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	kv, err := NewFileKeyValue(":memory:")
	require.NoError(t, err)

	return NewStoragesWithKeyValue(kv, logger.Nop())
}

// ── SessionRepository ────────────────────────────────────────────────────────

func TestSessionRepository_SaveAndGet(t *testing.T) {
	s := newTestStorages(t)

	session := models.Session{
		Token: "jwt-token",
		User:  models.User{UserID: 42, Name: "Alice", Email: "alice@example.com"},
	}
	require.NoError(t, s.Sessions.Save(session))

	got, err := s.Sessions.Get()
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionRepository_GetWithoutSave(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.Sessions.Get()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Clear(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Sessions.Save(models.Session{Token: "t"}))
	require.NoError(t, s.Sessions.Clear())

	_, err := s.Sessions.Get()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_ClearTwice(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Sessions.Clear())
	require.NoError(t, s.Sessions.Clear())
}

func TestSessionRepository_SaveOverwrites(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Sessions.Save(models.Session{Token: "old", User: models.User{UserID: 1}}))
	require.NoError(t, s.Sessions.Save(models.Session{Token: "new", User: models.User{UserID: 2}}))

	got, err := s.Sessions.Get()
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, int64(2), got.User.UserID)
}

// ── NoteRepository ───────────────────────────────────────────────────────────

func TestNoteRepository_EmptyForNewUser(t *testing.T) {
	s := newTestStorages(t)

	notes, err := s.Notes.GetNotes(1)
	require.NoError(t, err)
	require.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_SaveAndGet(t *testing.T) {
	s := newTestStorages(t)

	notes := []models.Note{
		{ID: "1", Title: "first", Tags: []string{"x"}},
		{ID: "2", Title: "second", Tags: []string{}},
	}
	require.NoError(t, s.Notes.SaveNotes(7, notes))

	got, err := s.Notes.GetNotes(7)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteRepository_PartitionedByUser(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Notes.SaveNotes(1, []models.Note{{ID: "a"}}))
	require.NoError(t, s.Notes.SaveNotes(2, []models.Note{{ID: "b"}, {ID: "c"}}))

	one, err := s.Notes.GetNotes(1)
	require.NoError(t, err)
	two, err := s.Notes.GetNotes(2)
	require.NoError(t, err)

	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
	assert.Equal(t, "a", one[0].ID)
}

func TestNoteRepository_SaveNilAsEmpty(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Notes.SaveNotes(1, nil))

	got, err := s.Notes.GetNotes(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ── TrashRepository ──────────────────────────────────────────────────────────

func TestTrashRepository_SeparateFromLiveCache(t *testing.T) {
	s := newTestStorages(t)

	require.NoError(t, s.Notes.SaveNotes(1, []models.Note{{ID: "live"}}))
	require.NoError(t, s.Trash.SaveTrash(1, []models.Note{{ID: "trashed", IsTrashed: true}}))

	live, err := s.Notes.GetNotes(1)
	require.NoError(t, err)
	trash, err := s.Trash.GetTrash(1)
	require.NoError(t, err)

	require.Len(t, live, 1)
	require.Len(t, trash, 1)
	assert.Equal(t, "live", live[0].ID)
	assert.Equal(t, "trashed", trash[0].ID)
	assert.True(t, trash[0].IsTrashed)
}

// ── ReminderRepository ───────────────────────────────────────────────────────

func TestReminderRepository_SaveAndGetKeepsOrder(t *testing.T) {
	s := newTestStorages(t)

	reminders := []models.Reminder{
		{ID: 3, Title: "c", Date: "2026-08-28"},
		{ID: 1, Title: "a", Date: "2026-08-28"},
		{ID: 2, Title: "b", Date: "2026-08-29"},
	}
	require.NoError(t, s.Reminders.SaveReminders(5, reminders))

	got, err := s.Reminders.GetReminders(5)
	require.NoError(t, err)
	assert.Equal(t, reminders, got)
}

func TestReminderRepository_EmptyForNewUser(t *testing.T) {
	s := newTestStorages(t)

	got, err := s.Reminders.GetReminders(9)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
