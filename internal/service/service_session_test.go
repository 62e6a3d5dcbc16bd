package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/mock"
	"github.com/annotai/notes-client/internal/store"
	"github.com/annotai/notes-client/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (SessionService, *store.Storages, *mock.MockNoteGateway) {
	t.Helper()

	kv, err := store.NewFileKeyValue(":memory:")
	require.NoError(t, err)
	storages := store.NewStoragesWithKeyValue(kv, logger.Nop())
	gateway := mock.NewMockNoteGateway(ctrl)

	return NewSessionService(storages.Sessions, gateway, logger.Nop()), storages, gateway
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestSessionService_Login_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	want := models.Session{
		Token: "jwt",
		User:  models.User{UserID: 42, Name: "Alice", Email: "alice@example.com"},
	}
	gateway.EXPECT().Login(ctx, "alice@example.com", "pw").Return(want, nil)

	got, err := svc.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	persisted, err := storages.Sessions.Get()
	require.NoError(t, err)
	assert.Equal(t, want, persisted)
}

func TestSessionService_Login_GatewayErrorNothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().Login(ctx, "a@b.c", "wrong").Return(models.Session{}, errors.New("401: invalid credentials"))

	_, err := svc.Login(ctx, "a@b.c", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	_, err = storages.Sessions.Get()
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_Register_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	want := models.Session{Token: "jwt-new", User: models.User{UserID: 7, Name: "Bob"}}
	gateway.EXPECT().Register(ctx, "Bob", "bob@example.com", "pw").Return(want, nil)

	got, err := svc.Register(ctx, "Bob", "bob@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	persisted, err := storages.Sessions.Get()
	require.NoError(t, err)
	assert.Equal(t, want, persisted)
}

// ── SaveSession / ClearSession / Restore ─────────────────────────────────────

func TestSessionService_SaveSession_ArmsGatewayToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)

	gateway.EXPECT().SetToken("jwt")

	require.NoError(t, svc.SaveSession("jwt", models.User{UserID: 1, Name: "Alice"}))

	persisted, err := storages.Sessions.Get()
	require.NoError(t, err)
	assert.Equal(t, "jwt", persisted.Token)
	assert.Equal(t, "Alice", persisted.User.Name)
}

func TestSessionService_SaveSession_EmptyTokenIsLocalOnlyMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, gateway := newTestSessionSvc(t, ctrl)

	gateway.EXPECT().SetToken("")

	require.NoError(t, svc.SaveSession("", models.User{UserID: 1, Name: "local"}))

	assert.False(t, svc.IsLogged())
	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "local", user.Name)
}

func TestSessionService_ClearSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)

	require.NoError(t, storages.Sessions.Save(models.Session{Token: "jwt", User: models.User{UserID: 1}}))

	gateway.EXPECT().SetToken("")
	require.NoError(t, svc.ClearSession())

	_, err := storages.Sessions.Get()
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// Clearing again is a no-op, not an error.
	gateway.EXPECT().SetToken("")
	assert.NoError(t, svc.ClearSession())
}

func TestSessionService_Restore_ReArmsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, gateway := newTestSessionSvc(t, ctrl)

	saved := models.Session{Token: "jwt-persisted", User: models.User{UserID: 3}}
	require.NoError(t, storages.Sessions.Save(saved))

	gateway.EXPECT().SetToken("jwt-persisted")

	got, err := svc.Restore()
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSessionService_Restore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.Restore()
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

// ── IsLogged / CurrentUser ───────────────────────────────────────────────────

func TestSessionService_IsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, _ := newTestSessionSvc(t, ctrl)

	assert.False(t, svc.IsLogged(), "no session")

	require.NoError(t, storages.Sessions.Save(models.Session{User: models.User{UserID: 1}}))
	assert.False(t, svc.IsLogged(), "session without token")

	require.NoError(t, storages.Sessions.Save(models.Session{Token: "jwt", User: models.User{UserID: 1}}))
	assert.True(t, svc.IsLogged())
}

func TestSessionService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storages, _ := newTestSessionSvc(t, ctrl)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	require.NoError(t, storages.Sessions.Save(models.Session{Token: "jwt", User: models.User{UserID: 42, Name: "Alice"}}))

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(42), user.UserID)
}
