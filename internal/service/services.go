package service

import (
	"github.com/annotai/notes-client/internal/adapter"
	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/store"
)

type ClientServices struct {
	SessionService  SessionService
	NoteService     NoteService
	TrashService    TrashService
	ReminderService ReminderService
	RefreshJob      RefreshJob
}

func NewClientServices(storages *store.Storages, gateway adapter.NoteGateway, logger *logger.Logger) *ClientServices {
	noteSvc := NewNoteService(storages, gateway, logger)

	return &ClientServices{
		SessionService:  NewSessionService(storages.Sessions, gateway, logger),
		NoteService:     noteSvc,
		TrashService:    NewTrashService(storages, noteSvc, logger),
		ReminderService: NewReminderService(storages, logger),
		RefreshJob:      NewRefreshJob(noteSvc),
	}
}
