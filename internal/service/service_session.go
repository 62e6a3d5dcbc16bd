package service

import (
	"context"
	"fmt"

	"github.com/annotai/notes-client/internal/adapter"
	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/store"
	"github.com/annotai/notes-client/models"
)

type sessionService struct {
	sessions store.SessionRepository
	gateway  adapter.NoteGateway
	logger   *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, gateway adapter.NoteGateway, logger *logger.Logger) SessionService {
	return &sessionService{sessions: sessions, gateway: gateway, logger: logger}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	if err = s.sessions.Save(session); err != nil {
		return models.Session{}, fmt.Errorf("persist session after login: %w", err)
	}

	s.logger.Info().Int64("user_id", session.User.UserID).Msg("logged in")
	return session, nil
}

func (s *sessionService) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	session, err := s.gateway.Register(ctx, name, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("register on server: %w", err)
	}

	if err = s.sessions.Save(session); err != nil {
		return models.Session{}, fmt.Errorf("persist session after register: %w", err)
	}

	s.logger.Info().Int64("user_id", session.User.UserID).Msg("registered")
	return session, nil
}

func (s *sessionService) SaveSession(token string, user models.User) error {
	session := models.Session{Token: token, User: user}
	if err := s.sessions.Save(session); err != nil {
		return err
	}

	s.gateway.SetToken(token)
	return nil
}

func (s *sessionService) ClearSession() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}

	s.gateway.SetToken("")
	return nil
}

func (s *sessionService) Restore() (models.Session, error) {
	session, err := s.sessions.Get()
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.gateway.SetToken(session.Token)
	return session, nil
}

func (s *sessionService) IsLogged() bool {
	session, err := s.sessions.Get()
	if err != nil {
		return false
	}
	return session.HasToken()
}

func (s *sessionService) CurrentUser() (models.User, bool) {
	session, err := s.sessions.Get()
	if err != nil {
		return models.User{}, false
	}
	return session.User, true
}
