package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/annotai/notes-client/internal/config"
	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/service"
	"github.com/annotai/notes-client/internal/workers"
	"github.com/annotai/notes-client/models"
)

// localUser is the identity used when no server session exists. Its cache
// partition is separate from any real account, so logging in later never
// mixes local-only notes into a server-backed list.
var localUser = models.User{UserID: 1, Name: "local"}

type App struct {
	services   *service.ClientServices
	workersCfg config.Workers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &App{services: services, workersCfg: workersCfg, logger: log}, nil
}

// Run restores the persisted session (falling back to a token-less local
// session), reconciles the note cache once, prints the resulting list, and
// then keeps the cache fresh in the background until the process receives
// SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := a.services.SessionService.Restore()
	if err != nil {
		if saveErr := a.services.SessionService.SaveSession("", localUser); saveErr != nil {
			return fmt.Errorf("bootstrap local session: %w", saveErr)
		}
		session = models.Session{User: localUser}
		a.logger.Info().Msg("no persisted session, running in local-only mode")
	}

	notes, err := a.services.NoteService.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh note cache: %w", err)
	}
	a.printNotes(session.User, notes)

	background := workers.NewWorkers(workers.WorkerFunc(func() {
		a.services.RefreshJob.Start(ctx, a.workersCfg.RefreshInterval)
	}))
	background.Run()
	defer a.services.RefreshJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down")
	return nil
}

func (a *App) printNotes(user models.User, notes []models.Note) {
	fmt.Fprintf(os.Stdout, "%s: %d note(s)\n", user.Name, len(notes))
	for _, note := range notes {
		fmt.Fprintf(os.Stdout, "  [%s] %s (%s)\n", note.ID, note.Title, note.CreatedAt)
	}
}
