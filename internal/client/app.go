package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/service"
	"github.com/MKhiriev/go-pos-client/internal/workers"
)

var ErrMissingDependency = errors.New("client app: missing dependency")

// UI is the interactive front end driven by App.
type UI interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrMissingDependency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.Jobs()...),
		logger:   log,
	}, nil
}

// Run blocks until the UI exits or the process gets a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.services.Close()

	// the first pages load while the UI is already up
	warmUpDone := make(chan struct{})
	go func() {
		defer close(warmUpDone)
		a.services.WarmUp(ctx)
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	cancel()
	<-warmUpDone

	a.logger.Info().Str("func", "App.run").Msg("client stopped")
	return err
}
