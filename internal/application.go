package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)

	go watchSignals(ctx, log, sigs, cancel)

	gameManager := usecase.NewGameManager(logger, entity.NewGame())
	view := tui.New(logger, gameManager, conf.UI.MouseEnabled())

	var opts []tea.ProgramOption
	if !conf.UI.Inline {
		opts = append(opts, tea.WithAltScreen())
	}
	if conf.UI.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("Starting game", "inline", conf.UI.Inline, "mouse", conf.UI.MouseEnabled())

	return runProgram(ctx, logger, tea.NewProgram(view, opts...))
}

// watchSignals cancels the application context on the first signal.
func watchSignals(ctx context.Context, log *slog.Logger, sigs <-chan os.Signal, cancel context.CancelFunc) {
	select {
	case sig := <-sigs:
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	case <-ctx.Done():
	}
}

// runProgram runs the program until it quits on its own or ctx is done.
func runProgram(ctx context.Context, logger *slog.Logger, program *tea.Program) error {
	log := logger.With("component", "app")

	group, groupCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	group.Go(func() error {
		defer close(done)

		if _, err := program.Run(); err != nil {
			return fmt.Errorf("program run failed: %w", err)
		}

		log.Info("Game closed")

		return nil
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			log.Info("Application context canceled, shutting down")
			program.Quit()
		case <-done:
		}

		return nil
	})

	return group.Wait()
}
