package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/config"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/repository"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/service"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-webapi/transport/rest"
	"github.com/rocketscienceinc/tictactoe-webapi/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	catalog, err := i18n.NewCatalog(conf.Language)
	if err != nil {
		return fmt.Errorf("could not load messages: %w", err)
	}

	ledger, closeLedger, err := newLedger(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeLedger(); err != nil {
			log.Error("could not close ledger storage", "error", err)
		}
	}()

	gameUseCase, err := newGameUseCase(ctx, logger, ledger, catalog)
	if err != nil {
		return err
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameUseCase).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newLedger - picks the move ledger backend from config. The returned func releases its storage.
func newLedger(ctx context.Context, conf *config.Config) (repository.MoveLedger, func() error, error) {
	switch conf.Ledger.Driver {
	case config.LedgerDriverMemory:
		return repository.NewMemoryLedger(), func() error { return nil }, nil
	case config.LedgerDriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisLedger(redisStorage, conf.Redis.LedgerKey), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownLedgerDriver, conf.Ledger.Driver)
	}
}

// newGameUseCase - wires the game and clears whatever a previous process left in the ledger.
func newGameUseCase(ctx context.Context, logger *slog.Logger, ledger repository.MoveLedger, catalog *i18n.Catalog) (usecase.GameUseCase, error) {
	game := tictactoe.NewGame()
	validator := service.NewValidationService(game, game, catalog)
	gameUseCase := usecase.NewGameUseCase(logger, ledger, game, validator, catalog)

	if _, err := gameUseCase.Reset(ctx); err != nil {
		return nil, fmt.Errorf("could not reset game: %w", err)
	}

	return gameUseCase, nil
}
