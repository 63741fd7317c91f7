package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/ai"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	resultRepo, closeStore, err := newResultRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	bot := service.NewBotService(logger, entity.PlayerO, ai.NewRandomSource(conf.Bot.Seed))
	results := service.NewResultService(resultRepo)

	terminal := console.New(os.Stdin, os.Stdout, conf.ClearScreen)
	matchManager := usecase.NewMatchManager(logger, bot, results, terminal)
	menu := console.NewMenu(logger, terminal, matchManager, results, console.Defaults{
		Rounds:     conf.Match.Rounds,
		WinsNeeded: conf.Match.WinsNeeded,
		Difficulty: conf.BotDifficulty(),
	})

	// the menu blocks on stdin, so it runs aside and a signal does not wait for the next line
	menuErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console menu")
		menuErrCh <- menu.Run(ctx)
	}()

	select {
	case err = <-menuErrCh:
		if err == nil || errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Console closed, shutting down")
			return nil
		}

		return fmt.Errorf("console error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newResultRepository - Redis when enabled, process memory otherwise. The returned func releases the store.
func newResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Using in-memory result store")
		return repository.NewMemoryResultRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Using redis result store", "addr", redisAddrString)

	closeStore := func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage.Connection), closeStore, nil
}
