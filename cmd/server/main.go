package main

import (
	"chat-core/internal"
	"chat-core/moderation"
	"chat-core/projection"
	"chat-core/repositories"
	"chat-core/runtime"
	"chat-core/runtime/workers"
	"chat-core/search"
	"chat-core/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the coordinator lifecycle,
// and centralizes error reporting. The pattern keeps every defer
// (database cleanup included) on the path out of the process.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation
	words, err := moderation.DefaultWords()
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to load censored words: %w", err)
	}
	logger.Info(fmt.Sprintf("%d unique censored words loaded", len(words)))
	moderator, err := moderation.NewModerator(words, charReplacement)
	if err != nil {
		return exitRuntime, err
	}

	// 4. Repositories & Services
	messageRepository := repositories.NewMessageRepository(db, logger, config.PageSize)
	defer func() { _ = messageRepository.Close() }()

	chats := services.NewChatRegistry(repositories.NewChatRepository(db))
	messages := services.NewMessageStore(messageRepository, chats, moderator, logger)
	deliveries := services.NewDeliveryTracker(repositories.NewStatusRepository(db, logger), logger)
	typing := services.NewTypingTracker(repositories.NewTypingRepository(db), chats, config.TypingWindow)

	// 5. Supervision & Coordination
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	registry := runtime.NewRegistry()
	index := search.NewIndex(blugeWriter, logger)

	coordinator := runtime.NewCoordinator(
		logger, chats, messages, deliveries, typing,
		index, supervisor, registry,
		config.BufferSize, config.SinkTimeout, config.MetricInterval,
	)
	coordinator.Add(projection.NewTimeline())

	// 6. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting coordinator...")
		if err := coordinator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("coordinator error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	coordinator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
