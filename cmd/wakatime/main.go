package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/wakatime/internal/cli"
	"github.com/alexanderramin/wakatime/internal/config"
	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/log"
	"github.com/alexanderramin/wakatime/internal/service"
	"github.com/alexanderramin/wakatime/internal/wakatime"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory may set WAKATIME_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logCfg := log.DefaultConfig()
	logCfg.Level = level
	logger := log.New(logCfg)
	logger.WithComponent(log.ComponentConfig).Debug("config loaded",
		log.FieldPath, config.DefaultPath(),
		log.FieldEndpoint, cfg.APIURL,
		log.FieldTimeout, cfg.TimeoutMs,
	)

	// Wire the API client and key store
	client := wakatime.NewClient(
		wakatime.ClientConfig{BaseURL: cfg.APIURL, Timeout: cfg.Timeout()},
		wakatime.NewLogObserver(logger, cfg.LogCalls),
	)
	keys := keystore.NewFileStore(cfg.KeyFile)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	app := &cli.App{
		Summary: service.NewSummaryService(client, keys, observer),
		Account: service.NewAccountService(client, keys, observer),
		Keys:    service.NewKeyService(keys, observer),
		Version: version,
	}

	// Detect interactive terminal for the API key prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithComponent(log.ComponentCLI).Debug("starting", log.FieldPath, cfg.KeyFile)
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
