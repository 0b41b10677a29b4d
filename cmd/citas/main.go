package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/citas/internal/appointments"
	"github.com/idilsaglam/citas/internal/cli"
	"github.com/idilsaglam/citas/internal/config"
	"github.com/idilsaglam/citas/internal/logging"
	"github.com/idilsaglam/citas/internal/ui"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	// Root flags (apply to every subcommand) override the environment.
	flag.StringVar(&cfg.Storage, "storage", cfg.Storage, "snapshot backend: file, redis, postgres or memory")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the file backend (default: working directory)")
	flag.StringVar(&cfg.StorageKey, "key", cfg.StorageKey, "snapshot key")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	flag.Usage = func() {
		cli.PrintHelp()
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(cfg, flag.Args()))
}

func run(cfg *config.Config, args []string) int {
	ui.SetTheme(cfg.Theme)
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}

	interactive := len(args) == 0 || args[0] == "ui"
	logOut, closeLog, err := logWriter(cfg, interactive)
	if err != nil {
		ui.Fail("log file: " + err.Error())
		return 1
	}
	defer closeLog()
	log := logging.New(cfg.LogLevel, logOut).With("storage", cfg.Storage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := cli.OpenBackend(ctx, cfg)
	if err != nil {
		log.Error("open backend failed", "error", err)
		ui.Fail("storage: " + err.Error())
		return 1
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Warn("close backend", "error", err)
		}
	}()

	return cli.Run(ctx, args, cli.Env{
		Store: appointments.New(kv, cfg.StorageKey),
		Loc:   cfg.Location(),
		Log:   log,
	})
}

// logWriter picks where logs go: the configured file, else stderr for plain
// commands and nowhere for the full-screen UI.
func logWriter(cfg *config.Config, interactive bool) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, func() {}, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if interactive {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
