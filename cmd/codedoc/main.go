package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/codedoc/internal/config"
	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"codedoc.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output      string `short:"o" help:"Output directory override"`
		Incremental bool   `short:"i" help:"Skip writing units whose content is unchanged"`
		Check       bool   `help:"Verify generated links after rendering"`
	} `cmd:"" help:"Generate documentation from parser records"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write a starter configuration file"`

	Watch struct {
		Addr      string `help:"Preview server address override"`
		NoPreview bool   `help:"Disable the preview server"`
	} `cmd:"" help:"Regenerate on change, serving a local preview"`

	Verify struct{} `cmd:"" help:"Check cross-links in the rendered output"`
}

func main() {
	kctx := kong.Parse(&CLI)

	setupLogging("info")
	if CLI.Verbose {
		setupLogging("debug")
	}

	buildID := uuid.NewString()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch kctx.Command() {
	case "generate":
		err = withConfig(func(cfg *config.Config) error {
			if CLI.Generate.Output != "" {
				cfg.Output.Dir = CLI.Generate.Output
			}
			logger := slog.Default().With(logfields.BuildID(buildID))
			return runGenerate(ctx, cfg, logger, CLI.Generate.Incremental, CLI.Generate.Check)
		})
	case "init":
		err = runInit(CLI.Config, CLI.Init.Force)
	case "watch":
		err = withConfig(func(cfg *config.Config) error {
			if CLI.Watch.Addr != "" {
				cfg.Preview.Addr = CLI.Watch.Addr
			}
			logger := slog.Default().With(logfields.BuildID(buildID))
			return runWatch(ctx, cfg, logger, !CLI.Watch.NoPreview)
		})
	case "verify":
		err = withConfig(func(cfg *config.Config) error {
			logger := slog.Default().With(logfields.BuildID(buildID))
			return runVerify(ctx, cfg, logger)
		})
	default:
		kctx.FatalIfErrorf(kctx.Error)
	}

	if err != nil {
		adapter := cderrors.NewCLIErrorAdapter(CLI.Verbose, slog.Default())
		adapter.Report(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}

// withConfig loads the configuration and applies its log level unless
// --verbose already forced debug.
func withConfig(fn func(*config.Config) error) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if !CLI.Verbose {
		setupLogging(cfg.Logging.Level)
	}
	return fn(cfg)
}

func setupLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
