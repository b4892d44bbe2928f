package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lepinkainen/smarterboxd/internal/config"
)

const (
	appName        = "smarterboxd"
	appDescription = "Browse, rank and pick from a Letterboxd watchlist export, enriched with TMDB posters, plots and directors."
)

// newApp is swapped in tests to run commands against fakes.
var newApp = buildApp

// CLI represents the complete command structure for the smarterboxd application
type CLI struct {
	// Global flags
	CSV      string `short:"f" help:"Path to the Letterboxd watchlist CSV export (defaults to watchlist.csvfile)"`
	DB       string `help:"Path to the state database holding rankings and deletions (defaults to state.dbfile)"`
	LogLevel string `help:"Log level: debug, info, warn or error (defaults to log.level)"`

	List    ListCmd    `cmd:"" help:"List the watchlist"`
	Show    ShowCmd    `cmd:"" help:"Show the details of one movie"`
	Pick    PickCmd    `cmd:"" help:"Pick a random movie to watch"`
	Rank    RankCmd    `cmd:"" help:"Manage the ranked list"`
	Delete  DeleteCmd  `cmd:"" help:"Hide movies from the watchlist"`
	Restore RestoreCmd `cmd:"" help:"Bring back a deleted movie"`
	Export  ExportCmd  `cmd:"" help:"Export the watchlist with enrichment as JSON or YAML"`
	Browse  BrowseCmd  `cmd:"" help:"Browse the watchlist interactively"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo, "")
	initConfig()

	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
	)

	if err := run(kctx, &cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context, cli *CLI) error {
	updateGlobalConfig(cli)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogging(parseLogLevel(cfg.LogLevel), cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			slog.Warn("Failed to close state database", "error", closeErr)
		}
	}()

	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(app)
}

func initConfig() {
	initConfigIn(".")
}

// initConfigIn loads config.yaml from dir, writing a defaults-only file there when none exists.
func initConfigIn(dir string) {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("Failed to load .env file", "error", err)
	}
	if err := config.SetDefaults(viper.GetViper()); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file")
			if err := config.WriteDefaultConfig(filepath.Join(dir, "config.yaml")); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}
}

// updateGlobalConfig lets explicit flags win over config file and environment values.
func updateGlobalConfig(cli *CLI) {
	if cli.CSV != "" {
		viper.Set(config.KeyWatchlistCSV, cli.CSV)
	}
	if cli.DB != "" {
		viper.Set(config.KeyStateDB, cli.DB)
	}
	if cli.LogLevel != "" {
		viper.Set(config.KeyLogLevel, cli.LogLevel)
	}
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogging(level slog.Level, logFile string) {
	handler := humanlog.NewHandler(logWriter(logFile), &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// logWriter returns stderr, teed into a rotated file when logFile is set.
func logWriter(logFile string) io.Writer {
	if logFile == "" {
		return os.Stderr
	}
	return io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}
