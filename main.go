package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/logger"
)

var CLI struct {
	Config   string `short:"c" default:"config.yml" help:"Path to the YAML configuration file."`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)."`
	LogFile  string `help:"Log file path (overrides config)."`
	Inline   bool   `help:"Render below the prompt instead of taking over the screen."`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	kong.Parse(&CLI,
		kong.Name("tictactoe"),
		kong.Description("Two players, one keyboard, nine cells."),
	)

	conf := initConfig()

	logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	defer func() { _ = logFile.Close() }()

	log := initLogger(conf, logFile)

	if err = app.RunApp(log, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := CLI.Config
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	conf := config.MustLoad(path)

	if CLI.LogLevel != "" {
		conf.LogLevel = CLI.LogLevel
	}
	if CLI.LogFile != "" {
		conf.LogFile = CLI.LogFile
	}
	if CLI.Inline {
		conf.UI.Inline = true
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config, out *os.File) *slog.Logger {
	return logger.New(conf.LogLevel, conf.LogFormat, out)
}
