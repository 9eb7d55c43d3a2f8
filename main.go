package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/meghashyamc/candletimer/config"
	"github.com/meghashyamc/candletimer/game"
	"github.com/meghashyamc/candletimer/logger"
	"github.com/meghashyamc/candletimer/terminal"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(flags)
	flags.Parse(os.Args[1:])

	cfg, err := config.Load("", flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := logger.SetLevel(cfg.GetLogLevel()); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		os.Exit(1)
	}

	frontend, err := cfg.GetFrontend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		os.Exit(1)
	}

	switch frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg)
	default:
		err = runWindow(cfg)
	}
	if err != nil {
		slog.Error("error running candle timer", "frontend", frontend, "err", err)
		os.Exit(1)
	}
}

func runWindow(cfg *config.Config) error {
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}
	return g.Run()
}

// runTerminal sends logs to a file because the terminal screen owns stderr.
func runTerminal(cfg *config.Config) error {
	logFile, err := os.OpenFile(cfg.GetLogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := terminal.New(cfg, logger.New())
	if err != nil {
		return err
	}
	return f.Run(ctx)
}
