package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"photoshare/internal/logging"
	"photoshare/internal/telemetry"
	"photoshare/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// DirEnv sets the upload picker's starting directory when --dir is not given.
const DirEnv = "PHOTOSHARE_DIR"

// config holds the parsed CLI configuration for a session.
type config struct {
	dir     string
	logPath string
	verbose bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.dir, "dir", os.Getenv(DirEnv), "directory the upload file picker opens in (env "+DirEnv+")")
	flag.StringVar(&cfg.logPath, "log", os.Getenv(logging.FileEnv), "write JSON logs to this file (env "+logging.FileEnv+")")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log debug events")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: photoshare [flags]\n\n")
		fmt.Fprintf(os.Stderr, "photoshare is a terminal photo gallery: upload images, browse them,\n")
		fmt.Fprintf(os.Stderr, "and comment on them. Nothing is kept after you quit.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.dir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.dir = wd
		}
	}
	return cfg
}

func run(cfg config) error {
	info, err := os.Stat(cfg.dir)
	if err != nil {
		return fmt.Errorf("dir %q: %w", cfg.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dir %q is not a directory", cfg.dir)
	}

	log, closeLog, err := logging.New(cfg.logPath, cfg.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tracer, err := telemetry.New(ctx)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
		tracer = telemetry.Nop()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("flush spans")
		}
	}()

	log.WithField("dir", cfg.dir).WithField("tracing", tracer.Enabled()).Info("session started")

	model := ui.NewAppModel(ui.Config{
		StartDir: cfg.dir,
		Log:      log,
		Tracer:   tracer,
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info("session ended")
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "photoshare: %v\n", err)
		os.Exit(1)
	}
}
