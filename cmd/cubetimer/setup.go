package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jask/cubetimer/internal/config"
	"github.com/jask/cubetimer/internal/database"
	"github.com/jask/cubetimer/internal/database/repository"
	"github.com/jask/cubetimer/internal/scramble"
	"github.com/jask/cubetimer/internal/service"
)

// env is what every command needs once config and storage are up.
type env struct {
	cfg    config.Config
	db     *sql.DB
	logger *slog.Logger
	closer func()
}

func (e *env) Close() {
	_ = e.db.Close()
	if e.closer != nil {
		e.closer()
	}
}

// setup loads config, opens the log and migrates the database. logTo nil
// means the configured log file.
func setup(ctx context.Context, f flags, logTo io.Writer) (*env, error) {
	cfg, err := config.LoadFile(f.Config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	e := &env{cfg: cfg}
	if logTo == nil {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		lf, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		logTo = lf
		e.closer = func() { _ = lf.Close() }
	}
	e.logger = newLogger(logTo, cfg.Log.Level, f.Debug, logTo != os.Stderr)
	slog.SetDefault(e.logger)

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db

	if err := database.SeedDefaults(ctx, db, cfg.Timer.Puzzle, cfg.Timer.ScrambleLength); err != nil {
		e.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	e.logger.Debug("storage ready", "db", cfg.Database.Path)
	return e, nil
}

func newLogger(w io.Writer, level string, debug, noColor bool) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}

func (e *env) sessions() *service.SessionService {
	return &service.SessionService{
		Sessions:      repository.NewSessionRepo(e.db),
		Solves:        repository.NewSolveRepo(e.db),
		Generator:     scramble.NewGenerator(nil),
		Logger:        e.logger,
		DefaultPuzzle: e.cfg.Timer.Puzzle,
		DefaultLength: e.cfg.Timer.ScrambleLength,
	}
}
