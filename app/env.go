package app

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/solosprint/sprint/assistant"
	"github.com/solosprint/sprint/internal/config"
	"github.com/solosprint/sprint/internal/logger"
	"github.com/solosprint/sprint/internal/pathutil"
	"github.com/solosprint/sprint/internal/ui"
	"github.com/solosprint/sprint/planner"
	"github.com/solosprint/sprint/store"
)

// env holds what a command needs: settings, a logger and, once opened, the
// database.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *store.Client
	closers []io.Closer
}

// load reads the configuration and sets up logging.
func load(ctx *cli.Context) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	// already validated
	level, _ := cfg.Level()

	l, closer := logger.New(pathutil.LogFilePath(), level)
	slog.SetDefault(l)

	logger.Dump(l, "loaded config", redact(cfg))

	ui.DarkTheme = cfg.Display.DarkTheme

	return &env{
		cfg:     cfg,
		logger:  l,
		closers: []io.Closer{closer},
	}, nil
}

// open loads the configuration and opens the database.
func open(ctx *cli.Context) (*env, error) {
	e, err := load(ctx)
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		e.Close()
		return nil, err
	}

	e.db = db
	e.closers = append(e.closers, db)

	return e, nil
}

// Close releases the database and the log file in reverse order.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

func (e *env) llm() *assistant.Client {
	a := e.cfg.Assistant

	return assistant.NewClient(a.APIKey, a.BaseURL, a.Model, a.Timeout)
}

func (e *env) planner() *planner.Planner {
	llm := e.llm()

	return planner.New(
		e.db,
		assistant.NewDecomposer(llm, e.logger),
		assistant.NewDiscoverer(llm, e.logger),
		e.logger,
	)
}

func (e *env) reflector() *assistant.Reflector {
	return assistant.NewReflector(e.llm(), e.logger)
}

// redact returns a copy of cfg that is safe to log.
func redact(cfg *config.Config) config.Config {
	c := *cfg
	if c.Assistant.APIKey != "" {
		c.Assistant.APIKey = "[redacted]"
	}

	return c
}
