package main

import (
	"context"
	"fmt"

	"github.com/metalagman/taskstack/internal/config"
	"github.com/metalagman/taskstack/internal/db"
	"github.com/metalagman/taskstack/internal/shell"
	"github.com/metalagman/taskstack/internal/task"
	"github.com/metalagman/taskstack/internal/tracker"
	"github.com/metalagman/taskstack/internal/urgent"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

func newBackend(lc fx.Lifecycle, cfg config.Config) (task.Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		database, err := db.Open(db.MemoryDSN)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return database.Close() },
		})
		return task.NewSQLStore(database), nil
	case config.DriverMemory, "":
		return task.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newTracker(backend task.Backend, stack *urgent.Stack, cfg config.Config) *tracker.Tracker {
	return tracker.New(backend, stack, tracker.WithDuplicatePolicy(cfg.Urgent.Duplicates))
}

func newSession(tr *tracker.Tracker, cfg config.Config, opts shell.Options) *shell.Session {
	opts.TableFormat = cfg.Render.Table
	opts.TableStyle = cfg.Render.Style
	return shell.NewSession(tr, opts)
}

// withSession builds the object graph for one process run, hands the menu
// session to fn and tears everything down afterwards.
func withSession(ctx context.Context, cfg config.Config, opts shell.Options, fn func(*shell.Session) error) error {
	var session *shell.Session
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, opts),
		fx.Provide(newBackend, urgent.New, newTracker, newSession),
		fx.Populate(&session),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("stop app")
		}
	}()
	log.Debug().Str("driver", cfg.Store.Driver).Str("duplicates", string(cfg.Urgent.Duplicates)).Msg("tracker ready")
	return fn(session)
}
