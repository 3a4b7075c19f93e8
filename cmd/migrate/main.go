package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"videotube/migrations"
	"videotube/pkg/config"
	"videotube/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

type migration func(ctx context.Context, db *sql.DB, dir string) error

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory for new migration files (create only)")
		command = flag.String("command", "up", "migration command (up, up-to, down, redo, reset, status, version, create)")
		name    = flag.String("name", "", "name for new migration (create only)")
		version = flag.Int64("version", 0, "target version (up-to only)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	commands := map[string]migration{
		"up": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.UpContext(ctx, db, dir)
		},
		"up-to": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.UpToContext(ctx, db, dir, *version)
		},
		"down": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.DownContext(ctx, db, dir)
		},
		"redo": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.RedoContext(ctx, db, dir)
		},
		"reset": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.ResetContext(ctx, db, dir)
		},
		"status": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.StatusContext(ctx, db, dir)
		},
		"version": func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.VersionContext(ctx, db, dir)
		},
	}

	run, known := commands[*command]
	if !known && *command != "create" {
		log.Error("Unknown command: %s", *command)
		os.Exit(2)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if *command == "create" {
		if *name == "" {
			log.Error("Name is required for create command")
			os.Exit(2)
		}
		if err := goose.Create(db, *dir, *name, "sql"); err != nil {
			log.Error("Failed to create migration: %v", err)
			os.Exit(1)
		}
		log.Info("Created migration %s in %s", *name, *dir)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// applied migrations are embedded in the binary
	goose.SetBaseFS(migrations.FS)
	if err := run(ctx, db, "."); err != nil {
		log.Error("Migration command %s failed: %v", *command, err)
		os.Exit(1)
	}
	log.Info("Migration command %s finished", *command)
}
