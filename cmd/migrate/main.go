package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/invoicing/backend/internal/infrastructure/config"
	"github.com/invoicing/backend/internal/infrastructure/logger"
	"github.com/invoicing/backend/internal/infrastructure/migration"
)

const defaultMigrationsPath = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}
	migrationsPath = absPath

	// create and list work without a database connection
	switch command {
	case "create":
		if len(args) < 2 {
			log.Fatal("Migration name required. Usage: migrate create <name>")
		}
		mf, err := migration.CreateMigration(migrationsPath, args[1])
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return
	case "list":
		migrations, err := migration.ListMigrations(migrationsPath)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		for _, m := range migrations {
			fmt.Println(m)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	migrator, err := migration.New(db, migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	if err := run(migrator, command, args[1:], log); err != nil {
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

func run(migrator *migration.Migrator, command string, args []string, log *zap.Logger) error {
	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "steps":
		if len(args) < 1 {
			return fmt.Errorf("steps requires a count, e.g. migrate steps -1")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step count %q: %w", args[0], err)
		}
		return migrator.Steps(n)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return nil
	case "force":
		if len(args) < 1 {
			return fmt.Errorf("force requires a version, e.g. migrate force 1")
		}
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		return migrator.Force(version)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command> [args]

Commands:
  up              Apply all pending migrations
  down            Roll back all migrations
  steps <n>       Apply n migrations (negative rolls back)
  version         Print the current migration version
  force <v>       Set the version without running migrations
  create <name>   Create a new up/down migration pair
  list            List available migrations

Flags:
  -path <dir>        Migrations directory (default: ./migrations)
  -log-level <lvl>   Log level (default: info)`)
}
