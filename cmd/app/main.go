package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctrack/cmd"
	httpin "doctrack/internal/adapters/in/http"
	"doctrack/internal/adapters/out/postgres"
	"doctrack/internal/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "doctrack",
		Short:         "Export invoice and shipping document tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withApp(ctx, true, func(cfg cmd.Config, log *zap.Logger, app *cmd.CompositionRoot) error {
				jobManager := app.CreateJobManager()
				if err := jobManager.StartAll(); err != nil {
					return err
				}
				defer jobManager.StopAll()

				e := httpin.NewEcho(app.CreateHTTPServer(), log)
				errCh := make(chan error, 1)
				go func() {
					log.Info("HTTP server listening", zap.String("port", cfg.HTTPPort))
					if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
						errCh <- err
					}
					close(errCh)
				}()

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
				}

				log.Info("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return e.Shutdown(shutdownCtx)
			})
		},
	}
}

func migrateCmd() *cobra.Command {
	cmdMigrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database schema migrations",
	}

	run := func(apply func(m *postgres.Migrator) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := sql.Open("postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			migrator, err := postgres.NewMigrator(db, log.Named("migrate"))
			if err != nil {
				return err
			}
			defer func() { _ = migrator.Close() }()

			if err = apply(migrator); err != nil {
				return err
			}
			version, dirty, err := migrator.Version()
			if err != nil {
				return err
			}
			log.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
			return nil
		}
	}

	cmdMigrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  run((*postgres.Migrator).Up),
	})
	cmdMigrate.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert every migration",
		Args:  cobra.NoArgs,
		RunE:  run((*postgres.Migrator).Down),
	})

	return cmdMigrate
}

func importCmd() *cobra.Command {
	cmdImport := &cobra.Command{
		Use:   "import",
		Short: "Bulk-create reference data from CSV files",
	}

	cmdImport.AddCommand(&cobra.Command{
		Use:   "transporters [file.csv]",
		Short: "Import transporters (columns: name, email, phone)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return importFile(c.Context(), args[0], func(ctx context.Context, f *os.File, log *zap.Logger, app *cmd.CompositionRoot) (int, error) {
				return cmd.ImportTransporters(ctx, f, app.CreateCreateTransporterCommandHandler(), log)
			})
		},
	})
	cmdImport.AddCommand(&cobra.Command{
		Use:   "agents [file.csv]",
		Short: "Import clearing agents (columns: name, email, border_post)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return importFile(c.Context(), args[0], func(ctx context.Context, f *os.File, log *zap.Logger, app *cmd.CompositionRoot) (int, error) {
				return cmd.ImportAgents(ctx, f, app.CreateCreateAgentCommandHandler(), log)
			})
		},
	})

	return cmdImport
}

type importFunc func(ctx context.Context, f *os.File, log *zap.Logger, app *cmd.CompositionRoot) (int, error)

func importFile(ctx context.Context, path string, run importFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return withApp(ctx, false, func(_ cmd.Config, log *zap.Logger, app *cmd.CompositionRoot) error {
		n, err := run(ctx, f, log, app)
		log.Info("Import finished", zap.String("file", path), zap.Int("imported", n))
		return err
	})
}

// withApp loads configuration, connects the database and, when adapters is
// set, the outbound collaborators, then hands a composition root to run.
func withApp(ctx context.Context, adapters bool, run func(cmd.Config, *zap.Logger, *cmd.CompositionRoot) error) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var outbound cmd.Adapters
	if adapters {
		var cleanup func()
		outbound, cleanup, err = cmd.NewAdapters(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	app := cmd.NewCompositionRoot(cfg, log, gormDB, outbound)
	return run(cfg, log, &app)
}

func bootstrap() (cmd.Config, *zap.Logger, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, err
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
	if err != nil {
		return cmd.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}
