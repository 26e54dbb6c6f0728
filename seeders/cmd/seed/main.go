package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fiber-service/internal/repositories"
	"fiber-service/pkg/config"
	"fiber-service/pkg/database/postgresql"
	"fiber-service/pkg/logger"
	"fiber-service/seeders"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.New()
	var dsn string

	rootCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Миграции и наполнение справочников БД",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", cfg.Postgres.DSN, "строка подключения к PostgreSQL")

	migrate := func(ctx context.Context, log *zap.Logger) error {
		return withPool(ctx, dsn, func(store *repositories.Store, migrateFn func() error) error {
			log.Info("▶️  Применение миграций...")
			if err := migrateFn(); err != nil {
				return err
			}
			log.Info("✅ Миграции применены")
			return nil
		})
	}
	seed := func(ctx context.Context, log *zap.Logger) error {
		return withPool(ctx, dsn, func(store *repositories.Store, _ func() error) error {
			return seeders.SeedDefaults(ctx, store, log)
		})
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Применить миграции goose",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(cmd.Context(), logger.NewLogger(cfg.Log))
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Наполнить пустые справочники данными по умолчанию",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return seed(cmd.Context(), logger.NewLogger(cfg.Log))
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Миграции, затем наполнение",
			RunE: func(cmd *cobra.Command, _ []string) error {
				log := logger.NewLogger(cfg.Log)
				if err := migrate(cmd.Context(), log); err != nil {
					return err
				}
				return seed(cmd.Context(), log)
			},
		},
	)
	return rootCmd
}

func withPool(ctx context.Context, dsn string, fn func(store *repositories.Store, migrate func() error) error) error {
	pool, err := postgresql.ConnectDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(repositories.NewPostgresStore(pool), func() error { return postgresql.Migrate(pool) })
}
