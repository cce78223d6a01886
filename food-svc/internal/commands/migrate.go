package commands

import (
	"context"
	"log"

	"foodapp/config"
	"foodapp/food-svc/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long:  `Create any missing tables and indexes. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context) error {
	repo, closeDB, err := openRepository()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repo.EnsureSchema(contextOrBackground(ctx)); err != nil {
		return err
	}
	log.Println("[food-svc] schema is up to date")
	return nil
}

func openRepository() (*storage.PostgresRepository, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db := config.MustInitPostgres(cfg.DatabaseURL)
	return storage.NewPostgresRepository(db), db.Close, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
