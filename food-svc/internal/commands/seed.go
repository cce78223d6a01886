package commands

import (
	"context"
	"log"

	"foodapp/food-svc/internal/service"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the sample catalog",
	Long: `Insert the sample restaurants and foods when the catalog is empty.
An existing catalog is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	ctx = contextOrBackground(ctx)

	repo, closeDB, err := openRepository()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	seeded, err := service.NewCatalogService(repo, nil, nil).Seed(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		log.Println("[food-svc] catalog already populated, nothing to do")
	}
	return nil
}
