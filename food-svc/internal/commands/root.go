package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "food-svc",
	Short: "Food ordering backend",
	Long: `food-svc serves the food ordering API: signup and login, restaurant
and menu listing, order placement and per-user order history.

Configuration is read from the environment (DATABASE_URL or DB_*, REDIS_HOST,
KAFKA_BROKER, JWT_SECRET, ...).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
