package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heritagepulse/pulse/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Personalized culture and heritage content service",
	Long:  "Pulse serves a culture/heritage article catalog ranked by each reader's interests and engagement. Single Go binary, local SQLite state.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(trackCmd)
}

// openDB is a helper that opens the database for CLI commands.
func openDB() (*store.DB, error) {
	dbPath := os.Getenv("PULSE_DB")
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(dbPath)
}
