package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in article catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Seed()
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("catalog already seeded")
			return nil
		}
		fmt.Printf("seeded %d articles\n", n)
		return nil
	},
}
