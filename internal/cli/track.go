package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heritagepulse/pulse/internal/engine"
)

var trackCmd = &cobra.Command{
	Use:   "track <category> <action>",
	Short: "Record an engagement event (VIEW, BOOKMARK, LIKE, SHARE)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		category := args[0]
		action := engine.Action(strings.ToUpper(args[1]))

		activity := engine.NewActivityStore(db)
		tracker := engine.NewTracker(activity, 1)
		defer tracker.Close()

		if err := tracker.Record(category, action); err != nil {
			return err
		}
		fmt.Printf("%s +%d -> %d\n", strings.ToLower(category), action.Weight(), activity.Scores()[strings.ToLower(category)])
		return nil
	},
}
