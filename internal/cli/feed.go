package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heritagepulse/pulse/internal/engine"
)

var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the personalized feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		feed, err := engine.PersonalizedFeed(db, engine.NewActivityStore(db))
		if err != nil {
			return err
		}
		if feedLimit > 0 && len(feed) > feedLimit {
			feed = feed[:feedLimit]
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SCORE\tCATEGORY\tTITLE")
		for _, a := range feed {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", a.Score, a.Category, a.Title)
		}
		return tw.Flush()
	},
}

func init() {
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 0, "Maximum number of articles (0 = all)")
}
