package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/get"
)

func addHistory(topLevel *cobra.Command) {
	table := false
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the last 90 days of entries as a timeline.",
		Example: `
moodlog history
moodlog history --table
moodlog history --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := get.Get{History: e.History, Table: table, JSON: po.JSON}
			return po.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "Also print a date/emotion table.")
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
