package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/record"
)

func addRecord(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a voice memo and submit it for analysis.",
		Example: `
moodlog record
moodlog record --on="2026-02-28"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			on, err := eo.GetOn()
			if err != nil {
				return err
			}
			s := record.Record{
				Recorder: capture.ExecRecorder{},
				On:       on,
				Client:   e.Client,
				History:  e.History,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
