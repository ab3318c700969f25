package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/submit"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add <entry text>",
		Short: "Submit a typed journal entry for analysis.",
		Example: `
moodlog add I feel great today
moodlog add --on="2026-02-28" rough day at work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("entry text required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			on, err := eo.GetOn()
			if err != nil {
				return err
			}
			s := submit.Submit{
				Capture: capture.Text(strings.Join(args, " ")),
				On:      on,
				Client:  e.Client,
				History: e.History,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
