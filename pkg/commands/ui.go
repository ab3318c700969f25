package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
moodlog ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return app.Run(app.Deps{
				Session:  e.Session,
				Client:   e.Client,
				Flow:     e.Flow,
				History:  e.History,
				Recorder: capture.ExecRecorder{},
			})
		},
	}

	topLevel.AddCommand(cmd)
}
