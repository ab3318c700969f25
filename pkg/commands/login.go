package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the journal backend.",
		Example: `
moodlog login -u alice -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := login.Login{
				Username: ao.Username,
				Password: ao.Password,
				Flow:     e.Flow,
			}
			return s.Do(context.Background())
		},
	}

	options.AddAuthArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
