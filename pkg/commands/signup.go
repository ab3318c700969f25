package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/signup"
)

func addSignup(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and login.",
		Example: `
moodlog signup -u bob -e b@x.com -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := signup.Signup{
				Username: ao.Username,
				Email:    ao.Email,
				Password: ao.Password,
				Flow:     e.Flow,
			}
			return s.Do(context.Background())
		},
	}

	options.AddAuthArgs(cmd, ao)
	options.AddEmailArg(cmd, ao)

	topLevel.AddCommand(cmd)
}
