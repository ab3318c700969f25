package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := logout.Logout{Session: e.Session}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show whether a session token is held.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if e.Session.Authenticated() {
				cmd.Println("authenticated (token on disk)")
			} else {
				cmd.Println("not logged in")
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
