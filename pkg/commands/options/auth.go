// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions captures the credential flags for login and signup.
type AuthOptions struct {
	Username string
	Email    string
	Password string
}

func AddAuthArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "", "Account username.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "", "Account password.")
}

func AddEmailArg(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "", "Account email (signup only).")
}
