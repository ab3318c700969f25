package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/auth"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/session"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: base.Wrap80("Mood journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSignup(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addAdd(topLevel)
	addRecord(topLevel)
	addHistory(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// env bundles the client-side collaborators every command wires together.
type env struct {
	Session session.Store
	Client  *api.Client
	Flow    *auth.Flow
	History *history.Store
}

func loadEnv() (*env, error) {
	cfg, err := session.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := session.Load(cfg)
	if err != nil {
		return nil, err
	}
	client := api.New(cfg.ServerURL(), s)
	return &env{
		Session: s,
		Client:  client,
		Flow:    &auth.Flow{Client: client, Session: s},
		History: history.NewStore(client),
	}, nil
}
