package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dutch/internal/client/config"
	"github.com/spf13/cobra"
)

// Execute runs the dutch command tree.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// appFactory builds the App for a command. Tests replace it.
var appFactory = NewApp

type rootState struct {
	flags config.Flags
	app   *App
}

func (s *rootState) open(cmd *cobra.Command) error {
	cfg, err := config.Load(s.flags.ConfigFile)
	if err != nil {
		return err
	}
	s.flags.Apply(cmd.Flags(), cfg)

	app, err := appFactory(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	s.app = app
	return nil
}

func (s *rootState) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.Current().User; u != nil && u.Name != "" {
		s = u.Name + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func newRootCmd() *cobra.Command {
	state := &rootState{}

	root := &cobra.Command{
		Use:           "dutch",
		Short:         "Dutch client: shared expenses from the terminal",
		Long:          "dutch talks to the Dutch GraphQL API, keeps your session and the currency list in a local SQLite store, and works from cached data when the server is unreachable.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return state.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.app.Run(cmd.Context())
		},
	}
	state.flags.Bind(root.PersistentFlags())

	root.AddCommand(
		oneShot(state, "sync", "Fetch the currency list from the server", func(ctx context.Context, a *App) error {
			return a.Sync(ctx)
		}),
		oneShot(state, "currencies", "List cached currencies", func(ctx context.Context, a *App) error {
			if err := a.cache.LoadFromLocalStore(ctx); err != nil {
				a.log.Warn(ctx, "currencies not loaded from local store", "error", err)
			}
			return a.Currencies(ctx)
		}),
		oneShot(state, "guess", "Guess the default currency from timezone and locale", func(ctx context.Context, a *App) error {
			return a.Guess(ctx)
		}),
		oneShot(state, "logout", "End the session and clear cached data", func(ctx context.Context, a *App) error {
			return a.Logout(ctx)
		}),
		oneShot(state, "whoami", "Show the logged-in user", func(ctx context.Context, a *App) error {
			return a.WhoAmI(ctx)
		}),
	)

	return root
}

func oneShot(state *rootState, use, short string, run func(context.Context, *App) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if state.app == nil {
				return errors.New("app not initialized")
			}
			return run(cmd.Context(), state.app)
		},
	}
}
