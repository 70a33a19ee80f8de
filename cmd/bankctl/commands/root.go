package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bankctl/internal/app"
	"bankctl/internal/domain"
)

var (
	apiURL string
	home   string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bankctl",
		Short: "Command-line client for the demo banking service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIBaseURL = apiURL
			}
			if home != "" {
				cfg.Home = home
			}

			wire, err = app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire.Logger.Debug("client wired", "api", cfg.APIBaseURL, "home", cfg.Home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (default $BANK_API_URL)")
	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.bankctl)")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		accountsCmd(), transactionsCmd(), transferCmd(), exchangeCmd(),
	)
	return root.Execute()
}

// sessionToken restores the session and returns the verified access token,
// or an error when nobody is signed in.
func sessionToken(ctx context.Context) (string, error) {
	if err := wire.Session.Refresh(ctx); err != nil {
		return "", err
	}
	snap := wire.Session.Snapshot()
	if snap.State != domain.SessionAuthenticated {
		return "", fmt.Errorf("not logged in. run 'bankctl login' first")
	}
	return snap.Token, nil
}
