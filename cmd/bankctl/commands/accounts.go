package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankctl/internal/money"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List account balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			accounts, err := wire.API.Accounts(cmd.Context(), token)
			if err != nil {
				return err
			}
			for _, a := range accounts {
				fmt.Printf("%s  %s %s\n", a.ID, a.Currency, money.FromMinorUnits(a.BalanceCents))
			}
			return nil
		},
	}
}
