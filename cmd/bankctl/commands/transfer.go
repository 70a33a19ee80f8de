package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bankctl/internal/domain"
	"bankctl/internal/money"
)

func transferCmd() *cobra.Command {
	var to, currency, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send money to another user",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Amount validation happens before any network call.
			cents, err := money.ToMinorUnits(amount)
			if err != nil {
				return err
			}
			cur := domain.Currency(strings.ToUpper(currency))
			if !cur.Valid() {
				return fmt.Errorf("unknown currency %q (want USD or EUR)", currency)
			}

			token, err := sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			tx, err := wire.API.Transfer(cmd.Context(), token, domain.TransferInput{
				ToUserEmail: to,
				Currency:    cur,
				AmountCents: cents,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Sent %s %s to %s (transaction %s)\n",
				tx.Currency, money.FromMinorUnits(tx.AmountCents), to, tx.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient email")
	cmd.Flags().StringVar(&currency, "currency", "", "currency (USD|EUR)")
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount, e.g. 10.50")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("currency")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
