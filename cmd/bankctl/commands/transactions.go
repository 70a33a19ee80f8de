package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankctl/internal/domain"
	"bankctl/internal/money"
)

func transactionsCmd() *cobra.Command {
	var (
		txType string
		page   int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.TransactionFilter{
				Type:  domain.TransactionType(txType),
				Page:  page,
				Limit: limit,
			}
			if filter.Type != "" && !filter.Type.Valid() {
				return fmt.Errorf("unknown transaction type %q (want transfer or exchange)", txType)
			}

			token, err := sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			transactions, err := wire.API.Transactions(cmd.Context(), token, filter)
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}
			for _, tx := range transactions {
				line := fmt.Sprintf("%s  %-8s  %s %s",
					tx.CreatedAt.Format("2006-01-02 15:04"),
					tx.Type,
					tx.Currency,
					money.FromMinorUnits(tx.AmountCents),
				)
				if tx.ConvertedAmountCents != nil && tx.ExchangeRate != nil {
					line += fmt.Sprintf("  -> %s (rate %.4f)",
						money.FromMinorUnits(*tx.ConvertedAmountCents), *tx.ExchangeRate)
				}
				if tx.Description != "" {
					line += "  " + tx.Description
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&txType, "type", "", "filter by type (transfer|exchange)")
	cmd.Flags().IntVar(&page, "page", 0, "page number (backend default: 1)")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (backend default: 50)")
	return cmd
}
