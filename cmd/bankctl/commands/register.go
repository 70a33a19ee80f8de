package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankctl/internal/domain"
)

func registerCmd() *cobra.Command {
	var email, password, firstName, lastName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.RegisterInput{
				Email:     email,
				Password:  password,
				FirstName: firstName,
				LastName:  lastName,
			}
			if err := wire.Session.Register(cmd.Context(), in); err != nil {
				return err
			}
			snap := wire.Session.Snapshot()
			fmt.Printf("Registered %s. You are now logged in.\n", snap.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "given name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "family name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	return cmd
}
