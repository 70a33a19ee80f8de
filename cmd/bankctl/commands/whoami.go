package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankctl/internal/domain"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Session.Refresh(cmd.Context()); err != nil {
				return err
			}
			snap := wire.Session.Snapshot()
			if snap.State != domain.SessionAuthenticated {
				fmt.Println("Not logged in.")
				return nil
			}
			u := snap.User
			fmt.Printf("%s <%s>\nid: %s\nmember since: %s\n",
				u.FullName(), u.Email, u.ID, u.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}
