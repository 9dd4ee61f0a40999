package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newAccountCommand covers account administration outside of sync
// documents. Accounts are created and changed through sync.
func newAccountCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := env.services.AccountService.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tADMIN\tGRANTS")
			for _, account := range accounts {
				fmt.Fprintf(tw, "%d\t%s\t%t\t%d\n", account.ID, account.Username, account.IsAdmin, len(account.Permissions))
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "delete [username]",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.services.AccountService.DeleteAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, remove)
	return cmd
}
