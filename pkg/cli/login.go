package cli

import (
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and show the account, students and times of day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, account, err := login(cmd.Context(), newClient())
		if err != nil {
			return err
		}
		return printResult(account, func() { printAccount(account) })
	},
}

func init() {
	addAccountFlags(loginCmd)
	rootCmd.AddCommand(loginCmd)
}
