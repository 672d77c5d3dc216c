package cli

import (
	"github.com/hcbtrack/hcb/pkg/client"
	"github.com/hcbtrack/hcb/pkg/hcb"
	"github.com/spf13/cobra"
)

// StatusOutput is the JSON shape of `hcb status`.
type StatusOutput struct {
	Account *hcb.AccountResponse  `json:"account"`
	Stops   []client.StudentStops `json:"stops"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show every student's stops for every time of day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		school, account, err := login(ctx, c)
		if err != nil {
			return err
		}

		all, err := c.GetAllStops(ctx, school, account)
		if err != nil {
			return err
		}
		return printResult(StatusOutput{Account: account, Stops: all}, func() { printAllStops(all) })
	},
}

func init() {
	addAccountFlags(statusCmd)
	rootCmd.AddCommand(statusCmd)
}
