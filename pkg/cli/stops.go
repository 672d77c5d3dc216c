package cli

import (
	"errors"

	"github.com/hcbtrack/hcb/pkg/hcb"
	"github.com/spf13/cobra"
)

var (
	stopsStudent string
	stopsTime    string
	stopsWhere   string
)

// stopsOutput is the JSON shape of `hcb stops`.
type stopsOutput struct {
	Student   hcb.Student       `json:"student"`
	TimeOfDay hcb.TimeOfDay     `json:"timeOfDay"`
	Stops     *hcb.StopResponse `json:"stops"`
}

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Show the bus location and stops of one student",
	Long: `Show the bus location and stops of one student for one time of day.

--where filters stops with an expression over the stop's fields, e.g.

  hcb stops --student Lisa --time am --where 'StopType == "Pickup"'
  hcb stops --student S-1001 --time pm --where 'ArrivalTime.Hour >= 15'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if stopsStudent == "" {
			return errors.New("--student is required")
		}

		ctx := cmd.Context()
		c := newClient()
		school, account, err := login(ctx, c)
		if err != nil {
			return err
		}
		student, err := findStudent(account, stopsStudent)
		if err != nil {
			return err
		}
		tod, err := findTimeOfDay(account, stopsTime)
		if err != nil {
			return err
		}

		resp, err := c.GetStopInfo(ctx, school, account.AccountID, student.StudentID, tod.ID)
		if err != nil {
			return err
		}
		if resp.StudentStops, err = hcb.FilterStops(resp.StudentStops, stopsWhere); err != nil {
			return err
		}

		out := stopsOutput{Student: student, TimeOfDay: tod, Stops: resp}
		return printResult(out, func() { printStopResponse(resp) })
	},
}

func init() {
	addAccountFlags(stopsCmd)
	stopsCmd.Flags().StringVar(&stopsStudent, "student", "", "Student id or first name")
	stopsCmd.Flags().StringVar(&stopsTime, "time", "am", "Time of day: am, pm, a name or an id")
	stopsCmd.Flags().StringVar(&stopsWhere, "where", "", "Filter expression over stop fields")
	rootCmd.AddCommand(stopsCmd)
}
