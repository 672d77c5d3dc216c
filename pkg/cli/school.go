package cli

import (
	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

var schoolCmd = &cobra.Command{
	Use:   "school [code]",
	Short: "Resolve a school code to the school's id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.SchoolCode = args[0]
		}
		cfg.SchoolID = ""

		id, err := schoolID(cmd.Context(), newClient())
		if err != nil {
			return err
		}
		return printResult(map[string]string{"schoolCode": cfg.SchoolCode, "schoolId": id}, func() {
			output.Printf("%s\n", id)
		})
	},
}

func init() {
	schoolCmd.Flags().String("school-code", "", "School code (or HCB_SCHOOL_CODE)")
	rootCmd.AddCommand(schoolCmd)
}
