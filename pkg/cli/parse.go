package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/hcbtrack/hcb/pkg/hcb"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a saved service response offline",
}

var parseAccountCmd = &cobra.Command{
	Use:   "account <file>",
	Short: "Parse a saved login response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		account, err := hcb.ParseAccount(text)
		if err != nil {
			return err
		}
		return printResult(account, func() { printAccount(account) })
	},
}

var parseStopCmd = &cobra.Command{
	Use:   "stop <file>",
	Short: "Parse a saved stop info response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		resp, err := hcb.ParseStop(text)
		if err != nil {
			return err
		}
		return printResult(resp, func() { printStopResponse(resp) })
	},
}

var parseSchoolCmd = &cobra.Command{
	Use:   "school <file>",
	Short: "Parse a saved school lookup response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		id, err := hcb.ParseSchoolID(text)
		if err != nil {
			return err
		}
		return printResult(map[string]string{"schoolId": id}, func() { output.Printf("%s\n", id) })
	},
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func init() {
	parseCmd.AddCommand(parseAccountCmd, parseStopCmd, parseSchoolCmd)
	rootCmd.AddCommand(parseCmd)
}
