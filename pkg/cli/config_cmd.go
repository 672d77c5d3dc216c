package cli

import (
	"fmt"
	"sort"

	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/hcbtrack/hcb/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigOutput is the JSON shape of `hcb config`.
type ConfigOutput struct {
	Config  *config.Config    `json:"config"`
	Sources map[string]string `json:"sources"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		redacted := cfg.Redacted()
		return printResult(ConfigOutput{Config: redacted, Sources: cfg.Sources}, func() {
			printConfig(redacted)
		})
	},
}

func printConfig(c *config.Config) {
	if c.ConfigFile != "" {
		output.Printf("# Config file: %s\n", c.ConfigFile)
	} else {
		output.Printf("# Config file: none\n")
	}

	data, err := yaml.Marshal(c)
	if err == nil {
		output.Printf("%s\n", data)
	}

	keys := make([]string, 0, len(c.Sources))
	for k := range c.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := output.Table()
	_, _ = fmt.Fprintln(w, "KEY\tSOURCE")
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", k, c.Sources[k])
	}
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(configCmd)
}
