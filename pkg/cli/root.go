package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hcbtrack/hcb/pkg/client"
	"github.com/hcbtrack/hcb/pkg/config"
	"github.com/hcbtrack/hcb/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	jsonOutput bool

	// Effective configuration and logger, set before any command runs.
	cfg    *config.Config
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hcb",
	Short: "hcb talks to the Here Comes the Bus school bus tracking service",
	Long: `hcb logs in to Here Comes the Bus and shows where your children's school bus is.

Configuration can be provided via flags, environment variables (HCB_*), or a
configuration file. By default, hcb looks for a configuration file at
~/.config/hcb/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Main()
	PersistentPreRunE: loadConfig,
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ~/.config/hcb/config.yaml, or HCB_CONFIG)")
	pf.BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	pf.String("endpoint", "", "Service URL (default: "+client.DefaultEndpoint+")")
	pf.Duration("timeout", 0, "HTTP timeout (default: 30s)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text, json")
}

// loadConfig resolves the effective configuration for the running command.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	config.Merge(loaded, flagOverrides(cmd.Flags()), config.SourceFlag)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	logger = cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	return nil
}

// flagOverrides collects the config values set on the command line.
func flagOverrides(fs *pflag.FlagSet) *config.Config {
	o := &config.Config{Sources: make(map[string]string)}

	str := func(flag, key string, dst *string) {
		if f := fs.Lookup(flag); f != nil && f.Changed {
			*dst = f.Value.String()
			o.Sources[key] = config.SourceFlag
		}
	}
	str("endpoint", "endpoint", &o.Endpoint)
	str("log-level", "log.level", &o.Log.Level)
	str("log-format", "log.format", &o.Log.Format)
	str("school-code", "schoolCode", &o.SchoolCode)
	str("school-id", "schoolId", &o.SchoolID)
	str("username", "username", &o.Username)
	str("password", "password", &o.Password)
	str("fixtures", "mock.fixturesDir", &o.Mock.FixturesDir)

	if f := fs.Lookup("timeout"); f != nil && f.Changed {
		if d, err := fs.GetDuration("timeout"); err == nil {
			o.Timeout = d
			o.Sources["timeout"] = config.SourceFlag
		}
	}
	if f := fs.Lookup("port"); f != nil && f.Changed {
		if port, err := fs.GetInt("port"); err == nil {
			o.Mock.Port = port
			o.Sources["mock.port"] = config.SourceFlag
		}
	}
	return o
}

// addAccountFlags registers the flags that identify the school and parent.
func addAccountFlags(cmd *cobra.Command) {
	cmd.Flags().String("school-code", "", "School code (or HCB_SCHOOL_CODE)")
	cmd.Flags().String("school-id", "", "School id, skips the school lookup (or HCB_SCHOOL_ID)")
	cmd.Flags().String("username", "", "Parent username (or HCB_USERNAME)")
	cmd.Flags().String("password", "", "Parent password (or HCB_PASSWORD)")
}
