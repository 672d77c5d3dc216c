package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/hcbtrack/hcb/pkg/client"
	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Date       string `json:"date"`
	AppVersion string `json:"appVersion"`
	Go         string `json:"go"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show hcb version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		version := Version
		commit := Commit
		date := BuildDate

		if info, ok := debug.ReadBuildInfo(); ok {
			if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "none" {
						commit = setting.Value
					}
				case "vcs.time":
					if date == "unknown" {
						date = setting.Value
					}
				case "vcs.modified":
					if setting.Value == "true" {
						commit += "-dirty"
					}
				}
			}
		}

		out := VersionOutput{
			Version:    version,
			Commit:     commit,
			Date:       date,
			AppVersion: client.DefaultAppVersion,
			Go:         runtime.Version(),
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
		}

		return printResult(out, func() {
			v := out.Version
			if len(v) > 0 && v[0] != 'v' && v != "dev" {
				v = "v" + v
			}
			output.Printf("hcb %s (%s, %s)\n", v, out.Commit, out.Date)
			output.Printf("speaks as app version %s\n", out.AppVersion)
			output.Printf("%s %s/%s\n", out.Go, out.OS, out.Arch)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
