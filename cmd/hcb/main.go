// hcb CLI - Command-line client for the Here Comes the Bus service
package main

import (
	"os"

	"github.com/hcbtrack/hcb/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	os.Exit(cli.Main())
}
