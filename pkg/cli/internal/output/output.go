// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stdout is where command results are written.
var Stdout io.Writer = os.Stdout

// JSON writes indented JSON to stdout.
func JSON(v any) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer for stdout.
// Remember to call Flush() when done writing.
func Table() *tabwriter.Writer {
	return tabwriter.NewWriter(Stdout, 0, 0, 2, ' ', 0)
}

// Printf writes formatted text to stdout.
func Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(Stdout, format, args...)
}

// Warn prints a warning message to stderr.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// Title formats a service enum value such as "PICKUP" for display.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// OrDash returns s, or "-" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
