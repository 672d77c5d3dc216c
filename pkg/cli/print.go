package cli

import (
	"fmt"
	"time"

	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/hcbtrack/hcb/pkg/client"
	"github.com/hcbtrack/hcb/pkg/hcb"
)

// printResult outputs a single operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to stdout. Human-readable prose must go to stderr or be omitted entirely.
// textFn is called only in text mode.
func printResult(data any, textFn func()) error {
	if jsonOutput {
		return output.JSON(data)
	}
	textFn()
	return nil
}

func printAccount(a *hcb.AccountResponse) {
	output.Printf("Account: %s\n\n", a.AccountID)

	w := output.Table()
	_, _ = fmt.Fprintln(w, "STUDENT\tFIRST NAME\tLAST NAME")
	for _, s := range a.Students {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.StudentID, output.OrDash(s.FirstName), output.OrDash(s.LastName))
	}
	_ = w.Flush()
	output.Printf("\n")

	w = output.Table()
	_, _ = fmt.Fprintln(w, "TIME OF DAY\tID\tBEGIN\tEND")
	for _, t := range a.Times {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", output.OrDash(t.Name), t.ID, t.BeginTime, t.EndTime)
	}
	_ = w.Flush()
}

func printVehicle(v *hcb.VehicleLocation) {
	if v == nil {
		output.Printf("Bus: no recent location\n")
		return
	}
	output.Printf("Bus: %s at %.5f,%.5f", v.Name, v.Latitude, v.Longitude)
	if !v.LogTime.IsZero() {
		output.Printf(" (%s)", v.LogTime.Format(time.DateTime))
	}
	output.Printf("\n")
	if v.Address != "" {
		output.Printf("Near: %s\n", v.Address)
	}
	ignition := "off"
	if v.Ignition {
		ignition = "on"
	}
	output.Printf("Speed: %d, heading %s, ignition %s\n", v.Speed, output.OrDash(v.Heading), ignition)
}

func printStops(stops []hcb.StudentStop) {
	w := output.Table()
	_, _ = fmt.Fprintln(w, "STOP\tTYPE\tNAME\tARRIVAL\tVISIBLE FROM\tBUS")
	today := time.Now()
	for _, s := range stops {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.StopID,
			output.Title(s.StopType),
			output.OrDash(s.Name),
			s.ArrivalTime,
			s.VisibleFrom(today).Format(time.TimeOnly),
			output.OrDash(s.Vehicle()),
		)
	}
	_ = w.Flush()
}

func printStopResponse(r *hcb.StopResponse) {
	printVehicle(r.VehicleLocation)
	output.Printf("\n")
	printStops(r.StudentStops)
}

func printAllStops(all []client.StudentStops) {
	w := output.Table()
	_, _ = fmt.Fprintln(w, "STUDENT\tTIME\tSTOP\tTYPE\tARRIVAL\tBUS\tLAST SEEN")
	for _, r := range all {
		name := r.Student.FirstName
		if name == "" {
			name = r.Student.StudentID
		}
		seen := "-"
		if v := r.Stops.VehicleLocation; v != nil && !v.LogTime.IsZero() {
			seen = v.LogTime.Format(time.TimeOnly)
		}
		if len(r.Stops.StudentStops) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\t%s\n", name, r.TimeOfDay.Name, seen)
			continue
		}
		for _, s := range r.Stops.StudentStops {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				name, r.TimeOfDay.Name, s.StopID, output.Title(s.StopType), s.ArrivalTime, output.OrDash(s.Vehicle()), seen)
		}
	}
	_ = w.Flush()
}
