package hcb

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// FilterStops returns the stops for which expression evaluates to true.
// The expression sees StudentStop's fields by their Go names, for example
//
//	StopType == "Pickup" && ArrivalTime.Hour < 8
//
// An empty expression returns stops unchanged.
func FilterStops(stops []StudentStop, expression string) ([]StudentStop, error) {
	if strings.TrimSpace(expression) == "" {
		return stops, nil
	}

	program, err := expr.Compile(expression, expr.Env(StudentStop{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}

	out := make([]StudentStop, 0, len(stops))
	for _, s := range stops {
		result, err := expr.Run(program, s)
		if err != nil {
			return nil, fmt.Errorf("eval filter %q on stop %s: %w", expression, s.StopID, err)
		}
		if keep, _ := result.(bool); keep {
			out = append(out, s)
		}
	}
	return out, nil
}
