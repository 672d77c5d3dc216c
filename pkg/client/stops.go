package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/hcbtrack/hcb/pkg/hcb"
	"github.com/sourcegraph/conc/pool"
)

// maxConcurrentStops bounds the GetStopInfo calls GetAllStops runs at once.
const maxConcurrentStops = 4

// StudentStops is the stop information of one student for one time of day.
type StudentStops struct {
	Student   hcb.Student       `json:"student"`
	TimeOfDay hcb.TimeOfDay     `json:"timeOfDay"`
	Stops     *hcb.StopResponse `json:"stops"`
}

// GetAllStops fetches stop information for every student of account and
// every time of day. Results are ordered by student, then time of day, in
// the order the account lists them. The first failure cancels the calls
// still in flight and is returned.
func (c *Client) GetAllStops(ctx context.Context, schoolID string, account *hcb.AccountResponse) ([]StudentStops, error) {
	if account == nil {
		return nil, errors.New("account is required")
	}

	results := make([]StudentStops, 0, len(account.Students)*len(account.Times))
	for _, s := range account.Students {
		for _, t := range account.Times {
			results = append(results, StudentStops{Student: s, TimeOfDay: t})
		}
	}

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxConcurrentStops)

	for i := range results {
		r := &results[i]
		p.Go(func(ctx context.Context) error {
			stops, err := c.GetStopInfo(ctx, schoolID, account.AccountID, r.Student.StudentID, r.TimeOfDay.ID)
			if err != nil {
				return fmt.Errorf("student %s, %s: %w", r.Student.StudentID, r.TimeOfDay.Name, err)
			}
			r.Stops = stops
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
