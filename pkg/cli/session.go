package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hcbtrack/hcb/pkg/client"
	"github.com/hcbtrack/hcb/pkg/hcb"
)

func newClient() *client.Client {
	return client.New(
		client.WithEndpoint(cfg.Endpoint),
		client.WithTimeout(cfg.Timeout),
		client.WithAppVersion(cfg.AppVersion),
		client.WithServer(cfg.Server),
		client.WithLogger(logger),
	)
}

// schoolID returns the configured school id, looking the school code up
// when no id is configured.
func schoolID(ctx context.Context, c *client.Client) (string, error) {
	if cfg.SchoolID != "" {
		return cfg.SchoolID, nil
	}
	if cfg.SchoolCode == "" {
		return "", ErrMissingSchool
	}
	id, err := c.GetSchoolID(ctx, cfg.SchoolCode)
	if err != nil {
		return "", fmt.Errorf("school %q: %w", cfg.SchoolCode, err)
	}
	logger.Debug("resolved school", "school_code", cfg.SchoolCode, "school_id", id)
	return id, nil
}

// login resolves the school and logs in with the configured credentials.
func login(ctx context.Context, c *client.Client) (string, *hcb.AccountResponse, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return "", nil, ErrMissingCredentials
	}
	school, err := schoolID(ctx, c)
	if err != nil {
		return "", nil, err
	}
	account, err := c.GetParentInfo(ctx, school, cfg.Username, cfg.Password)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return school, account, nil
}

// findStudent matches a student by id, then by first name ignoring case.
func findStudent(a *hcb.AccountResponse, key string) (hcb.Student, error) {
	if s, ok := a.Student(key); ok {
		return s, nil
	}
	for _, s := range a.Students {
		if strings.EqualFold(s.FirstName, key) {
			return s, nil
		}
	}
	return hcb.Student{}, fmt.Errorf("no student %q on this account", key)
}

// findTimeOfDay matches a time of day by id or name. "am" and "pm" fall
// back to the well-known ids when the account does not list them.
func findTimeOfDay(a *hcb.AccountResponse, key string) (hcb.TimeOfDay, error) {
	if t, ok := a.TimeOfDay(key); ok {
		return t, nil
	}
	switch strings.ToLower(key) {
	case "am":
		return hcb.TimeOfDay{ID: client.AMID, Name: "AM"}, nil
	case "pm":
		return hcb.TimeOfDay{ID: client.PMID, Name: "PM"}, nil
	}
	return hcb.TimeOfDay{}, fmt.Errorf("no time of day %q on this account", key)
}
