package cli

import "errors"

// Common CLI errors
var (
	ErrMissingCredentials = errors.New("username and password are required (--username/--password or HCB_USERNAME/HCB_PASSWORD)")
	ErrMissingSchool      = errors.New("school is required (--school-id, --school-code or HCB_SCHOOL_ID/HCB_SCHOOL_CODE)")
)
