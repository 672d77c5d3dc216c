// Package cli provides the command-line interface for hcb.
//
// The cli package implements the commands for talking to the Here Comes the
// Bus service:
//   - school: Resolve a school code to the school's id
//   - login: Show the parent account, linked students and times of day
//   - stops: Show the bus location and stops of one student
//   - status: Show every student's stops for every time of day
//   - parse: Parse a saved login or stop response offline
//   - mock: Run a local mock of the service
//   - config: Display effective configuration
//   - version: Show hcb version
//
// Usage:
//
//	hcb school springfield
//	hcb login --username parent@example.com --password ...
//	hcb stops --student S-1001 --time am --where 'StopType == "Pickup"'
//	hcb status --json
//	hcb parse stop saved-response.xml
//	hcb mock --port 8181
package cli
