// Package fixtures embeds sample responses for the service's three
// operations and a mock endpoint configuration serving them.
package fixtures

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hcbtrack/hcb/pkg/soap"
)

// Operation names of the service.
const (
	OpSchool = "s1100"
	OpLogin  = "s1157"
	OpStops  = "s1158"
)

// Values the sample responses carry.
const (
	SchoolCode = "springfield"
	SchoolID   = "6B2A4C5D-1E2F-4A3B-9C8D-7E6F5A4B3C2D"
	AccountID  = "A7D3E2F1-0B9C-4D8E-8F7A-6B5C4D3E2F1A"
	Username   = "parent@example.com"
	Password   = "hunter2"

	// BadPassword is rejected with a SOAP fault by DefaultConfig.
	BadPassword = "bad-password"
)

//go:embed responses/*.xml
var responses embed.FS

// Response returns the sample response body for op.
func Response(op string) string {
	data, err := responses.ReadFile("responses/" + op + ".xml")
	if err != nil {
		panic("fixtures: no response for " + op)
	}
	return string(data)
}

// DefaultConfig returns a mock endpoint serving the sample responses. Login
// with BadPassword returns a soap:Client fault; an unknown school code
// returns an empty lookup result.
func DefaultConfig() *soap.Config {
	return &soap.Config{
		Path: soap.DefaultPath,
		Operations: []soap.OperationConfig{
			{
				Name:       OpSchool,
				SOAPAction: soap.Action(OpSchool),
				Match:      &soap.Match{XPath: map[string]string{"//P1": SchoolCode}},
				Response:   Response(OpSchool),
			},
			{
				Name:       OpSchool,
				SOAPAction: soap.Action(OpSchool),
				Response:   `<s1100Response xmlns="http://tempuri.org/"><s1100Result><SynoviaApi xmlns=""><ValidateCustomerAccountNumber/></SynoviaApi></s1100Result></s1100Response>`,
			},
			{
				Name:       OpLogin,
				SOAPAction: soap.Action(OpLogin),
				Match:      &soap.Match{XPath: map[string]string{"//P3": BadPassword}},
				Fault:      &soap.Fault{Code: "soap:Client", Message: "Invalid username or password"},
			},
			{
				Name:       OpLogin,
				SOAPAction: soap.Action(OpLogin),
				Response:   Response(OpLogin),
			},
			{
				Name:       OpStops,
				SOAPAction: soap.Action(OpStops),
				Response:   Response(OpStops),
			},
		},
	}
}

// FromDir returns DefaultConfig with the success response of each operation
// replaced by <dir>/<operation>.xml when that file exists.
func FromDir(dir string) (*soap.Config, error) {
	cfg := DefaultConfig()
	cfg.BaseDir = dir

	for _, op := range []string{OpSchool, OpLogin, OpStops} {
		name := op + ".xml"
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for i := range cfg.Operations {
			o := &cfg.Operations[i]
			if o.Name == op && o.Match == nil && o.Fault == nil {
				o.Response = ""
				o.ResponseFile = name
			}
		}
	}
	return cfg, nil
}
