package soap

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SOAPVersion represents the SOAP protocol version.
type SOAPVersion string

const (
	// SOAP11 represents SOAP 1.1 protocol.
	SOAP11 SOAPVersion = "1.1"
	// SOAP12 represents SOAP 1.2 protocol.
	SOAP12 SOAPVersion = "1.2"
)

// SOAP namespace URIs
const (
	SOAP11Namespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SOAP12Namespace = "http://www.w3.org/2003/05/soap-envelope"

	// TempuriNamespace is the default namespace of the service's operation
	// elements.
	TempuriNamespace = "http://tempuri.org/"

	// ActionPrefix prefixes the operation name in the soapaction header.
	ActionPrefix = TempuriNamespace + "ISynoviaApi/"
)

// ContentTypes for SOAP versions
const (
	SOAP11ContentType = "text/xml; charset=utf-8"
	SOAP12ContentType = "application/soap+xml; charset=utf-8"
)

// DefaultPath is the endpoint path the service is published under.
const DefaultPath = "/SynoviaApi.svc"

// Config configures the mock SOAP endpoint.
type Config struct {
	Path       string            `json:"path,omitempty" yaml:"path,omitempty"`
	Operations []OperationConfig `json:"operations" yaml:"operations"`

	// BaseDir resolves relative ResponseFile paths. LoadConfig sets it to
	// the config file's directory.
	BaseDir string `json:"-" yaml:"-"`
}

// OperationConfig configures the response to one operation. Several entries
// may share a Name; the first whose Match conditions hold is used.
type OperationConfig struct {
	Name         string `json:"name" yaml:"name"` // e.g. s1157
	SOAPAction   string `json:"soapAction,omitempty" yaml:"soapAction,omitempty"`
	Response     string `json:"response,omitempty" yaml:"response,omitempty"`         // XML body or full envelope
	ResponseFile string `json:"responseFile,omitempty" yaml:"responseFile,omitempty"` // read at handler creation
	Delay        string `json:"delay,omitempty" yaml:"delay,omitempty"`
	Fault        *Fault `json:"fault,omitempty" yaml:"fault,omitempty"`
	Match        *Match `json:"match,omitempty" yaml:"match,omitempty"`
}

// Match defines XPath-based request matching conditions.
type Match struct {
	XPath map[string]string `json:"xpath,omitempty" yaml:"xpath,omitempty"` // XPath -> expected value
}

// Fault defines a SOAP fault response.
type Fault struct {
	Code    string `json:"code" yaml:"code"`       // soap:Client, soap:Server
	Message string `json:"message" yaml:"message"` // Human readable error
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// LoadConfig reads a mock endpoint configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mock config %q: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)
	return &cfg, nil
}

// Action returns the soapaction header value for method.
func Action(method string) string {
	return ActionPrefix + method
}
