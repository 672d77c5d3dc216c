package hcb

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrSchema matches every *SchemaError.
	ErrSchema = errors.New("schema error")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")
)

// SchemaError reports a document whose overall shape is not what an
// assembler expects, such as a login response without an Account element.
type SchemaError struct {
	Op     string // e.g. "parse account"
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSchema) true for any *SchemaError.
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ParseError reports an attribute that is present but cannot be converted to
// its field's type.
type ParseError struct {
	Record string // record being built, e.g. "StudentStop"
	Field  string // attribute name, e.g. "StartTime"
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s.%s %q: %v", e.Record, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) true for any *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
