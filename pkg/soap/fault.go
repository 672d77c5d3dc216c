package soap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// ErrFault matches every *FaultError.
var ErrFault = errors.New("soap fault")

// FaultError is a SOAP fault returned by the service.
type FaultError struct {
	Code    string
	Message string
	Detail  string
}

func (e *FaultError) Error() string {
	if e.Code == "" {
		return "soap fault: " + e.Message
	}
	return fmt.Sprintf("soap fault %s: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrFault) true for any *FaultError.
func (e *FaultError) Is(target error) bool { return target == ErrFault }

// CheckFault returns a *FaultError when doc carries a SOAP 1.1 or 1.2 fault
// and nil otherwise.
func CheckFault(doc *etree.Document) error {
	fault := xmlquery.Element(doc, "Fault")
	if fault == nil {
		return nil
	}

	fe := &FaultError{}
	if code := xmlquery.FindFirst(fault, "faultcode"); code != nil {
		// SOAP 1.1
		fe.Code = strings.TrimSpace(code.Text())
		fe.Message = childText(fault, "faultstring")
		if d := xmlquery.FindFirst(fault, "detail"); d != nil {
			fe.Detail = innerText(d)
		}
		return fe
	}

	// SOAP 1.2
	if code := xmlquery.FindFirst(fault, "Code"); code != nil {
		fe.Code = childText(code, "Value")
	}
	if reason := xmlquery.FindFirst(fault, "Reason"); reason != nil {
		fe.Message = childText(reason, "Text")
	}
	if d := xmlquery.FindFirst(fault, "Detail"); d != nil {
		fe.Detail = innerText(d)
	}
	return fe
}

func childText(e *etree.Element, local string) string {
	if c := xmlquery.FindFirst(e, local); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// innerText returns the serialised children of e, or its text when it has
// none.
func innerText(e *etree.Element) string {
	if len(e.ChildElements()) == 0 {
		return strings.TrimSpace(e.Text())
	}
	doc := etree.NewDocument()
	for _, c := range e.ChildElements() {
		doc.AddChild(c.Copy())
	}
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
