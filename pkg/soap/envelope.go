package soap

import (
	"errors"
	"strconv"

	"github.com/beevik/etree"
)

// Param is one positional request parameter (P1, P2, ...).
type Param struct {
	Name  string
	Value string
}

// Positional names values P1..Pn in order.
func Positional(values ...string) []Param {
	params := make([]Param, len(values))
	for i, v := range values {
		params[i] = Param{Name: "P" + strconv.Itoa(i+1), Value: v}
	}
	return params
}

// BuildEnvelope builds a SOAP 1.1 request envelope calling method with
// params as child elements in the tempuri namespace.
func BuildEnvelope(method string, params []Param) ([]byte, error) {
	if method == "" {
		return nil, errors.New("method is required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", SOAP11Namespace)
	body := env.CreateElement("soap:Body")

	op := body.CreateElement(method)
	op.CreateAttr("xmlns", TempuriNamespace)
	for _, p := range params {
		if p.Name == "" {
			return nil, errors.New("parameter name is required")
		}
		op.CreateElement(p.Name).SetText(p.Value)
	}

	return doc.WriteToBytes()
}
