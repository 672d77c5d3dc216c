package hcb

import (
	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// ParseSchoolID returns the school id from a school lookup response.
func ParseSchoolID(text string) (string, error) {
	doc, err := xmlquery.Parse(text)
	if err != nil {
		return "", &SchemaError{Op: "parse school", Reason: "unreadable document", Err: err}
	}
	return SchoolIDFromDocument(doc)
}

// SchoolIDFromDocument returns the ID attribute of the first Customer
// element. An unknown school code comes back without one.
func SchoolIDFromDocument(doc *etree.Document) (string, error) {
	id := xmlquery.AttrValue(doc, "Customer", "ID")
	if id == "" {
		return "", &SchemaError{Op: "parse school", Reason: "no Customer ID"}
	}
	return id, nil
}
