// Package xmlquery locates elements and attributes in SOAP responses by
// local name.
//
// The bus-tracking service wraps its payload in several envelope and
// namespace layers whose prefixes change between server versions, so every
// lookup here ignores namespace prefixes and default namespace declarations
// and compares local names only.
//
// # Usage
//
//	doc, err := xmlquery.Parse(body)
//	if err != nil {
//	    return err
//	}
//
//	for _, e := range xmlquery.Elements(doc, "Student") {
//	    id := xmlquery.Attr(e, "EntityID", "")
//	    // ...
//	}
//
//	schoolID := xmlquery.AttrValue(doc, "Customer", "ID")
//
// Elements are returned in document order. Absence is never an error:
// missing elements yield an empty slice and missing attributes yield the
// caller's default (or "" for AttrValue).
package xmlquery
