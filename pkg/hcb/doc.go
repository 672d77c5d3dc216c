// Package hcb turns responses from the Here Comes the Bus SOAP service into
// typed records.
//
// Parsing is a single pass over an in-memory document: the namespace-agnostic
// locator in pkg/xmlquery finds the elements of interest, one builder per
// record reads each element's attributes through the coercers in pkg/coerce,
// and an assembler composes the records into a response.
//
//	account, err := hcb.ParseAccount(body)
//	stops, err := hcb.ParseStop(body)
//
// Absent attributes resolve to a fixed default for their field ("" for
// strings, 0 for numbers, 00:00:00 for times of day, false for flags).
// Present but malformed numbers, times and date-times fail the whole parse
// with a *ParseError naming the record, attribute and value. A document that
// does not have the expected shape at all fails with a *SchemaError.
//
// Every function in this package is pure and safe for concurrent use.
package hcb
