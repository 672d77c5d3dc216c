// Package coerce converts raw attribute strings from the bus-tracking
// service into typed scalars.
//
// Every coercer has a documented result for empty input, so callers can pass
// an attribute value straight through without checking for presence first:
//
//	Clock      ""  -> 00:00:00
//	Float      ""  -> 0.0
//	Int        ""  -> 0
//	YesNo      any -> true iff the first character is Y or y
//	DateTime   ""  -> zero time.Time
//
// Present but malformed values return an error; YesNo never fails.
package coerce
