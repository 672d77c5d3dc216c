package hcb

import (
	"time"

	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/coerce"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// attrReader reads the attributes of one element into a record. The first
// coercion failure is kept and every later read becomes a no-op, so a
// builder checks err once after reading all of its fields.
type attrReader struct {
	record string
	elem   *etree.Element
	err    error
}

func newAttrReader(record string, elem *etree.Element) *attrReader {
	return &attrReader{record: record, elem: elem}
}

func (r *attrReader) str(name, def string) string {
	return xmlquery.Attr(r.elem, name, def)
}

func (r *attrReader) fail(name, value string, err error) {
	if r.err == nil {
		r.err = &ParseError{Record: r.record, Field: name, Value: value, Err: err}
	}
}

func (r *attrReader) clock(name, def string) coerce.Clock {
	if r.err != nil {
		return coerce.Clock{}
	}
	raw := r.str(name, def)
	c, err := coerce.ParseClock(raw)
	if err != nil {
		r.fail(name, raw, err)
	}
	return c
}

func (r *attrReader) float(name, def string) float64 {
	if r.err != nil {
		return 0
	}
	raw := r.str(name, def)
	f, err := coerce.Float(raw)
	if err != nil {
		r.fail(name, raw, err)
	}
	return f
}

func (r *attrReader) int(name, def string) int {
	if r.err != nil {
		return 0
	}
	raw := r.str(name, def)
	n, err := coerce.Int(raw)
	if err != nil {
		r.fail(name, raw, err)
	}
	return n
}

func (r *attrReader) yesNo(name, def string) bool {
	return coerce.YesNo(r.str(name, def))
}

func (r *attrReader) dateTime(name, def string) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	raw := r.str(name, def)
	t, err := coerce.DateTime(raw)
	if err != nil {
		r.fail(name, raw, err)
	}
	return t
}
