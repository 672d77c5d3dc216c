package xmlquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned by Parse when the input has no root element.
var ErrEmptyDocument = errors.New("empty document")

// Parse reads an XML document from text. Documents declaring a non UTF-8
// encoding are transcoded before parsing.
func Parse(text string) (*etree.Document, error) {
	text = strings.TrimLeft(text, "\ufeff \t\r\n")
	if text == "" {
		return nil, ErrEmptyDocument
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// LocalName strips a namespace prefix ("s:Envelope") or a namespace URI in
// Clark notation ("{http://tempuri.org/}Envelope") from name.
func LocalName(name string) string {
	if i := strings.LastIndexByte(name, '}'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Walk visits root and all of its descendant elements in document order.
// Returning false from fn stops the walk.
func Walk(root *etree.Element, fn func(*etree.Element) bool) {
	if root == nil {
		return
	}
	walk(root, fn)
}

func walk(e *etree.Element, fn func(*etree.Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.ChildElements() {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// FindAll returns every element at or below root whose local name is local.
func FindAll(root *etree.Element, local string) []*etree.Element {
	var found []*etree.Element
	Walk(root, func(e *etree.Element) bool {
		if LocalName(e.Tag) == local {
			found = append(found, e)
		}
		return true
	})
	return found
}

// FindFirst returns the first element at or below root whose local name is
// local, or nil.
func FindFirst(root *etree.Element, local string) *etree.Element {
	var found *etree.Element
	Walk(root, func(e *etree.Element) bool {
		if LocalName(e.Tag) == local {
			found = e
			return false
		}
		return true
	})
	return found
}

// Elements returns every element in doc whose local name is local.
func Elements(doc *etree.Document, local string) []*etree.Element {
	if doc == nil {
		return nil
	}
	return FindAll(doc.Root(), local)
}

// Element returns the first element in doc whose local name is local, or nil.
func Element(doc *etree.Document, local string) *etree.Element {
	if doc == nil {
		return nil
	}
	return FindFirst(doc.Root(), local)
}

// LookupAttr returns the value of the attribute of e whose local name is
// local. Namespace declarations are never matched.
func LookupAttr(e *etree.Element, local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		if LocalName(a.Key) == local {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of attribute local on e, or def when e has no such
// attribute.
func Attr(e *etree.Element, local, def string) string {
	if v, ok := LookupAttr(e, local); ok {
		return v
	}
	return def
}

// AttrValue returns the value of attribute attrLocal on the first element
// named elemLocal that carries it, or "" when no element does.
func AttrValue(doc *etree.Document, elemLocal, attrLocal string) string {
	for _, e := range Elements(doc, elemLocal) {
		if v, ok := LookupAttr(e, attrLocal); ok {
			return v
		}
	}
	return ""
}
