package xmlquery

import (
	"strings"

	"github.com/beevik/etree"
)

// MatchXPath reports whether doc satisfies every condition. Each condition
// maps an etree path expression to the expected trimmed text or attribute
// value. An empty condition set always matches.
func MatchXPath(doc *etree.Document, conditions map[string]string) bool {
	if doc == nil || len(conditions) == 0 {
		return true
	}

	for path, expected := range conditions {
		if ExtractXPath(doc, path) != expected {
			return false
		}
	}
	return true
}

// ExtractXPath returns the trimmed text of the element selected by path, or
// the attribute value when path ends in "/@name". Returns "" when nothing is
// selected.
//
// Supported syntax is etree's path language:
//   - /path/to/element - absolute path
//   - //element - find anywhere in document, any namespace prefix
//   - //element/@attr - attribute value
//   - /path/to/element[1] - indexed access (1-based)
func ExtractXPath(doc *etree.Document, path string) string {
	if doc == nil || path == "" {
		return ""
	}

	elemPath, attrName, hasAttr := strings.Cut(path, "/@")
	if !hasAttr {
		if e := doc.FindElement(path); e != nil {
			return strings.TrimSpace(e.Text())
		}
		return ""
	}

	for _, e := range doc.FindElements(elemPath) {
		if v, ok := LookupAttr(e, attrName); ok {
			return v
		}
	}
	return ""
}
