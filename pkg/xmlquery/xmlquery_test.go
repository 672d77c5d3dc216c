package xmlquery

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedPrefixes = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <a:Payload xmlns:a="urn:a" xmlns:b="urn:b">
      <a:LinkedStudents>
        <a:Student EntityID="1" FirstName="Ada"/>
        <b:Student EntityID="2" FirstName="Grace"/>
      </a:LinkedStudents>
      <Student xmlns="urn:default" EntityID="3" FirstName="Edsger"/>
    </a:Payload>
  </s:Body>
</s:Envelope>`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("well formed", func(t *testing.T) {
		t.Parallel()
		doc, err := Parse(mixedPrefixes)
		require.NoError(t, err)
		assert.Equal(t, "Envelope", LocalName(doc.Root().Tag))
	})

	t.Run("leading whitespace and BOM", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("\ufeff\n  <Root/>")
		require.NoError(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("<Root attr=unquoted/>")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid XML")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("latin1 declared encoding", func(t *testing.T) {
		t.Parallel()
		doc, err := Parse("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Stop Name=\"Caf\xe9\"/>")
		require.NoError(t, err)
		assert.Equal(t, "Café", Attr(doc.Root(), "Name", ""))
	})
}

func TestLocalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Student", "Student"},
		{"a:Student", "Student"},
		{"{urn:a}Student", "Student"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalName(tt.in))
		})
	}
}

func TestElements_IgnoresNamespacePrefixes(t *testing.T) {
	t.Parallel()

	doc, err := Parse(mixedPrefixes)
	require.NoError(t, err)

	students := Elements(doc, "Student")
	require.Len(t, students, 3)

	var ids []string
	for _, s := range students {
		ids = append(ids, Attr(s, "EntityID", ""))
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids, "document order")
}

func TestElements_Missing(t *testing.T) {
	t.Parallel()

	doc, err := Parse(mixedPrefixes)
	require.NoError(t, err)

	assert.Empty(t, Elements(doc, "TimeOfDay"))
	assert.Nil(t, Element(doc, "TimeOfDay"))
	assert.Nil(t, Elements(nil, "Student"))
}

func TestElement_First(t *testing.T) {
	t.Parallel()

	doc, err := Parse(mixedPrefixes)
	require.NoError(t, err)

	first := Element(doc, "Student")
	require.NotNil(t, first)
	assert.Equal(t, "Ada", Attr(first, "FirstName", ""))
}

func TestAttr(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<r xmlns="urn:x" xmlns:p="urn:p"><e p:Name="prefixed" Plain="v"/></r>`)
	require.NoError(t, err)
	e := Element(doc, "e")
	require.NotNil(t, e)

	assert.Equal(t, "prefixed", Attr(e, "Name", "def"))
	assert.Equal(t, "v", Attr(e, "Plain", "def"))
	assert.Equal(t, "def", Attr(e, "Missing", "def"))

	// namespace declarations are not attributes
	assert.Equal(t, "", Attr(doc.Root(), "xmlns", ""))
	assert.Equal(t, "", Attr(doc.Root(), "p", ""))

	_, ok := LookupAttr(nil, "Name")
	assert.False(t, ok)
}

func TestAttrValue(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<r><Customer Name="no id"/><c:Customer xmlns:c="urn:c" ID="42"/><Customer ID="43"/></r>`)
	require.NoError(t, err)

	assert.Equal(t, "42", AttrValue(doc, "Customer", "ID"))
	assert.Equal(t, "", AttrValue(doc, "Customer", "Missing"))
	assert.Equal(t, "", AttrValue(doc, "Account", "ID"))
}

func TestWalk_Stops(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<a><b/><c/><d/></a>`)
	require.NoError(t, err)

	var seen []string
	Walk(doc.Root(), func(e *etree.Element) bool {
		seen = append(seen, e.Tag)
		return e.Tag != "c"
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)

	Walk(nil, func(*etree.Element) bool {
		t.Fatal("walk of nil root must not call fn")
		return true
	})
}

func TestExtractXPath(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
<soap:Body><s1157 xmlns="http://tempuri.org/"><P1> school </P1><P2>parent@example.com</P2></s1157></soap:Body>
</soap:Envelope>`)
	require.NoError(t, err)

	assert.Equal(t, "school", ExtractXPath(doc, "//P1"))
	assert.Equal(t, "parent@example.com", ExtractXPath(doc, "//s1157/P2"))
	assert.Equal(t, "", ExtractXPath(doc, "//P9"))
	assert.Equal(t, "", ExtractXPath(doc, ""))
	assert.Equal(t, "", ExtractXPath(nil, "//P1"))
}

func TestExtractXPath_Attribute(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<r><Customer ID="42"/></r>`)
	require.NoError(t, err)
	assert.Equal(t, "42", ExtractXPath(doc, "//Customer/@ID"))
	assert.Equal(t, "", ExtractXPath(doc, "//Customer/@Name"))
}

func TestMatchXPath(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<Envelope><Body><s1158><P3>student-1</P3><P4>am</P4></s1158></Body></Envelope>`)
	require.NoError(t, err)

	assert.True(t, MatchXPath(doc, nil))
	assert.True(t, MatchXPath(doc, map[string]string{"//P3": "student-1"}))
	assert.True(t, MatchXPath(doc, map[string]string{"//P3": "student-1", "//P4": "am"}))
	assert.False(t, MatchXPath(doc, map[string]string{"//P3": "student-1", "//P4": "pm"}))
	assert.True(t, MatchXPath(nil, map[string]string{"//P3": "x"}))
}
