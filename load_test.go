package tqa

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xbrlware/tqa/docbuilder"
	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/xbrl"
)

func coName(local string) xbrl.QName {
	return xbrl.Name("urn:co", local)
}

func TestLoadFS(t *testing.T) {
	entry := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:xbrli="http://www.xbrl.org/2003/instance"
    xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink" targetNamespace="urn:co">
  <xs:annotation><xs:appinfo>
    <link:linkbaseRef xlink:type="simple" xlink:href="pre.xml"/>
  </xs:appinfo></xs:annotation>
  <xs:element name="Root" id="co_Root" substitutionGroup="xbrli:item"/>
  <xs:element name="Leaf" id="co_Leaf" substitutionGroup="xbrli:item"/>
</xs:schema>`
	linkbase := `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="entry.xsd#co_Root" xlink:label="root"/>
    <link:loc xlink:type="locator" xlink:href="entry.xsd#co_Leaf" xlink:label="leaf"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="root" xlink:to="leaf"/>
  </link:presentationLink>
</link:linkbase>`
	fsys := fstest.MapFS{
		"taxo/entry.xsd": {Data: []byte(entry)},
		"taxo/pre.xml":   {Data: []byte(linkbase)},
	}
	mappings := []docbuilder.Mapping{
		{URIPrefix: "http://example.com/co/", PathPrefix: "taxo/"},
	}

	bt, err := LoadFS(fsys, mappings, []string{"http://example.com/co/entry.xsd"}, NewLoadOptions())
	require.NoError(t, err)

	assert.Len(t, bt.Base().Documents(), 2)
	assert.Len(t, bt.ConceptDeclarations(), 2)

	out := bt.Outgoing(coName("Root"), relationship.KindPresentation)
	require.Len(t, out, 1)
	assert.Equal(t, coName("Leaf"), out[0].TargetConcept())
}

func TestLoadFSMissingEntrypoint(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, nil, []string{"http://example.com/co/entry.xsd"}, NewLoadOptions())
	require.Error(t, err)
	assert.ErrorContains(t, err, "collect DTS")
}
