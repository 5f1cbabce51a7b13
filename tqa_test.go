package tqa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/taxonomy"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

const finNS = "urn:fin"

const finSchemaURI = "http://example.com/fin/schema.xsd"

const finSchemaDoc = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:xbrli="http://www.xbrl.org/2003/instance"
    xmlns:xbrldt="http://xbrl.org/2005/xbrldt" targetNamespace="urn:fin">
  <xs:element name="Assets" id="fin_Assets" substitutionGroup="xbrli:item"/>
  <xs:element name="Cash" id="fin_Cash" substitutionGroup="xbrli:item"/>
  <xs:element name="Receivables" id="fin_Receivables" substitutionGroup="xbrli:item"/>
  <xs:element name="Cube" id="fin_Cube" substitutionGroup="xbrldt:hypercubeItem"/>
  <xs:element name="RegionDim" id="fin_RegionDim" substitutionGroup="xbrldt:dimensionItem"/>
  <xs:element name="Regions" id="fin_Regions" substitutionGroup="xbrli:item"/>
  <xs:element name="Europe" id="fin_Europe" substitutionGroup="xbrli:item"/>
</xs:schema>`

var dimensionHeads = taxonomy.SubstitutionGroupMap{
	xbrl.HypercubeItemEName: xbrl.ItemEName,
	xbrl.DimensionItemEName: xbrl.ItemEName,
}

type docFixture struct {
	uri     string
	content string
}

func buildTaxonomy(t *testing.T, opts LoadOptions, docs ...docFixture) *BasicTaxonomy {
	t.Helper()
	parsed := make([]*taxonomy.Document, 0, len(docs)+1)
	tree, err := xmltree.ParseString(finSchemaDoc, finSchemaURI)
	require.NoError(t, err)
	parsed = append(parsed, taxonomy.NewDocument(tree))
	for _, doc := range docs {
		tree, err := xmltree.ParseString(doc.content, doc.uri)
		require.NoError(t, err)
		parsed = append(parsed, taxonomy.NewDocument(tree))
	}
	bt, err := Build(taxonomy.Build(parsed), opts.WithExtraSubstitutionGroups(dimensionHeads))
	require.NoError(t, err)
	return bt
}

func fin(local string) xbrl.QName {
	return xbrl.Name(finNS, local)
}

const presentationDoc = `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Assets" xlink:label="assets"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cash" xlink:label="cash"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Receivables" xlink:label="recv"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="assets" xlink:to="cash" order="1"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="assets" xlink:to="recv" order="2"/>
  </link:presentationLink>
</link:linkbase>`

func TestBuildClassifiesAndIndexes(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc})

	assets, ok := bt.FindConceptDeclaration(fin("Assets"))
	require.True(t, ok)
	assert.Equal(t, taxonomy.ConceptPrimaryItem, assets.Kind)

	cube, ok := bt.FindConceptDeclaration(fin("Cube"))
	require.True(t, ok)
	assert.Equal(t, taxonomy.ConceptHypercube, cube.Kind)

	dim, ok := bt.FindConceptDeclaration(fin("RegionDim"))
	require.True(t, ok)
	assert.Equal(t, taxonomy.ConceptExplicitDimension, dim.Kind)

	assert.Len(t, bt.Relationships(), 2)
	assert.Len(t, bt.ConceptDeclarations(), 7)
}

func TestOutgoingAndIncoming(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc})

	out := bt.Outgoing(fin("Assets"))
	require.Len(t, out, 2)
	assert.Equal(t, fin("Cash"), out[0].TargetConcept())
	assert.Equal(t, fin("Receivables"), out[1].TargetConcept())

	assert.Len(t, bt.Outgoing(fin("Assets"), relationship.KindPresentation), 2)
	assert.Empty(t, bt.Outgoing(fin("Assets"), relationship.KindCalculation))
	assert.Empty(t, bt.Outgoing(fin("Cash")))

	in := bt.Incoming(fin("Cash"))
	require.Len(t, in, 1)
	assert.Equal(t, fin("Assets"), in[0].SourceConcept())
}

func TestOutgoingPathsTruncateCycles(t *testing.T) {
	cyclic := `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Assets" xlink:label="a"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cash" xlink:label="b"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Receivables" xlink:label="c"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="a" xlink:to="b"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="b" xlink:to="c"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="c" xlink:to="a"/>
  </link:presentationLink>
</link:linkbase>`
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/cycle.xml", cyclic})

	paths := bt.OutgoingPaths(fin("Assets"), nil, relationship.KindPresentation)
	require.Len(t, paths, 1)

	path := paths[0]
	assert.Equal(t, 3, path.Length())
	assert.True(t, path.HasCycle())
	assert.Equal(t, []xbrl.QName{
		fin("Assets"), fin("Cash"), fin("Receivables"), fin("Assets"),
	}, path.Concepts())
	assert.Equal(t, fin("Assets"), path.SourceConcept())
	assert.Equal(t, fin("Assets"), path.TargetConcept())
}

func TestOutgoingPathsPredicateStopsGrowth(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc})

	cashOnly := func(p Path) bool {
		return p.TargetConcept() == fin("Cash")
	}
	paths := bt.OutgoingPaths(fin("Assets"), cashOnly)
	require.Len(t, paths, 1)
	assert.Equal(t, []xbrl.QName{fin("Assets"), fin("Cash")}, paths[0].Concepts())
}

func TestIncomingPaths(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc})

	paths := bt.IncomingPaths(fin("Cash"), nil)
	require.Len(t, paths, 1)
	assert.Equal(t, []xbrl.QName{fin("Assets"), fin("Cash")}, paths[0].Concepts())
}

const (
	elrBase    = "http://example.com/elr/base"
	elrCube    = "http://example.com/elr/cube"
	elrMembers = "http://example.com/elr/members"
)

const definitionDoc = `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xbrldt="http://xbrl.org/2005/xbrldt"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:definitionLink xlink:type="extended" xlink:role="` + elrBase + `">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Assets" xlink:label="assets"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cube" xlink:label="cube"/>
    <link:definitionArc xlink:type="arc"
        xlink:arcrole="http://xbrl.org/int/dim/arcrole/all"
        xlink:from="assets" xlink:to="cube"
        xbrldt:targetRole="` + elrCube + `"
        xbrldt:closed="true" xbrldt:contextElement="segment"/>
  </link:definitionLink>
  <link:definitionLink xlink:type="extended" xlink:role="` + elrCube + `">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cube" xlink:label="cube"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_RegionDim" xlink:label="dim"/>
    <link:definitionArc xlink:type="arc"
        xlink:arcrole="http://xbrl.org/int/dim/arcrole/hypercube-dimension"
        xlink:from="cube" xlink:to="dim"
        xbrldt:targetRole="` + elrMembers + `"/>
  </link:definitionLink>
  <link:definitionLink xlink:type="extended" xlink:role="` + elrMembers + `">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_RegionDim" xlink:label="dim"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Regions" xlink:label="dom"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Europe" xlink:label="mem"/>
    <link:definitionArc xlink:type="arc"
        xlink:arcrole="http://xbrl.org/int/dim/arcrole/dimension-domain"
        xlink:from="dim" xlink:to="dom" xbrldt:usable="false"/>
    <link:definitionArc xlink:type="arc"
        xlink:arcrole="http://xbrl.org/int/dim/arcrole/domain-member"
        xlink:from="dom" xlink:to="mem"/>
  </link:definitionLink>
</link:linkbase>`

func TestConsecutiveDimensionalChain(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/def.xml", definitionDoc})

	all := bt.Outgoing(fin("Assets"), relationship.KindAll)
	require.Len(t, all, 1)
	assert.Equal(t, elrCube, all[0].EffectiveTargetRole())
	assert.True(t, all[0].IsClosed())
	ctx, ok := all[0].ContextElement()
	require.True(t, ok)
	assert.Equal(t, "segment", ctx)

	next := bt.Consecutive(all[0])
	require.Len(t, next, 1)
	assert.Equal(t, relationship.KindHypercubeDimension, next[0].Kind)
	assert.Equal(t, elrCube, next[0].ELR())

	domain := bt.Consecutive(next[0])
	require.Len(t, domain, 1)
	assert.Equal(t, relationship.KindDimensionDomain, domain[0].Kind)
	assert.False(t, domain[0].IsUsable())

	// The same-ELR presentation-style hop does not apply: the chain
	// crossed three ELRs through target roles.
	paths := bt.ConsecutivePaths(fin("Assets"), nil)
	require.Len(t, paths, 1)
	assert.Equal(t, []xbrl.QName{
		fin("Assets"), fin("Cube"), fin("RegionDim"), fin("Regions"), fin("Europe"),
	}, paths[0].Concepts())
}

const labelDoc = `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:labelLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Assets" xlink:label="assets"/>
    <link:label xlink:type="resource" xlink:label="lab" xml:lang="en">Assets, total</link:label>
    <link:labelArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/concept-label"
        xlink:from="assets" xlink:to="lab"/>
  </link:labelLink>
</link:linkbase>`

func TestFragmentKeyedQueries(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/lab.xml", labelDoc})

	labels := bt.Outgoing(fin("Assets"), relationship.KindConceptLabel)
	require.Len(t, labels, 1)
	assert.Equal(t, "Assets, total", labels[0].ResourceText())

	// The label resource is not a concept; its incoming edges are keyed
	// by fragment.
	key := labels[0].Target.Elem.FragmentKey()
	in := bt.IncomingToFragment(key)
	require.Len(t, in, 1)
	assert.Equal(t, fin("Assets"), in[0].SourceConcept())
	assert.Empty(t, bt.OutgoingFromFragment(key))
}

func TestFilterDocumentURIs(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc},
		docFixture{"http://example.com/fin/lab.xml", labelDoc})
	require.Len(t, bt.Relationships(), 3)

	filtered := bt.FilterDocumentURIs(map[string]bool{
		finSchemaURI:                     true,
		"http://example.com/fin/lab.xml": true,
	})
	assert.Len(t, filtered.Relationships(), 1)
	assert.Equal(t, relationship.KindConceptLabel, filtered.Relationships()[0].Kind)
	_, ok := filtered.FindConceptDeclaration(fin("Assets"))
	assert.True(t, ok)
	assert.Len(t, filtered.Base().Documents(), 2)

	// Dropping the schema loses the concepts too.
	bare := bt.FilterDocumentURIs(map[string]bool{
		"http://example.com/fin/pre.xml": true,
	})
	_, ok = bare.FindConceptDeclaration(fin("Assets"))
	assert.False(t, ok)

	// The receiver is unchanged.
	assert.Len(t, bt.Relationships(), 3)
	assert.Len(t, bt.Base().Documents(), 3)
}

func TestFilterRelationships(t *testing.T) {
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc},
		docFixture{"http://example.com/fin/lab.xml", labelDoc})

	pres := bt.FilterRelationships(func(rel relationship.Relationship) bool {
		return rel.Kind == relationship.KindPresentation
	})
	assert.Len(t, pres.Relationships(), 2)
	assert.Empty(t, pres.Outgoing(fin("Assets"), relationship.KindConceptLabel))
	// The base and concepts are shared, not re-derived.
	assert.Same(t, bt.Base(), pres.Base())
}

func TestWithoutProhibited(t *testing.T) {
	prohibiting := `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Assets" xlink:label="assets"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cash" xlink:label="cash"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="assets" xlink:to="cash" order="1"
        use="prohibited" priority="1"/>
  </link:presentationLink>
</link:linkbase>`
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/pre.xml", presentationDoc},
		docFixture{"http://example.com/fin/pro.xml", prohibiting})
	require.Len(t, bt.Relationships(), 3)

	networks, err := bt.ResolveNetworks()
	require.NoError(t, err)
	require.Len(t, networks, 1)

	effective, err := bt.WithoutProhibited()
	require.NoError(t, err)
	out := effective.Outgoing(fin("Assets"))
	require.Len(t, out, 1)
	assert.Equal(t, fin("Receivables"), out[0].TargetConcept())

	// The unresolved taxonomy still exposes all three for diagnostics.
	assert.Len(t, bt.Relationships(), 3)
}

func TestBuildStrictFactoryConfig(t *testing.T) {
	dangling := `<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="schema.xsd#no_such_id" xlink:label="x"/>
    <link:loc xlink:type="locator" xlink:href="schema.xsd#fin_Cash" xlink:label="cash"/>
    <link:presentationArc xlink:type="arc"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child"
        xlink:from="x" xlink:to="cash"/>
  </link:presentationLink>
</link:linkbase>`

	// The default lenient config drops the dangling arc.
	bt := buildTaxonomy(t, NewLoadOptions(),
		docFixture{"http://example.com/fin/bad.xml", dangling})
	assert.Empty(t, bt.Relationships())

	// Strict extraction refuses to build.
	tree, err := xmltree.ParseString(finSchemaDoc, finSchemaURI)
	require.NoError(t, err)
	badTree, err := xmltree.ParseString(dangling, "http://example.com/fin/bad.xml")
	require.NoError(t, err)
	base := taxonomy.Build([]*taxonomy.Document{
		taxonomy.NewDocument(tree), taxonomy.NewDocument(badTree),
	})
	opts := NewLoadOptions().
		WithFactoryConfig(relationship.Strict).
		WithExtraSubstitutionGroups(dimensionHeads)
	_, err = Build(base, opts)
	require.Error(t, err)
}
