package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xbrlware/tqa/xbrl"
)

func TestSubstitutionGroupMapPrunesDanglingEntries(t *testing.T) {
	base := testBase(t)
	groups := base.SubstitutionGroupMap()

	// A is used as B's substitution group, so its own mapping survives.
	head, ok := groups[xbrl.Name(testNS, "A")]
	require.True(t, ok)
	assert.Equal(t, xbrl.ItemEName, head)

	// Cube declares a group but nothing substitutes for Cube.
	_, ok = groups[xbrl.Name(testNS, "Cube")]
	assert.False(t, ok)
}

func TestHasSubstitutionGroupTransitive(t *testing.T) {
	base := testBase(t)
	groups := base.SubstitutionGroupMap()

	declA, _ := base.FindGlobalElementDeclaration(xbrl.Name(testNS, "A"))
	declB, _ := base.FindGlobalElementDeclaration(xbrl.Name(testNS, "B"))
	declPlain, _ := base.FindGlobalElementDeclaration(xbrl.Name(testNS, "Plain"))

	assert.True(t, HasSubstitutionGroup(declA, xbrl.ItemEName, groups))
	assert.True(t, HasSubstitutionGroup(declB, xbrl.ItemEName, groups), "B -> A -> item")
	assert.True(t, HasSubstitutionGroup(declB, xbrl.Name(testNS, "A"), groups))
	assert.False(t, HasSubstitutionGroup(declA, xbrl.TupleEName, groups))
	assert.False(t, HasSubstitutionGroup(declPlain, xbrl.ItemEName, groups))
}

func TestHasSubstitutionGroupWithExtraMap(t *testing.T) {
	base := testBase(t)
	declCube, _ := base.FindGlobalElementDeclaration(xbrl.Name(testNS, "Cube"))

	groups := base.SubstitutionGroupMap()
	assert.False(t, HasSubstitutionGroup(declCube, xbrl.ItemEName, groups),
		"without the xbrldt schema the hypercube head is unknown")

	merged := groups.Merge(dimensionGroups)
	assert.True(t, HasSubstitutionGroup(declCube, xbrl.ItemEName, merged))
}

func TestHasSubstitutionGroupCycleTerminates(t *testing.T) {
	cyclic := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:my="urn:s" targetNamespace="urn:s">
  <xs:element name="X" substitutionGroup="my:Y"/>
  <xs:element name="Y" substitutionGroup="my:X"/>
</xs:schema>`
	base := buildTestBase(t, map[string]string{"http://example.com/s.xsd": cyclic})
	decl, _ := base.FindGlobalElementDeclaration(xbrl.Name("urn:s", "X"))

	assert.False(t, HasSubstitutionGroup(decl, xbrl.ItemEName, base.SubstitutionGroupMap()),
		"cyclic declarations are not members of anything past the cycle")
}
