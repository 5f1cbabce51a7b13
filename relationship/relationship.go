// Package relationship turns harvested XLink arcs into typed relationship
// values and computes the equivalence keys used for prohibition and
// overriding.
package relationship

import (
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xlink"
	"github.com/xbrlware/tqa/xmltree"
)

// Kind tags the closed set of relationship variants.
type Kind uint8

const (
	// KindUnknown marks an arc whose arc role or endpoint shapes are not
	// recognized. The raw endpoints are preserved so validators can
	// report on it.
	KindUnknown Kind = iota
	// KindPresentation is a parent-child presentation relationship.
	KindPresentation
	// KindCalculation is a summation-item calculation relationship.
	KindCalculation
	// KindGeneralSpecial is a general-special definition relationship.
	KindGeneralSpecial
	// KindEssenceAlias is an essence-alias definition relationship.
	KindEssenceAlias
	// KindSimilarTuples is a similar-tuples definition relationship.
	KindSimilarTuples
	// KindRequiresElement is a requires-element definition relationship.
	KindRequiresElement
	// KindAll is a has-hypercube (all) dimensional relationship.
	KindAll
	// KindNotAll is a has-hypercube (notAll) dimensional relationship.
	KindNotAll
	// KindHypercubeDimension is a hypercube-dimension relationship.
	KindHypercubeDimension
	// KindDimensionDomain is a dimension-domain relationship.
	KindDimensionDomain
	// KindDomainMember is a domain-member relationship.
	KindDomainMember
	// KindDimensionDefault is a dimension-default relationship.
	KindDimensionDefault
	// KindConceptLabel links a concept to a label resource.
	KindConceptLabel
	// KindConceptReference links a concept to a reference resource.
	KindConceptReference
	// KindNonStandard is a generic-link relationship keyed by fragment
	// keys; formula and table linkbases live here.
	KindNonStandard
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindPresentation:       "presentation",
	KindCalculation:        "calculation",
	KindGeneralSpecial:     "generalSpecial",
	KindEssenceAlias:       "essenceAlias",
	KindSimilarTuples:      "similarTuples",
	KindRequiresElement:    "requiresElement",
	KindAll:                "all",
	KindNotAll:             "notAll",
	KindHypercubeDimension: "hypercubeDimension",
	KindDimensionDomain:    "dimensionDomain",
	KindDomainMember:       "domainMember",
	KindDimensionDefault:   "dimensionDefault",
	KindConceptLabel:       "conceptLabel",
	KindConceptReference:   "conceptReference",
	KindNonStandard:        "nonStandard",
}

// String returns the kind tag for display.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsStandard reports whether the kind belongs to the standard relationship
// family: both endpoints resolved through standard XLink locators.
func (k Kind) IsStandard() bool {
	return k.IsInterConcept() || k.IsConceptResource()
}

// IsInterConcept reports whether both endpoints are concepts.
func (k Kind) IsInterConcept() bool {
	switch k {
	case KindPresentation, KindCalculation, KindGeneralSpecial, KindEssenceAlias,
		KindSimilarTuples, KindRequiresElement:
		return true
	}
	return k.IsDimensional()
}

// IsDimensional reports whether the kind is an XBRL Dimensions relationship.
func (k Kind) IsDimensional() bool {
	switch k {
	case KindAll, KindNotAll, KindHypercubeDimension, KindDimensionDomain,
		KindDomainMember, KindDimensionDefault:
		return true
	}
	return false
}

// IsConceptResource reports whether the kind links a concept to a resource.
func (k Kind) IsConceptResource() bool {
	return k == KindConceptLabel || k == KindConceptReference
}

// EndpointKey identifies a relationship endpoint for equivalence purposes:
// the concept name for locator-resolved concepts, otherwise the structural
// fragment key of the endpoint element.
type EndpointKey struct {
	Concept xbrl.QName
	Frag    xmltree.FragmentKey
}

// Endpoint is one end of a relationship: the resolved element plus the
// locator or resource it came from.
type Endpoint struct {
	// Elem is the resolved endpoint element: a global element declaration
	// for concept endpoints, the resource element for resource endpoints,
	// or the raw referenced element otherwise.
	Elem xmltree.Elem
	// Concept is the concept name for endpoints that resolve to a global
	// element declaration; zero otherwise.
	Concept xbrl.QName
	// Locator is the locator the endpoint was resolved through, if any.
	Locator *xlink.Locator
	// Resource is the resource the endpoint is, if any.
	Resource *xlink.Resource
}

// IsConcept reports whether the endpoint resolved to a concept declaration.
func (e Endpoint) IsConcept() bool {
	return !e.Concept.IsZero()
}

// Key returns the endpoint's equivalence key.
func (e Endpoint) Key() EndpointKey {
	if e.IsConcept() {
		return EndpointKey{Concept: e.Concept}
	}
	return EndpointKey{Frag: e.Elem.FragmentKey()}
}

// Relationship is one directed, labeled edge extracted from an arc. One
// arc yields one relationship per (from, to) endpoint pair.
type Relationship struct {
	Kind   Kind
	Arc    xlink.Arc
	Source Endpoint
	Target Endpoint
}

// Arcrole returns the arc role URI.
func (r Relationship) Arcrole() string {
	return r.Arc.Arcrole
}

// ELR returns the extended link role the relationship belongs to.
func (r Relationship) ELR() string {
	return r.Arc.ELR
}

// Order returns the arc order, defaulting to 1.
func (r Relationship) Order() float64 {
	return r.Arc.Order
}

// Priority returns the arc priority, defaulting to 0.
func (r Relationship) Priority() int {
	return r.Arc.Priority
}

// IsProhibiting reports whether the underlying arc carries use="prohibited".
func (r Relationship) IsProhibiting() bool {
	return r.Arc.IsProhibited()
}

// SourceConcept returns the source concept name; zero for non-concept sources.
func (r Relationship) SourceConcept() xbrl.QName {
	return r.Source.Concept
}

// TargetConcept returns the target concept name; zero for non-concept targets.
func (r Relationship) TargetConcept() xbrl.QName {
	return r.Target.Concept
}

// BaseSetKey returns the base set the relationship belongs to.
func (r Relationship) BaseSetKey() BaseSetKey {
	return BaseSetKey{
		ELR:      r.Arc.ELR,
		Arcrole:  r.Arc.Arcrole,
		ArcEName: r.Arc.Elem.Name(),
	}
}
