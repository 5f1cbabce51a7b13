package taxonomy

import (
	"github.com/xbrlware/tqa/errors"
	"github.com/xbrlware/tqa/xbrl"
)

// ConceptKind tags the closed set of concept declaration variants.
type ConceptKind uint8

const (
	// ConceptPrimaryItem is an item concept that is neither a hypercube
	// nor a dimension.
	ConceptPrimaryItem ConceptKind = iota + 1
	// ConceptHypercube is a hypercube item concept.
	ConceptHypercube
	// ConceptExplicitDimension is a dimension item without a typed domain.
	ConceptExplicitDimension
	// ConceptTypedDimension is a dimension item with a typed domain.
	ConceptTypedDimension
	// ConceptTuple is a tuple concept.
	ConceptTuple
)

// String returns the kind tag for display.
func (k ConceptKind) String() string {
	switch k {
	case ConceptPrimaryItem:
		return "primaryItem"
	case ConceptHypercube:
		return "hypercube"
	case ConceptExplicitDimension:
		return "explicitDimension"
	case ConceptTypedDimension:
		return "typedDimension"
	case ConceptTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// ConceptDeclaration is a classified view of a global element
// declaration. It is only meaningful relative to the substitution group
// map it was classified under.
type ConceptDeclaration struct {
	Kind ConceptKind
	Decl ElementDecl
}

// EName returns the concept's qualified name.
func (c ConceptDeclaration) EName() xbrl.QName {
	return c.Decl.TargetEName()
}

// IsItem reports whether the concept is in the item substitution group.
func (c ConceptDeclaration) IsItem() bool {
	return c.Kind != ConceptTuple
}

// IsDimension reports whether the concept is a typed or explicit dimension.
func (c ConceptDeclaration) IsDimension() bool {
	return c.Kind == ConceptExplicitDimension || c.Kind == ConceptTypedDimension
}

// TypedDomainRef returns the typed dimension's domain reference as an
// absolute URI. It fails for other kinds and for typed dimensions whose
// required attribute is absent; the failure surfaces at access time so
// invalid taxonomies stay queryable up to the malformed property.
func (c ConceptDeclaration) TypedDomainRef() (string, error) {
	ref, ok := c.Decl.TypedDomainRef()
	if c.Kind != ConceptTypedDimension || !ok {
		violation := errors.Newf(errors.ErrMissingTypedDomainRef, c.Decl.Elem.BaseURI(),
			"concept %s has no typed domain reference", c.EName())
		return "", &violation
	}
	return ref, nil
}

// ClassifyConcept classifies a global element declaration under the given
// substitution group map. It returns ok = false for declarations that are
// not concepts, and an error only for data-integrity violations: being in
// both the item and tuple groups, being a hypercube and a dimension at
// once, or being a hypercube or dimension without being an item.
func ClassifyConcept(decl ElementDecl, groups SubstitutionGroupMap) (ConceptDeclaration, bool, error) {
	name := decl.TargetEName()
	isItem := HasSubstitutionGroup(decl, xbrl.ItemEName, groups)
	isTuple := HasSubstitutionGroup(decl, xbrl.TupleEName, groups)
	isHypercube := HasSubstitutionGroup(decl, xbrl.HypercubeItemEName, groups)
	isDimension := HasSubstitutionGroup(decl, xbrl.DimensionItemEName, groups)

	if isItem && isTuple {
		violation := errors.Newf(errors.ErrConceptBothItemAndTuple, decl.Elem.BaseURI(),
			"concept %s is in both the item and tuple substitution groups", name)
		return ConceptDeclaration{}, false, &violation
	}
	if isHypercube && isDimension {
		violation := errors.Newf(errors.ErrConceptHypercubeAndDimension, decl.Elem.BaseURI(),
			"concept %s is in both the hypercube and dimension substitution groups", name)
		return ConceptDeclaration{}, false, &violation
	}
	if !isItem {
		if isHypercube || isDimension {
			violation := errors.Newf(errors.ErrConceptHypercubeAndDimension, decl.Elem.BaseURI(),
				"concept %s is a hypercube or dimension but not an item", name)
			return ConceptDeclaration{}, false, &violation
		}
		if !isTuple {
			return ConceptDeclaration{}, false, nil
		}
		return ConceptDeclaration{Kind: ConceptTuple, Decl: decl}, true, nil
	}

	switch {
	case isHypercube:
		return ConceptDeclaration{Kind: ConceptHypercube, Decl: decl}, true, nil
	case isDimension:
		if _, ok := decl.TypedDomainRef(); ok {
			return ConceptDeclaration{Kind: ConceptTypedDimension, Decl: decl}, true, nil
		}
		return ConceptDeclaration{Kind: ConceptExplicitDimension, Decl: decl}, true, nil
	default:
		return ConceptDeclaration{Kind: ConceptPrimaryItem, Decl: decl}, true, nil
	}
}

// BuildConceptIndex classifies every global element declaration of the
// base under its substitution group map merged with extra. The first
// data-integrity violation aborts the build.
func BuildConceptIndex(base *Base, extra SubstitutionGroupMap) (map[xbrl.QName]ConceptDeclaration, error) {
	groups := base.SubstitutionGroupMap().Merge(extra)
	concepts := make(map[xbrl.QName]ConceptDeclaration)
	for name, decl := range base.GlobalElementDeclarations() {
		concept, ok, err := ClassifyConcept(decl, groups)
		if err != nil {
			return nil, err
		}
		if ok {
			concepts[name] = concept
		}
	}
	return concepts, nil
}
