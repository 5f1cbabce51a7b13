// Package tqa is an in-memory object model and query engine for XBRL
// taxonomies. A BasicTaxonomy bundles an indexed taxonomy base with its
// extracted relationships, classified concepts and the source/target
// indices the graph queries run on. All of it is immutable after
// construction, so concurrent reads need no locking.
package tqa

import (
	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/taxonomy"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// BasicTaxonomy is the queryable taxonomy object. Build once, query many.
type BasicTaxonomy struct {
	base          *taxonomy.Base
	concepts      map[xbrl.QName]taxonomy.ConceptDeclaration
	relationships []relationship.Relationship

	bySource map[xbrl.QName][]relationship.Relationship
	byTarget map[xbrl.QName][]relationship.Relationship

	nonStdBySource map[xmltree.FragmentKey][]relationship.Relationship
	nonStdByTarget map[xmltree.FragmentKey][]relationship.Relationship
}

// Build constructs a BasicTaxonomy from an already indexed base.
func Build(base *taxonomy.Base, opts LoadOptions) (*BasicTaxonomy, error) {
	concepts, err := taxonomy.BuildConceptIndex(base, opts.extraSubstitutionGroups)
	if err != nil {
		return nil, err
	}
	relationships, err := relationship.Extract(base, opts.arcFilter, opts.factoryConfig())
	if err != nil {
		return nil, err
	}
	return fromParts(base, concepts, relationships), nil
}

func fromParts(base *taxonomy.Base, concepts map[xbrl.QName]taxonomy.ConceptDeclaration, relationships []relationship.Relationship) *BasicTaxonomy {
	bt := &BasicTaxonomy{
		base:           base,
		concepts:       concepts,
		relationships:  relationships,
		bySource:       make(map[xbrl.QName][]relationship.Relationship),
		byTarget:       make(map[xbrl.QName][]relationship.Relationship),
		nonStdBySource: make(map[xmltree.FragmentKey][]relationship.Relationship),
		nonStdByTarget: make(map[xmltree.FragmentKey][]relationship.Relationship),
	}
	for _, rel := range relationships {
		if rel.Source.IsConcept() {
			bt.bySource[rel.SourceConcept()] = append(bt.bySource[rel.SourceConcept()], rel)
		} else {
			key := rel.Source.Elem.FragmentKey()
			bt.nonStdBySource[key] = append(bt.nonStdBySource[key], rel)
		}
		if rel.Target.IsConcept() {
			bt.byTarget[rel.TargetConcept()] = append(bt.byTarget[rel.TargetConcept()], rel)
		} else {
			key := rel.Target.Elem.FragmentKey()
			bt.nonStdByTarget[key] = append(bt.nonStdByTarget[key], rel)
		}
	}
	return bt
}

// Base returns the underlying taxonomy base.
func (bt *BasicTaxonomy) Base() *taxonomy.Base {
	return bt.base
}

// Relationships returns every extracted relationship, in extraction order.
func (bt *BasicTaxonomy) Relationships() []relationship.Relationship {
	return bt.relationships
}

// ConceptDeclarations returns the classified concepts keyed by name. The
// map aliases the taxonomy; do not modify it.
func (bt *BasicTaxonomy) ConceptDeclarations() map[xbrl.QName]taxonomy.ConceptDeclaration {
	return bt.concepts
}

// FindConceptDeclaration returns the classified concept with the given name.
func (bt *BasicTaxonomy) FindConceptDeclaration(name xbrl.QName) (taxonomy.ConceptDeclaration, bool) {
	concept, ok := bt.concepts[name]
	return concept, ok
}

// FilterDocumentURIs returns a new taxonomy restricted to documents whose
// URI is in keep. Concepts and relationships are re-derived from the
// filtered base; the receiver is unchanged.
func (bt *BasicTaxonomy) FilterDocumentURIs(keep map[string]bool) *BasicTaxonomy {
	base := bt.base.FilterDocumentURIs(keep)

	concepts := make(map[xbrl.QName]taxonomy.ConceptDeclaration)
	for name, concept := range bt.concepts {
		if _, ok := base.FindGlobalElementDeclaration(name); ok {
			concepts[name] = concept
		}
	}
	var kept []relationship.Relationship
	for _, rel := range bt.relationships {
		if keep[rel.Arc.Elem.Doc.URI()] {
			kept = append(kept, rel)
		}
	}
	return fromParts(base, concepts, kept)
}

// FilterRelationships returns a new taxonomy holding only relationships
// accepted by pred, over the same base and concepts.
func (bt *BasicTaxonomy) FilterRelationships(pred func(relationship.Relationship) bool) *BasicTaxonomy {
	var kept []relationship.Relationship
	for _, rel := range bt.relationships {
		if pred(rel) {
			kept = append(kept, rel)
		}
	}
	return fromParts(bt.base, bt.concepts, kept)
}
