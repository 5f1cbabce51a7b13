package tqa

import (
	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// Outgoing returns the relationships whose source is the given concept,
// restricted to the given kinds. With no kinds, every outgoing
// relationship is returned. Kind filtering is a tag test over the
// concept's edges, not a separate index; fan-out per concept is small.
func (bt *BasicTaxonomy) Outgoing(concept xbrl.QName, kinds ...relationship.Kind) []relationship.Relationship {
	return filterKinds(bt.bySource[concept], kinds)
}

// Incoming returns the relationships whose target is the given concept,
// restricted to the given kinds.
func (bt *BasicTaxonomy) Incoming(concept xbrl.QName, kinds ...relationship.Kind) []relationship.Relationship {
	return filterKinds(bt.byTarget[concept], kinds)
}

// OutgoingFromFragment returns the relationships whose source is the
// element with the given fragment key; non-standard relationships are
// keyed this way.
func (bt *BasicTaxonomy) OutgoingFromFragment(key xmltree.FragmentKey, kinds ...relationship.Kind) []relationship.Relationship {
	return filterKinds(bt.nonStdBySource[key], kinds)
}

// IncomingToFragment returns the relationships whose target is the
// element with the given fragment key.
func (bt *BasicTaxonomy) IncomingToFragment(key xmltree.FragmentKey, kinds ...relationship.Kind) []relationship.Relationship {
	return filterKinds(bt.nonStdByTarget[key], kinds)
}

func filterKinds(relationships []relationship.Relationship, kinds []relationship.Kind) []relationship.Relationship {
	if len(kinds) == 0 {
		return relationships
	}
	var out []relationship.Relationship
	for _, rel := range relationships {
		for _, kind := range kinds {
			if rel.Kind == kind {
				out = append(out, rel)
				break
			}
		}
	}
	return out
}

// Consecutive returns the outgoing relationships from rel's target that
// can follow rel, restricted to the given kinds.
func (bt *BasicTaxonomy) Consecutive(rel relationship.Relationship, kinds ...relationship.Kind) []relationship.Relationship {
	var out []relationship.Relationship
	for _, next := range bt.Outgoing(rel.TargetConcept(), kinds...) {
		if relationship.IsConsecutive(rel, next) {
			out = append(out, next)
		}
	}
	return out
}
