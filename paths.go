package tqa

import (
	"slices"

	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/xbrl"
)

// Path is a non-empty chain of relationships where each relationship's
// target is the next relationship's source.
type Path struct {
	relationships []relationship.Relationship
}

// Relationships returns the chain, in source-to-target order.
func (p Path) Relationships() []relationship.Relationship {
	return p.relationships
}

// Length returns the number of relationships in the path.
func (p Path) Length() int {
	return len(p.relationships)
}

// SourceConcept returns the concept the path starts at.
func (p Path) SourceConcept() xbrl.QName {
	return p.relationships[0].SourceConcept()
}

// TargetConcept returns the concept the path ends at.
func (p Path) TargetConcept() xbrl.QName {
	return p.relationships[len(p.relationships)-1].TargetConcept()
}

// Concepts returns the concept sequence along the path, sources first.
func (p Path) Concepts() []xbrl.QName {
	out := make([]xbrl.QName, 0, len(p.relationships)+1)
	out = append(out, p.SourceConcept())
	for _, rel := range p.relationships {
		out = append(out, rel.TargetConcept())
	}
	return out
}

// HasCycle reports whether a concept occurs more than once on the path.
func (p Path) HasCycle() bool {
	seen := make(map[xbrl.QName]bool)
	for _, concept := range p.Concepts() {
		if seen[concept] {
			return true
		}
		seen[concept] = true
	}
	return false
}

// PathPredicate restricts path growth; a path is only extended when every
// non-empty prefix (suffix for incoming paths) satisfies the predicate.
type PathPredicate func(Path) bool

// OutgoingPaths enumerates the maximal outgoing relationship paths from
// start, depth-first. Extension stops when the predicate rejects the
// extended path or when the extension's target concept already occurs on
// the path; a path truncated at a cycle is returned as-is rather than
// discarded, so callers can detect and report the cycle. Termination is
// guaranteed on arbitrarily cyclic graphs.
func (bt *BasicTaxonomy) OutgoingPaths(start xbrl.QName, pred PathPredicate, kinds ...relationship.Kind) []Path {
	var out []Path
	var dfs func(concept xbrl.QName, prefix []relationship.Relationship, onPath map[xbrl.QName]bool)
	dfs = func(concept xbrl.QName, prefix []relationship.Relationship, onPath map[xbrl.QName]bool) {
		extended := false
		for _, rel := range bt.Outgoing(concept, kinds...) {
			candidate := Path{relationships: append(slices.Clone(prefix), rel)}
			if pred != nil && !pred(candidate) {
				continue
			}
			extended = true
			target := rel.TargetConcept()
			if onPath[target] {
				out = append(out, candidate)
				continue
			}
			onPath[target] = true
			dfs(target, candidate.relationships, onPath)
			delete(onPath, target)
		}
		if !extended && len(prefix) > 0 {
			out = append(out, Path{relationships: prefix})
		}
	}
	dfs(start, nil, map[xbrl.QName]bool{start: true})
	return out
}

// IncomingPaths enumerates the maximal incoming relationship paths ending
// at start, depth-first, growing backwards at the source end. Cycle
// truncation mirrors OutgoingPaths.
func (bt *BasicTaxonomy) IncomingPaths(start xbrl.QName, pred PathPredicate, kinds ...relationship.Kind) []Path {
	var out []Path
	var dfs func(concept xbrl.QName, suffix []relationship.Relationship, onPath map[xbrl.QName]bool)
	dfs = func(concept xbrl.QName, suffix []relationship.Relationship, onPath map[xbrl.QName]bool) {
		extended := false
		for _, rel := range bt.Incoming(concept, kinds...) {
			chain := make([]relationship.Relationship, 0, len(suffix)+1)
			chain = append(chain, rel)
			chain = append(chain, suffix...)
			candidate := Path{relationships: chain}
			if pred != nil && !pred(candidate) {
				continue
			}
			extended = true
			source := rel.SourceConcept()
			if onPath[source] {
				out = append(out, candidate)
				continue
			}
			onPath[source] = true
			dfs(source, candidate.relationships, onPath)
			delete(onPath, source)
		}
		if !extended && len(suffix) > 0 {
			out = append(out, Path{relationships: suffix})
		}
	}
	dfs(start, nil, map[xbrl.QName]bool{start: true})
	return out
}

// ConsecutivePaths enumerates outgoing paths whose adjacent relationships
// are consecutive (see relationship.IsConsecutive), optionally further
// restricted by pred. Callers generally want this form over the raw
// OutgoingPaths.
func (bt *BasicTaxonomy) ConsecutivePaths(start xbrl.QName, pred PathPredicate, kinds ...relationship.Kind) []Path {
	combined := func(p Path) bool {
		n := len(p.relationships)
		if n >= 2 && !relationship.IsConsecutive(p.relationships[n-2], p.relationships[n-1]) {
			return false
		}
		return pred == nil || pred(p)
	}
	return bt.OutgoingPaths(start, combined, kinds...)
}
