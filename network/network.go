// Package network resolves prohibition and overriding: per base set it
// partitions relationships into the retained (effective) set and the
// removed set, following the XBRL 2.1 equivalence and override rules.
package network

import (
	"github.com/xbrlware/tqa/errors"
	"github.com/xbrlware/tqa/relationship"
)

// TieBreakPolicy decides what happens when several normal-use arcs tie at
// the highest priority of an equivalence class. The XBRL 2.1 text is
// ambiguous here; the permissive reading retains all of them.
type TieBreakPolicy uint8

const (
	// TieBreakRetainAll retains every normal-use relationship tied at the
	// highest priority.
	TieBreakRetainAll TieBreakPolicy = iota
	// TieBreakError reports ties as a violation.
	TieBreakError
)

// Result is the retained/removed partition of one base set. The two
// slices together hold exactly the input relationships of the base set,
// in input order.
type Result struct {
	Retained []relationship.Relationship
	Removed  []relationship.Relationship
}

// Networks maps each base set to its resolved partition.
type Networks map[relationship.BaseSetKey]Result

// Compute resolves prohibition and overriding with the permissive
// tie-break policy. It is deterministic and idempotent for a fixed input.
func Compute(relationships []relationship.Relationship) (Networks, error) {
	return ComputeWithPolicy(relationships, TieBreakRetainAll)
}

// ComputeWithPolicy resolves prohibition and overriding under the given
// tie-break policy.
func ComputeWithPolicy(relationships []relationship.Relationship, policy TieBreakPolicy) (Networks, error) {
	baseSets := make(map[relationship.BaseSetKey][]relationship.Relationship)
	var order []relationship.BaseSetKey
	for _, rel := range relationships {
		key := rel.BaseSetKey()
		if _, seen := baseSets[key]; !seen {
			order = append(order, key)
		}
		baseSets[key] = append(baseSets[key], rel)
	}

	networks := make(Networks, len(baseSets))
	for _, key := range order {
		result, err := resolveBaseSet(baseSets[key], policy)
		if err != nil {
			return nil, err
		}
		networks[key] = result
	}
	return networks, nil
}

func resolveBaseSet(relationships []relationship.Relationship, policy TieBreakPolicy) (Result, error) {
	classes := make(map[relationship.Key][]int)
	var classOrder []relationship.Key
	for i, rel := range relationships {
		key := rel.Key()
		if _, seen := classes[key]; !seen {
			classOrder = append(classOrder, key)
		}
		classes[key] = append(classes[key], i)
	}

	retained := make(map[int]bool)
	for _, key := range classOrder {
		indices := classes[key]

		maxPriority := relationships[indices[0]].Priority()
		for _, i := range indices[1:] {
			if p := relationships[i].Priority(); p > maxPriority {
				maxPriority = p
			}
		}

		prohibited := false
		var winners []int
		for _, i := range indices {
			if relationships[i].Priority() != maxPriority {
				continue
			}
			winners = append(winners, i)
			if relationships[i].IsProhibiting() {
				prohibited = true
			}
		}

		// A prohibiting arc at the winning priority removes the whole
		// equivalence class, not just the arcs it shares a locator with.
		if prohibited {
			continue
		}
		if len(winners) > 1 && policy == TieBreakError {
			rel := relationships[winners[0]]
			violation := errors.Newf(errors.ErrAmbiguousPriorityTie, rel.Arc.Elem.Doc.URI(),
				"%d normal-use relationships tied at priority %d in ELR %s for arcrole %s",
				len(winners), maxPriority, rel.ELR(), rel.Arcrole())
			return Result{}, &violation
		}
		for _, i := range winners {
			retained[i] = true
		}
	}

	var result Result
	for i, rel := range relationships {
		if retained[i] {
			result.Retained = append(result.Retained, rel)
		} else {
			result.Removed = append(result.Removed, rel)
		}
	}
	return result, nil
}
