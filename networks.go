package tqa

import (
	"github.com/xbrlware/tqa/network"
	"github.com/xbrlware/tqa/relationship"
)

// ResolveNetworks computes the prohibition/overriding partition of every
// base set. The resolver runs on demand: the raw unresolved relationship
// set stays available for diagnostics.
func (bt *BasicTaxonomy) ResolveNetworks() (network.Networks, error) {
	return network.Compute(bt.relationships)
}

// WithoutProhibited returns a new taxonomy holding only the relationships
// retained after prohibition/overriding resolution.
func (bt *BasicTaxonomy) WithoutProhibited() (*BasicTaxonomy, error) {
	networks, err := bt.ResolveNetworks()
	if err != nil {
		return nil, err
	}
	retained := make(map[relationship.Relationship]bool)
	for _, result := range networks {
		for _, rel := range result.Retained {
			retained[rel] = true
		}
	}
	return bt.FilterRelationships(func(rel relationship.Relationship) bool {
		return retained[rel]
	}), nil
}
