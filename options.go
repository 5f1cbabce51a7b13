package tqa

import (
	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/taxonomy"
)

// LoadOptions configures taxonomy construction. The zero value is valid:
// lenient extraction, all arcs, no extra substitution groups.
type LoadOptions struct {
	factory                 relationship.Config
	factorySet              bool
	arcFilter               relationship.ArcFilter
	extraSubstitutionGroups taxonomy.SubstitutionGroupMap
}

// NewLoadOptions returns a default, valid load options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// WithFactoryConfig sets the relationship factory strictness config.
func (o LoadOptions) WithFactoryConfig(cfg relationship.Config) LoadOptions {
	o.factory = cfg
	o.factorySet = true
	return o
}

// WithArcFilter sets the arc filter applied before extraction.
func (o LoadOptions) WithArcFilter(filter relationship.ArcFilter) LoadOptions {
	o.arcFilter = filter
	return o
}

// WithExtraSubstitutionGroups adds manually asserted substitution group
// mappings, for cross-taxonomy or deprecated heads the document set does
// not declare itself.
func (o LoadOptions) WithExtraSubstitutionGroups(groups taxonomy.SubstitutionGroupMap) LoadOptions {
	o.extraSubstitutionGroups = groups
	return o
}

func (o LoadOptions) factoryConfig() relationship.Config {
	if o.factorySet {
		return o.factory
	}
	return relationship.Lenient
}
