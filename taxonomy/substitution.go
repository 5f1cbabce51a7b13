package taxonomy

import "github.com/xbrlware/tqa/xbrl"

// SubstitutionGroupMap maps an element name that is itself used as a
// substitution group head to the head it declares in turn. Only names
// that actually occur as some declaration's substitution group target are
// mapped; dangling entries are pruned at build time.
type SubstitutionGroupMap map[xbrl.QName]xbrl.QName

// Merge returns the union of the map and extra, with extra winning on
// conflicting keys. Taxonomies occasionally need a manually asserted
// addition for cross-taxonomy or deprecated heads.
func (m SubstitutionGroupMap) Merge(extra SubstitutionGroupMap) SubstitutionGroupMap {
	if len(extra) == 0 {
		return m
	}
	merged := make(SubstitutionGroupMap, len(m)+len(extra))
	for name, head := range m {
		merged[name] = head
	}
	for name, head := range extra {
		merged[name] = head
	}
	return merged
}

func buildSubstitutionGroupMap(base *Base) SubstitutionGroupMap {
	usedHeads := make(map[xbrl.QName]bool)
	for _, decl := range base.elementDecls {
		if head, ok := decl.SubstitutionGroup(); ok {
			usedHeads[head] = true
		}
	}

	result := make(SubstitutionGroupMap)
	for name, decl := range base.elementDecls {
		head, ok := decl.SubstitutionGroup()
		if !ok {
			continue
		}
		if usedHeads[name] {
			result[name] = head
		}
	}
	return result
}

// HasSubstitutionGroup reports whether the declaration is, directly or
// transitively, in the substitution group headed by candidate. The walk
// terminates on cyclic declarations; a cycle means "not a member".
func HasSubstitutionGroup(decl ElementDecl, candidate xbrl.QName, groups SubstitutionGroupMap) bool {
	head, ok := decl.SubstitutionGroup()
	if !ok {
		return false
	}
	visited := make(map[xbrl.QName]bool)
	for {
		if head == candidate {
			return true
		}
		if visited[head] {
			return false
		}
		visited[head] = true
		next, ok := groups[head]
		if !ok {
			return false
		}
		head = next
	}
}
