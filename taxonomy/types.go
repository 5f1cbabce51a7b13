package taxonomy

import "github.com/xbrlware/tqa/xbrl"

// FindBaseTypeOrSelf walks the named-type inheritance chain starting at
// typeName until pred holds, returning that type definition. The walk
// stops without a match when the chain leaves the named types of the base
// or revisits a type; schema-valid input cannot have cyclic base chains,
// but malformed input must not loop.
func (b *Base) FindBaseTypeOrSelf(typeName xbrl.QName, pred func(TypeDef) bool) (TypeDef, bool) {
	visited := make(map[xbrl.QName]bool)
	current := typeName
	for {
		if visited[current] {
			return TypeDef{}, false
		}
		visited[current] = true

		def, ok := b.namedTypeDefs[current]
		if !ok {
			return TypeDef{}, false
		}
		if pred(def) {
			return def, true
		}
		base, ok := def.BaseTypeQName()
		if !ok {
			return TypeDef{}, false
		}
		current = base
	}
}
