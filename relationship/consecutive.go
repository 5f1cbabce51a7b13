package relationship

// IsConsecutive reports whether next can follow prev in a relationship
// chain. Non-dimensional relationships chain on an identical arc role and
// ELR; dimensional relationships have kind-specific rules and chain into
// the previous relationship's effective target role.
func IsConsecutive(prev, next Relationship) bool {
	if prev.TargetConcept().IsZero() || prev.TargetConcept() != next.SourceConcept() {
		return false
	}

	if !prev.Kind.IsDimensional() {
		return next.Kind == prev.Kind && next.Arcrole() == prev.Arcrole() && next.ELR() == prev.ELR()
	}

	if next.ELR() != prev.EffectiveTargetRole() {
		return false
	}
	switch prev.Kind {
	case KindAll, KindNotAll:
		return next.Kind == KindHypercubeDimension
	case KindHypercubeDimension:
		return next.Kind == KindDimensionDomain || next.Kind == KindDimensionDefault
	case KindDimensionDomain, KindDomainMember:
		return next.Kind == KindDomainMember
	default:
		// dimension-default ends a chain.
		return false
	}
}
