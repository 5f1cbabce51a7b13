package relationship

import "github.com/xbrlware/tqa/xbrl"

// StandardLabelResourceRole is the default role of label resources.
const StandardLabelResourceRole = "http://www.xbrl.org/2003/role/label"

// StandardReferenceResourceRole is the default role of reference resources.
const StandardReferenceResourceRole = "http://www.xbrl.org/2003/role/reference"

// EffectiveTargetRole returns the extended link role a consecutive
// dimensional relationship must live in: the arc's xbrldt:targetRole when
// present, otherwise the relationship's own ELR.
func (r Relationship) EffectiveTargetRole() string {
	if role, ok := r.Arc.Elem.Attribute(xbrl.XBRLDTTargetRoleEName); ok {
		return r.Arc.Elem.ResolveURI(role)
	}
	return r.Arc.ELR
}

// IsUsable reports the xbrldt:usable flag of a dimension-domain or
// domain-member relationship; it defaults to true.
func (r Relationship) IsUsable() bool {
	value, ok := r.Arc.Elem.Attribute(xbrl.XBRLDTUsableEName)
	if !ok {
		return true
	}
	return value == "true" || value == "1"
}

// ContextElement returns the xbrldt:contextElement attribute of a
// has-hypercube relationship.
func (r Relationship) ContextElement() (string, bool) {
	return r.Arc.Elem.Attribute(xbrl.XBRLDTContextElementEName)
}

// IsClosed reports the xbrldt:closed flag of a has-hypercube
// relationship; it defaults to false.
func (r Relationship) IsClosed() bool {
	value, ok := r.Arc.Elem.Attribute(xbrl.XBRLDTClosedEName)
	if !ok {
		return false
	}
	return value == "true" || value == "1"
}

// ResourceRole returns the role of the target resource, with the standard
// default for label and reference resources.
func (r Relationship) ResourceRole() string {
	if r.Target.Resource == nil {
		return ""
	}
	if r.Target.Resource.Role != "" {
		return r.Target.Resource.Role
	}
	switch r.Kind {
	case KindConceptLabel:
		return StandardLabelResourceRole
	case KindConceptReference:
		return StandardReferenceResourceRole
	}
	return ""
}

// ResourceText returns the text content of the target resource.
func (r Relationship) ResourceText() string {
	if r.Target.Resource == nil {
		return ""
	}
	return r.Target.Resource.Elem.Text()
}

// ResourceLanguage returns the xml:lang of the target resource, inherited
// from ancestor elements when not declared on the resource itself.
func (r Relationship) ResourceLanguage() (string, bool) {
	if r.Target.Resource == nil {
		return "", false
	}
	for elem := r.Target.Resource.Elem; elem.IsValid(); elem = elem.Parent() {
		if lang, ok := elem.Attribute(langAttrName); ok {
			return lang, true
		}
		if lang, ok := elem.Attribute(langAttrPrefixed); ok {
			return lang, true
		}
	}
	return "", false
}

var (
	langAttrName = xbrl.Name(xbrl.XMLNamespace, "lang")
	// encoding/xml sometimes surfaces the reserved prefix itself.
	langAttrPrefixed = xbrl.Name(xbrl.XMLPrefix, "lang")
)
