package taxonomy

import (
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// ElementDecl is a view over a global xs:element declaration.
type ElementDecl struct {
	Elem            xmltree.Elem
	targetNamespace string
}

// TargetEName returns the declaration's qualified name: target namespace
// plus the name attribute.
func (d ElementDecl) TargetEName() xbrl.QName {
	name, _ := d.Elem.LocalAttribute("name")
	return xbrl.Name(d.targetNamespace, name)
}

// SubstitutionGroup returns the declared substitution group head, resolved
// in the declaration's namespace scope.
func (d ElementDecl) SubstitutionGroup() (xbrl.QName, bool) {
	lexical, ok := d.Elem.LocalAttribute("substitutionGroup")
	if !ok {
		return xbrl.QName{}, false
	}
	head, err := d.Elem.ResolveQNameValue(lexical)
	if err != nil {
		return xbrl.QName{}, false
	}
	return head, true
}

// TypeQName returns the declared type reference, if any.
func (d ElementDecl) TypeQName() (xbrl.QName, bool) {
	lexical, ok := d.Elem.LocalAttribute("type")
	if !ok {
		return xbrl.QName{}, false
	}
	name, err := d.Elem.ResolveQNameValue(lexical)
	if err != nil {
		return xbrl.QName{}, false
	}
	return name, true
}

// IsAbstract reports whether the declaration carries abstract="true".
func (d ElementDecl) IsAbstract() bool {
	value, ok := d.Elem.LocalAttribute("abstract")
	return ok && (value == "true" || value == "1")
}

// PeriodType returns the xbrli:periodType attribute, if present.
func (d ElementDecl) PeriodType() (string, bool) {
	return d.Elem.Attribute(xbrl.Name(xbrl.XBRLINamespace, "periodType"))
}

// Balance returns the xbrli:balance attribute, if present.
func (d ElementDecl) Balance() (string, bool) {
	return d.Elem.Attribute(xbrl.Name(xbrl.XBRLINamespace, "balance"))
}

// TypedDomainRef returns the xbrldt:typedDomainRef attribute resolved to
// an absolute URI against the declaration's base URI.
func (d ElementDecl) TypedDomainRef() (string, bool) {
	ref, ok := d.Elem.Attribute(xbrl.XBRLDTTypedDomainRefEName)
	if !ok {
		return "", false
	}
	return d.Elem.ResolveURI(ref), true
}

// ID returns the declaration's id attribute, if present.
func (d ElementDecl) ID() (string, bool) {
	return d.Elem.LocalAttribute("id")
}

// TypeDef is a view over a named global type definition.
type TypeDef struct {
	Elem            xmltree.Elem
	targetNamespace string
}

// TargetEName returns the definition's qualified name.
func (t TypeDef) TargetEName() xbrl.QName {
	name, _ := t.Elem.LocalAttribute("name")
	return xbrl.Name(t.targetNamespace, name)
}

// IsComplex reports whether the definition is a complex type.
func (t TypeDef) IsComplex() bool {
	return t.Elem.Name() == xbrl.XSComplexTypeEName
}

// BaseTypeQName returns the declared base type of the definition, found on
// the nearest descendant xs:restriction or xs:extension element.
func (t TypeDef) BaseTypeQName() (xbrl.QName, bool) {
	derivation := findDerivationStep(t.Elem)
	if !derivation.IsValid() {
		return xbrl.QName{}, false
	}
	lexical, ok := derivation.LocalAttribute("base")
	if !ok {
		return xbrl.QName{}, false
	}
	base, err := derivation.ResolveQNameValue(lexical)
	if err != nil {
		return xbrl.QName{}, false
	}
	return base, true
}

func findDerivationStep(elem xmltree.Elem) xmltree.Elem {
	for _, child := range elem.Children() {
		name := child.Name()
		if name.Namespace == xbrl.XSNamespace && (name.Local == "restriction" || name.Local == "extension") {
			return child
		}
		if found := findDerivationStep(child); found.IsValid() {
			return found
		}
	}
	return xmltree.Elem{}
}

// AttrDecl is a view over a global xs:attribute declaration.
type AttrDecl struct {
	Elem            xmltree.Elem
	targetNamespace string
}

// TargetEName returns the declaration's qualified name.
func (a AttrDecl) TargetEName() xbrl.QName {
	name, _ := a.Elem.LocalAttribute("name")
	return xbrl.Name(a.targetNamespace, name)
}
