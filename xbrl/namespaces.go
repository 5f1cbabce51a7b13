package xbrl

// Core namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	XSNamespace    = "http://www.w3.org/2001/XMLSchema"
	XLinkNamespace = "http://www.w3.org/1999/xlink"

	XBRLINamespace  = "http://www.xbrl.org/2003/instance"
	LinkNamespace   = "http://www.xbrl.org/2003/linkbase"
	XBRLDTNamespace = "http://xbrl.org/2005/xbrldt"
	GenNamespace    = "http://xbrl.org/2008/generic"
	LabelNamespace  = "http://xbrl.org/2008/label"
	RefNamespace    = "http://xbrl.org/2008/reference"
)

// XMLPrefix is the reserved xml prefix.
const XMLPrefix = "xml"

// Schema element and attribute names.
var (
	XSSchemaEName      = Name(XSNamespace, "schema")
	XSElementEName     = Name(XSNamespace, "element")
	XSAttributeEName   = Name(XSNamespace, "attribute")
	XSComplexTypeEName = Name(XSNamespace, "complexType")
	XSSimpleTypeEName  = Name(XSNamespace, "simpleType")
	XSImportEName      = Name(XSNamespace, "import")
	XSIncludeEName     = Name(XSNamespace, "include")
)

// Substitution group heads.
var (
	ItemEName          = Name(XBRLINamespace, "item")
	TupleEName         = Name(XBRLINamespace, "tuple")
	HypercubeItemEName = Name(XBRLDTNamespace, "hypercubeItem")
	DimensionItemEName = Name(XBRLDTNamespace, "dimensionItem")
)

// Linkbase element names.
var (
	LinkLinkbaseEName         = Name(LinkNamespace, "linkbase")
	LinkLinkbaseRefEName      = Name(LinkNamespace, "linkbaseRef")
	LinkLocEName              = Name(LinkNamespace, "loc")
	LinkLabelEName            = Name(LinkNamespace, "label")
	LinkReferenceEName        = Name(LinkNamespace, "reference")
	LinkPresentationArcEName  = Name(LinkNamespace, "presentationArc")
	LinkCalculationArcEName   = Name(LinkNamespace, "calculationArc")
	LinkDefinitionArcEName    = Name(LinkNamespace, "definitionArc")
	LinkLabelArcEName         = Name(LinkNamespace, "labelArc")
	LinkReferenceArcEName     = Name(LinkNamespace, "referenceArc")
	LinkPresentationLinkEName = Name(LinkNamespace, "presentationLink")
	LinkCalculationLinkEName  = Name(LinkNamespace, "calculationLink")
	LinkDefinitionLinkEName   = Name(LinkNamespace, "definitionLink")
	LinkLabelLinkEName        = Name(LinkNamespace, "labelLink")
	LinkReferenceLinkEName    = Name(LinkNamespace, "referenceLink")
	GenLinkEName              = Name(GenNamespace, "link")
	GenArcEName               = Name(GenNamespace, "arc")
)

// XBRL Dimensions attribute names.
var (
	XBRLDTTypedDomainRefEName = Name(XBRLDTNamespace, "typedDomainRef")
	XBRLDTTargetRoleEName     = Name(XBRLDTNamespace, "targetRole")
	XBRLDTUsableEName         = Name(XBRLDTNamespace, "usable")
	XBRLDTContextElementEName = Name(XBRLDTNamespace, "contextElement")
	XBRLDTClosedEName         = Name(XBRLDTNamespace, "closed")
)

// StandardELR is the default extended link role.
const StandardELR = "http://www.xbrl.org/2003/role/link"

// Standard and dimensional arc roles.
const (
	ParentChildArcrole      = "http://www.xbrl.org/2003/arcrole/parent-child"
	SummationItemArcrole    = "http://www.xbrl.org/2003/arcrole/summation-item"
	GeneralSpecialArcrole   = "http://www.xbrl.org/2003/arcrole/general-special"
	EssenceAliasArcrole     = "http://www.xbrl.org/2003/arcrole/essence-alias"
	SimilarTuplesArcrole    = "http://www.xbrl.org/2003/arcrole/similar-tuples"
	RequiresElementArcrole  = "http://www.xbrl.org/2003/arcrole/requires-element"
	ConceptLabelArcrole     = "http://www.xbrl.org/2003/arcrole/concept-label"
	ConceptReferenceArcrole = "http://www.xbrl.org/2003/arcrole/concept-reference"

	AllArcrole                = "http://xbrl.org/int/dim/arcrole/all"
	NotAllArcrole             = "http://xbrl.org/int/dim/arcrole/notAll"
	HypercubeDimensionArcrole = "http://xbrl.org/int/dim/arcrole/hypercube-dimension"
	DimensionDomainArcrole    = "http://xbrl.org/int/dim/arcrole/dimension-domain"
	DomainMemberArcrole       = "http://xbrl.org/int/dim/arcrole/domain-member"
	DimensionDefaultArcrole   = "http://xbrl.org/int/dim/arcrole/dimension-default"

	ElementLabelArcrole     = "http://xbrl.org/arcrole/2008/element-label"
	ElementReferenceArcrole = "http://xbrl.org/arcrole/2008/element-reference"
)

// IsStandardArcEName reports whether the element name is one of the five
// standard linkbase arc names.
func IsStandardArcEName(name QName) bool {
	switch name {
	case LinkPresentationArcEName, LinkCalculationArcEName, LinkDefinitionArcEName,
		LinkLabelArcEName, LinkReferenceArcEName:
		return true
	}
	return false
}

// IsStandardExtendedLinkEName reports whether the element name is one of
// the five standard extended link names.
func IsStandardExtendedLinkEName(name QName) bool {
	switch name {
	case LinkPresentationLinkEName, LinkCalculationLinkEName, LinkDefinitionLinkEName,
		LinkLabelLinkEName, LinkReferenceLinkEName:
		return true
	}
	return false
}
