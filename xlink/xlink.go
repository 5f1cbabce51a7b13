// Package xlink harvests the raw XLink structure of linkbase content:
// extended links with their arcs, locators and resources, indexed by
// XLink label.
package xlink

import (
	"strconv"

	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// XLink attribute names.
var (
	TypeAttr    = xbrl.Name(xbrl.XLinkNamespace, "type")
	RoleAttr    = xbrl.Name(xbrl.XLinkNamespace, "role")
	ArcroleAttr = xbrl.Name(xbrl.XLinkNamespace, "arcrole")
	HrefAttr    = xbrl.Name(xbrl.XLinkNamespace, "href")
	LabelAttr   = xbrl.Name(xbrl.XLinkNamespace, "label")
	FromAttr    = xbrl.Name(xbrl.XLinkNamespace, "from")
	ToAttr      = xbrl.Name(xbrl.XLinkNamespace, "to")
	TitleAttr   = xbrl.Name(xbrl.XLinkNamespace, "title")
)

// UseProhibited is the use attribute value that marks a prohibiting arc.
const UseProhibited = "prohibited"

// Locator is an xlink:type="locator" element.
type Locator struct {
	Elem  xmltree.Elem
	Label string
	// Href is the locator href resolved to an absolute URI against the
	// locator's base URI.
	Href string
}

// Resource is an xlink:type="resource" element.
type Resource struct {
	Elem  xmltree.Elem
	Label string
	Role  string
}

// Labeled is one locator or resource carrying an XLink label; exactly one
// of Loc and Res is non-nil.
type Labeled struct {
	Loc *Locator
	Res *Resource
}

// Elem returns the underlying element of the labeled member.
func (l Labeled) Elem() xmltree.Elem {
	if l.Loc != nil {
		return l.Loc.Elem
	}
	return l.Res.Elem
}

// Arc is an xlink:type="arc" element.
type Arc struct {
	Elem    xmltree.Elem
	ELR     string
	From    string
	To      string
	Arcrole string
	Use     string
	// Priority defaults to 0 when unspecified.
	Priority int
	// Order defaults to 1 when unspecified.
	Order float64
}

// IsProhibited reports whether the arc carries use="prohibited".
func (a Arc) IsProhibited() bool {
	return a.Use == UseProhibited
}

// ExtendedLink is one extended link with its harvested children. The
// Labeled index preserves fan-out: one label may map to several locators
// or resources, and every combination forms a candidate relationship.
type ExtendedLink struct {
	Elem      xmltree.Elem
	Role      string
	Arcs      []Arc
	Locators  []Locator
	Resources []Resource
	Labeled   map[string][]Labeled
}

// Harvest collects every extended link of the document, including links
// embedded in schema annotations.
func Harvest(tree *xmltree.Document) []ExtendedLink {
	var links []ExtendedLink
	match := func(node xmltree.NodeID) bool {
		return isExtendedLink(xmltree.Elem{Doc: tree, Node: node})
	}
	root := tree.Root()
	rootElem := xmltree.Elem{Doc: tree, Node: root}
	if isExtendedLink(rootElem) {
		links = append(links, harvestLink(rootElem))
	}
	for _, node := range tree.Descendants(root, match) {
		links = append(links, harvestLink(xmltree.Elem{Doc: tree, Node: node}))
	}
	return links
}

func isExtendedLink(elem xmltree.Elem) bool {
	if value, ok := elem.Attribute(TypeAttr); ok {
		return value == "extended"
	}
	return xbrl.IsStandardExtendedLinkEName(elem.Name()) || elem.Name() == xbrl.GenLinkEName
}

func harvestLink(linkElem xmltree.Elem) ExtendedLink {
	link := ExtendedLink{
		Elem:    linkElem,
		Role:    xbrl.StandardELR,
		Labeled: make(map[string][]Labeled),
	}
	if role, ok := linkElem.Attribute(RoleAttr); ok {
		link.Role = role
	}

	for _, child := range linkElem.Children() {
		xlinkType, _ := child.Attribute(TypeAttr)
		if xlinkType == "" {
			xlinkType = impliedType(child.Name())
		}
		switch xlinkType {
		case "locator":
			label, _ := child.Attribute(LabelAttr)
			href, _ := child.Attribute(HrefAttr)
			link.Locators = append(link.Locators, Locator{Elem: child, Label: label, Href: child.ResolveURI(href)})
		case "resource":
			label, _ := child.Attribute(LabelAttr)
			role, _ := child.Attribute(RoleAttr)
			link.Resources = append(link.Resources, Resource{Elem: child, Label: label, Role: role})
		case "arc":
			link.Arcs = append(link.Arcs, harvestArc(child, link.Role))
		}
	}

	// Index after collection so the pointers stay on the final slices.
	for i := range link.Locators {
		locator := &link.Locators[i]
		link.Labeled[locator.Label] = append(link.Labeled[locator.Label], Labeled{Loc: locator})
	}
	for i := range link.Resources {
		resource := &link.Resources[i]
		link.Labeled[resource.Label] = append(link.Labeled[resource.Label], Labeled{Res: resource})
	}
	return link
}

func impliedType(name xbrl.QName) string {
	switch {
	case name == xbrl.LinkLocEName:
		return "locator"
	case name == xbrl.LinkLabelEName, name == xbrl.LinkReferenceEName:
		return "resource"
	case xbrl.IsStandardArcEName(name), name == xbrl.GenArcEName:
		return "arc"
	}
	return ""
}

func harvestArc(elem xmltree.Elem, elr string) Arc {
	arc := Arc{
		Elem:     elem,
		ELR:      elr,
		Priority: 0,
		Order:    1,
	}
	arc.From, _ = elem.Attribute(FromAttr)
	arc.To, _ = elem.Attribute(ToAttr)
	arc.Arcrole, _ = elem.Attribute(ArcroleAttr)
	arc.Use, _ = elem.LocalAttribute("use")
	if value, ok := elem.LocalAttribute("priority"); ok {
		if priority, err := strconv.Atoi(value); err == nil {
			arc.Priority = priority
		}
	}
	if value, ok := elem.LocalAttribute("order"); ok {
		if order, err := strconv.ParseFloat(value, 64); err == nil {
			arc.Order = order
		}
	}
	return arc
}
