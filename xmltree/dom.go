// Package xmltree provides the parsed-document tree the taxonomy model is
// built on: a compact node arena with resolved names, per-node namespace
// scope, XML-Base-aware URI resolution and stable fragment keys.
package xmltree

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/xbrlware/tqa/xbrl"
)

// NodeID identifies a node in the document arena.
type NodeID int

// InvalidNode represents an invalid node reference.
const InvalidNode NodeID = -1

// Attr is one attribute with a resolved name.
type Attr struct {
	Name  xbrl.QName
	Value string
}

type node struct {
	name     xbrl.QName
	text     string
	attrs    []Attr
	children []NodeID
	parent   NodeID
	scope    map[string]string
	baseAttr string
}

// Document is an immutable arena for one parsed XML document.
type Document struct {
	uri   string
	nodes []node
	root  NodeID
}

// URI returns the document URI, or "" for in-memory documents.
func (d *Document) URI() string {
	if d == nil {
		return ""
	}
	return d.uri
}

// Root returns the document root node.
func (d *Document) Root() NodeID {
	if d == nil {
		return InvalidNode
	}
	return d.root
}

func (d *Document) validNode(id NodeID) bool {
	return d != nil && id >= 0 && int(id) < len(d.nodes)
}

// Name returns the resolved qualified name of the node.
func (d *Document) Name(id NodeID) xbrl.QName {
	if !d.validNode(id) {
		return xbrl.QName{}
	}
	return d.nodes[id].name
}

// Parent returns the parent node of id, or InvalidNode for the root.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.validNode(id) {
		return InvalidNode
	}
	return d.nodes[id].parent
}

// Children returns a read-only view of the element children.
// The returned slice aliases the document arena; do not modify it.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.validNode(id) {
		return nil
	}
	return d.nodes[id].children
}

// Attributes returns a read-only view of the element attributes.
func (d *Document) Attributes(id NodeID) []Attr {
	if !d.validNode(id) {
		return nil
	}
	return d.nodes[id].attrs
}

// Attribute returns the value of the attribute with the given resolved name.
func (d *Document) Attribute(id NodeID, name xbrl.QName) (string, bool) {
	if !d.validNode(id) {
		return "", false
	}
	for _, attr := range d.nodes[id].attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// LocalAttribute returns the value of an unqualified attribute name.
func (d *Document) LocalAttribute(id NodeID, local string) (string, bool) {
	return d.Attribute(id, xbrl.QName{Local: local})
}

// DirectText returns only the character data directly under the element.
func (d *Document) DirectText(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	return d.nodes[id].text
}

// Text returns the concatenated character data of the element subtree.
func (d *Document) Text(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	n := d.nodes[id]
	if len(n.children) == 0 {
		return n.text
	}
	var sb strings.Builder
	d.collectText(id, &sb)
	return sb.String()
}

func (d *Document) collectText(id NodeID, sb *strings.Builder) {
	n := d.nodes[id]
	sb.WriteString(n.text)
	for _, child := range n.children {
		d.collectText(child, sb)
	}
}

// Scope returns the in-scope namespace bindings of the node (prefix to
// namespace URI; "" keys the default namespace). The map aliases the
// arena; do not modify it.
func (d *Document) Scope(id NodeID) map[string]string {
	if !d.validNode(id) {
		return nil
	}
	return d.nodes[id].scope
}

// ResolveQNameValue parses a QName-valued attribute or text value against
// the namespace scope of the node.
func (d *Document) ResolveQNameValue(id NodeID, lexical string) (xbrl.QName, error) {
	return xbrl.ParseQNameValue(lexical, d.Scope(id))
}

// BaseURI resolves the XML-Base-aware base URI of the node against the
// document URI.
func (d *Document) BaseURI(id NodeID) string {
	var chain []string
	for cur := id; d.validNode(cur); cur = d.nodes[cur].parent {
		if base := d.nodes[cur].baseAttr; base != "" {
			chain = append(chain, base)
		}
	}
	base := d.uri
	for i := len(chain) - 1; i >= 0; i-- {
		base = resolveURI(base, chain[i])
	}
	return base
}

// ResolveURI resolves a possibly relative reference against the base URI
// of the node.
func (d *Document) ResolveURI(id NodeID, ref string) string {
	return resolveURI(d.BaseURI(id), ref)
}

func resolveURI(base, ref string) string {
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// Descendants returns, in document order, every node of the subtree
// rooted at id (id excluded) for which match returns true. A nil match
// accepts every node.
func (d *Document) Descendants(id NodeID, match func(NodeID) bool) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(cur NodeID) {
		for _, child := range d.Children(cur) {
			if match == nil || match(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	if d.validNode(id) {
		walk(id)
	}
	return out
}

// ChildrenNamed returns the direct children with the given resolved name.
func (d *Document) ChildrenNamed(id NodeID, name xbrl.QName) []NodeID {
	var out []NodeID
	for _, child := range d.Children(id) {
		if d.nodes[child].name == name {
			out = append(out, child)
		}
	}
	return out
}

// FragmentKey is a structural identifier of an element: document URI plus
// the child-index path from the root. Unique per element instance and
// stable across re-reads of the same document.
type FragmentKey struct {
	DocURI string
	Path   string
}

// FragmentKeyOf computes the fragment key of the node.
func (d *Document) FragmentKeyOf(id NodeID) FragmentKey {
	if !d.validNode(id) {
		return FragmentKey{DocURI: d.URI()}
	}
	var steps []string
	for cur := id; ; {
		parent := d.nodes[cur].parent
		if parent == InvalidNode {
			break
		}
		idx := 0
		for i, sibling := range d.nodes[parent].children {
			if sibling == cur {
				idx = i
				break
			}
		}
		steps = append(steps, strconv.Itoa(idx))
		cur = parent
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return FragmentKey{DocURI: d.URI(), Path: strings.Join(steps, "/")}
}
