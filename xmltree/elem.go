package xmltree

import "github.com/xbrlware/tqa/xbrl"

// Elem is a handle to one element: a document plus a node in its arena.
// The zero value is invalid; use IsValid to test.
type Elem struct {
	Doc  *Document
	Node NodeID
}

// IsValid reports whether the handle points at an element.
func (e Elem) IsValid() bool {
	return e.Doc != nil && e.Doc.validNode(e.Node)
}

// Name returns the resolved qualified name of the element.
func (e Elem) Name() xbrl.QName {
	return e.Doc.Name(e.Node)
}

// Attribute returns the value of the attribute with the given resolved name.
func (e Elem) Attribute(name xbrl.QName) (string, bool) {
	return e.Doc.Attribute(e.Node, name)
}

// LocalAttribute returns the value of an unqualified attribute name.
func (e Elem) LocalAttribute(local string) (string, bool) {
	return e.Doc.LocalAttribute(e.Node, local)
}

// Text returns the concatenated character data of the element subtree.
func (e Elem) Text() string {
	return e.Doc.Text(e.Node)
}

// Parent returns the parent element handle, or an invalid handle for the root.
func (e Elem) Parent() Elem {
	return Elem{Doc: e.Doc, Node: e.Doc.Parent(e.Node)}
}

// Children returns the child element handles.
func (e Elem) Children() []Elem {
	ids := e.Doc.Children(e.Node)
	out := make([]Elem, len(ids))
	for i, id := range ids {
		out[i] = Elem{Doc: e.Doc, Node: id}
	}
	return out
}

// ResolveQNameValue parses a QName lexical value in the element's scope.
func (e Elem) ResolveQNameValue(lexical string) (xbrl.QName, error) {
	return e.Doc.ResolveQNameValue(e.Node, lexical)
}

// BaseURI returns the XML-Base-aware base URI of the element.
func (e Elem) BaseURI() string {
	return e.Doc.BaseURI(e.Node)
}

// ResolveURI resolves a possibly relative reference against the element's
// base URI.
func (e Elem) ResolveURI(ref string) string {
	return e.Doc.ResolveURI(e.Node, ref)
}

// FragmentKey returns the structural identifier of the element.
func (e Elem) FragmentKey() FragmentKey {
	return e.Doc.FragmentKeyOf(e.Node)
}
