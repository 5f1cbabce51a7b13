// Package taxonomy provides the indexed taxonomy base: documents, element
// lookup by URI and fragment, global schema declarations by qualified
// name, substitution group resolution and concept classification.
package taxonomy

import (
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// Document is one parsed taxonomy document. Immutable once built.
type Document struct {
	tree *xmltree.Document
}

// NewDocument wraps a parsed document tree.
func NewDocument(tree *xmltree.Document) *Document {
	return &Document{tree: tree}
}

// URI returns the document URI, or "" for in-memory documents.
func (d *Document) URI() string {
	return d.tree.URI()
}

// Root returns the root element handle.
func (d *Document) Root() xmltree.Elem {
	return xmltree.Elem{Doc: d.tree, Node: d.tree.Root()}
}

// Tree returns the underlying document tree.
func (d *Document) Tree() *xmltree.Document {
	return d.tree
}

// IsSchema reports whether the document root is an xs:schema element.
func (d *Document) IsSchema() bool {
	return d.Root().Name() == xbrl.XSSchemaEName
}

// IsLinkbase reports whether the document root is a link:linkbase element.
func (d *Document) IsLinkbase() bool {
	return d.Root().Name() == xbrl.LinkLinkbaseEName
}
