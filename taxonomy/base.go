package taxonomy

import (
	"strings"

	"github.com/xbrlware/tqa/errors"
	"github.com/xbrlware/tqa/internal/xpointer"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// Base is the indexed collection of taxonomy documents. Immutable after
// Build; duplicate IDs within a document and duplicate global declarations
// across documents are tolerated with last-write-wins semantics, matching
// what taxonomy sets in the wild actually contain.
type Base struct {
	documents []*Document

	docsByURI       map[string]*Document
	elementsByID    map[string]map[string]xmltree.NodeID
	elementDecls    map[xbrl.QName]ElementDecl
	namedTypeDefs   map[xbrl.QName]TypeDef
	globalAttrDecls map[xbrl.QName]AttrDecl
	substitutionMap SubstitutionGroupMap
}

// Build constructs a Base from parsed documents. It never fails for
// well-formed input.
func Build(documents []*Document) *Base {
	base := &Base{
		documents:       documents,
		docsByURI:       make(map[string]*Document, len(documents)),
		elementsByID:    make(map[string]map[string]xmltree.NodeID),
		elementDecls:    make(map[xbrl.QName]ElementDecl),
		namedTypeDefs:   make(map[xbrl.QName]TypeDef),
		globalAttrDecls: make(map[xbrl.QName]AttrDecl),
	}
	for _, doc := range documents {
		base.indexDocument(doc)
	}
	base.substitutionMap = buildSubstitutionGroupMap(base)
	return base
}

func (b *Base) indexDocument(doc *Document) {
	uri := doc.URI()
	if uri != "" {
		b.docsByURI[uri] = doc
	}

	tree := doc.Tree()
	ids := make(map[string]xmltree.NodeID)
	root := tree.Root()
	if id, ok := tree.LocalAttribute(root, "id"); ok {
		ids[id] = root
	}
	for _, node := range tree.Descendants(root, nil) {
		if id, ok := tree.LocalAttribute(node, "id"); ok {
			ids[id] = node
		}
	}
	if len(ids) > 0 {
		b.elementsByID[uri] = ids
	}

	if !doc.IsSchema() {
		return
	}
	targetNS, _ := tree.LocalAttribute(root, "targetNamespace")
	for _, node := range tree.Children(root) {
		elem := xmltree.Elem{Doc: tree, Node: node}
		name, named := elem.LocalAttribute("name")
		if !named || name == "" {
			continue
		}
		switch elem.Name() {
		case xbrl.XSElementEName:
			decl := ElementDecl{Elem: elem, targetNamespace: targetNS}
			b.elementDecls[decl.TargetEName()] = decl
		case xbrl.XSComplexTypeEName, xbrl.XSSimpleTypeEName:
			def := TypeDef{Elem: elem, targetNamespace: targetNS}
			b.namedTypeDefs[def.TargetEName()] = def
		case xbrl.XSAttributeEName:
			decl := AttrDecl{Elem: elem, targetNamespace: targetNS}
			b.globalAttrDecls[decl.TargetEName()] = decl
		}
	}
}

// Documents returns the documents of the base, in build order.
func (b *Base) Documents() []*Document {
	return b.documents
}

// DocumentByURI returns the document with the given URI.
func (b *Base) DocumentByURI(uri string) (*Document, bool) {
	doc, ok := b.docsByURI[uri]
	return doc, ok
}

// FindGlobalElementDeclaration returns the global element declaration with
// the given qualified name.
func (b *Base) FindGlobalElementDeclaration(name xbrl.QName) (ElementDecl, bool) {
	decl, ok := b.elementDecls[name]
	return decl, ok
}

// GlobalElementDeclarations returns all global element declarations keyed
// by qualified name. The map aliases the base; do not modify it.
func (b *Base) GlobalElementDeclarations() map[xbrl.QName]ElementDecl {
	return b.elementDecls
}

// FindNamedTypeDefinition returns the named type definition with the given
// qualified name.
func (b *Base) FindNamedTypeDefinition(name xbrl.QName) (TypeDef, bool) {
	def, ok := b.namedTypeDefs[name]
	return def, ok
}

// FindGlobalAttributeDeclaration returns the global attribute declaration
// with the given qualified name.
func (b *Base) FindGlobalAttributeDeclaration(name xbrl.QName) (AttrDecl, bool) {
	decl, ok := b.globalAttrDecls[name]
	return decl, ok
}

// SubstitutionGroupMap returns the net substitution group map of the base.
func (b *Base) SubstitutionGroupMap() SubstitutionGroupMap {
	return b.substitutionMap
}

// FindElementByURI resolves an absolute URI, optionally carrying an
// XPointer fragment, to an element of the base. Without a fragment the
// document root is returned. A malformed fragment is reported as an
// ErrPointerSyntax violation; an unknown document or unmatched pointer
// returns found = false without error.
func (b *Base) FindElementByURI(uri string) (xmltree.Elem, bool, error) {
	docURI, fragment, hasFragment := strings.Cut(uri, "#")
	doc, ok := b.docsByURI[docURI]
	if !ok {
		return xmltree.Elem{}, false, nil
	}
	if !hasFragment || fragment == "" {
		return doc.Root(), true, nil
	}

	pointers, err := xpointer.Parse(fragment)
	if err != nil {
		violation := errors.Newf(errors.ErrPointerSyntax, docURI, "fragment %q: %v", fragment, err)
		return xmltree.Elem{}, false, &violation
	}
	for _, pointer := range pointers {
		if elem, ok := b.resolvePointer(doc, pointer); ok {
			return elem, true, nil
		}
	}
	return xmltree.Elem{}, false, nil
}

func (b *Base) resolvePointer(doc *Document, pointer xpointer.Pointer) (xmltree.Elem, bool) {
	tree := doc.Tree()
	start := tree.Root()
	steps := pointer.ChildSequence

	if pointer.ID != "" {
		node, ok := b.elementsByID[doc.URI()][pointer.ID]
		if !ok {
			return xmltree.Elem{}, false
		}
		start = node
	} else {
		// A purely positional pointer's first step selects the document
		// element itself.
		if len(steps) == 0 || steps[0] != 1 {
			return xmltree.Elem{}, false
		}
		steps = steps[1:]
	}

	cur := start
	for _, step := range steps {
		children := tree.Children(cur)
		if step > len(children) {
			return xmltree.Elem{}, false
		}
		cur = children[step-1]
	}
	return xmltree.Elem{Doc: tree, Node: cur}, true
}

// FilterDocumentURIs returns a new Base holding only the documents whose
// URI is in keep. The receiver is not modified.
func (b *Base) FilterDocumentURIs(keep map[string]bool) *Base {
	var kept []*Document
	for _, doc := range b.documents {
		if keep[doc.URI()] {
			kept = append(kept, doc)
		}
	}
	return Build(kept)
}
