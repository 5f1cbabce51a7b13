package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/xbrlware/tqa/xbrl"
)

// Parse builds the document tree from XML input. The URI becomes the
// document URI used for base-URI and fragment-key computation.
func Parse(r io.Reader, uri string) (*Document, error) {
	doc := &Document{uri: uri, root: InvalidNode}

	decoder := xml.NewDecoder(r)
	var stack []NodeID
	var scopeStack []map[string]string
	rootClosed := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml read: %w", err)
		}

		switch event := token.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", event.Name.Local)
			}

			parentScope := map[string]string(nil)
			if len(scopeStack) > 0 {
				parentScope = scopeStack[len(scopeStack)-1]
			}
			scope, attrs, baseAttr := splitAttributes(event.Attr, parentScope)

			parent := InvalidNode
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			id := NodeID(len(doc.nodes))
			doc.nodes = append(doc.nodes, node{
				name:     xbrl.Name(event.Name.Space, event.Name.Local),
				attrs:    attrs,
				parent:   parent,
				scope:    scope,
				baseAttr: baseAttr,
			})
			if parent == InvalidNode {
				doc.root = id
			} else {
				doc.nodes[parent].children = append(doc.nodes[parent].children, id)
			}
			stack = append(stack, id)
			scopeStack = append(scopeStack, scope)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				scopeStack = scopeStack[:len(scopeStack)-1]
				if len(stack) == 0 && doc.root != InvalidNode {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			id := stack[len(stack)-1]
			doc.nodes[id].text += string(event)
		}
	}

	if doc.root == InvalidNode {
		return nil, io.ErrUnexpectedEOF
	}
	return doc, nil
}

// ParseString builds a document tree from a string, for tests and
// in-memory construction.
func ParseString(content, uri string) (*Document, error) {
	return Parse(strings.NewReader(content), uri)
}

// splitAttributes separates namespace declarations from ordinary
// attributes and captures xml:base. The returned scope shares the parent
// scope when no declarations occur on the element.
func splitAttributes(raw []xml.Attr, parentScope map[string]string) (map[string]string, []Attr, string) {
	scope := parentScope
	declared := false
	var attrs []Attr
	baseAttr := ""

	for _, attr := range raw {
		switch {
		case attr.Name.Space == "xmlns":
			if !declared {
				scope = cloneScope(parentScope)
				declared = true
			}
			scope[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			if !declared {
				scope = cloneScope(parentScope)
				declared = true
			}
			scope[""] = attr.Value
		case attr.Name.Local == "base" && (attr.Name.Space == xbrl.XMLNamespace || attr.Name.Space == xbrl.XMLPrefix):
			baseAttr = attr.Value
		default:
			attrs = append(attrs, Attr{
				Name:  xbrl.Name(attr.Name.Space, attr.Name.Local),
				Value: attr.Value,
			})
		}
	}
	return scope, attrs, baseAttr
}

func cloneScope(scope map[string]string) map[string]string {
	out := make(map[string]string, len(scope)+1)
	for prefix, ns := range scope {
		out[prefix] = ns
	}
	return out
}
