// Package dts discovers the closed document set reachable from entry
// points: a fixed-point traversal over schema imports, includes and
// linkbase references.
package dts

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/xbrlware/tqa/docbuilder"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xmltree"
)

// fetchConcurrency bounds the per-round parallel document builds.
const fetchConcurrency = 8

// Collect resolves the DTS closure of the entry point URIs. Documents are
// returned in a deterministic order: breadth-first over discovery rounds,
// URIs sorted within a round.
func Collect(builder docbuilder.Builder, entrypoints []string) ([]*xmltree.Document, error) {
	seen := make(map[string]bool)
	var docs []*xmltree.Document

	round := dedupe(entrypoints, seen)
	for len(round) > 0 {
		fetched, err := fetchRound(builder, round)
		if err != nil {
			return nil, err
		}

		var next []string
		for _, doc := range fetched {
			docs = append(docs, doc)
			next = append(next, references(doc)...)
		}
		round = dedupe(next, seen)
	}
	return docs, nil
}

func dedupe(uris []string, seen map[string]bool) []string {
	var out []string
	for _, uri := range uris {
		uri, _, _ = strings.Cut(uri, "#")
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

func fetchRound(builder docbuilder.Builder, uris []string) ([]*xmltree.Document, error) {
	docs := make([]*xmltree.Document, len(uris))
	var group errgroup.Group
	group.SetLimit(fetchConcurrency)

	for i, uri := range uris {
		i, uri := i, uri
		group.Go(func() error {
			doc, err := builder.Build(uri)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// references collects the URIs a document pulls into the DTS, resolved
// against the referring element's base URI.
func references(tree *xmltree.Document) []string {
	var out []string
	for _, node := range tree.Descendants(tree.Root(), nil) {
		elem := xmltree.Elem{Doc: tree, Node: node}
		switch elem.Name() {
		case xbrl.XSImportEName, xbrl.XSIncludeEName:
			if location, ok := elem.LocalAttribute("schemaLocation"); ok && location != "" {
				out = append(out, elem.ResolveURI(location))
			}
		case xbrl.LinkLinkbaseRefEName:
			if href, ok := elem.Attribute(xbrl.Name(xbrl.XLinkNamespace, "href")); ok && href != "" {
				out = append(out, elem.ResolveURI(href))
			}
		}
	}
	return out
}
