// Package docbuilder provides the document-builder collaborators used
// during DTS discovery: a filesystem builder with URI-prefix remapping
// and an LRU caching decorator.
package docbuilder

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/xbrlware/tqa/xmltree"
)

// Builder resolves a document URI to a parsed document.
type Builder interface {
	Build(uri string) (*xmltree.Document, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(uri string) (*xmltree.Document, error)

// Build calls the function.
func (f BuilderFunc) Build(uri string) (*xmltree.Document, error) {
	return f(uri)
}

// Mapping rewrites a URI prefix to a filesystem path prefix, the way
// taxonomy packages ship remote URIs as local files.
type Mapping struct {
	URIPrefix  string `yaml:"uriPrefix"`
	PathPrefix string `yaml:"pathPrefix"`
}

// FSBuilder reads documents from a filesystem, applying the longest
// matching URI mapping first.
type FSBuilder struct {
	fsys     fs.FS
	mappings []Mapping
}

// NewFSBuilder builds documents from fsys with the given URI mappings.
func NewFSBuilder(fsys fs.FS, mappings []Mapping) *FSBuilder {
	sorted := make([]Mapping, len(mappings))
	copy(sorted, mappings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].URIPrefix) > len(sorted[j].URIPrefix)
	})
	return &FSBuilder{fsys: fsys, mappings: sorted}
}

// Build parses the document at the mapped location. The original URI is
// kept as the document URI so href resolution stays in URI space.
func (b *FSBuilder) Build(uri string) (*xmltree.Document, error) {
	location := uri
	for _, mapping := range b.mappings {
		if strings.HasPrefix(uri, mapping.URIPrefix) {
			location = mapping.PathPrefix + strings.TrimPrefix(uri, mapping.URIPrefix)
			break
		}
	}
	location = strings.TrimPrefix(location, "file://")
	location = strings.TrimPrefix(location, "/")

	file, err := b.fsys.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", uri, err)
	}
	defer file.Close()

	doc, err := xmltree.Parse(file, uri)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", uri, err)
	}
	return doc, nil
}

// CachingBuilder decorates a builder with an LRU document cache, for
// entry-point sets that revisit the same standard taxonomy documents.
type CachingBuilder struct {
	inner Builder
	cache *lru.Cache[string, *xmltree.Document]
}

// NewCachingBuilder wraps inner with a cache of the given size.
func NewCachingBuilder(inner Builder, size int) (*CachingBuilder, error) {
	cache, err := lru.New[string, *xmltree.Document](size)
	if err != nil {
		return nil, fmt.Errorf("document cache: %w", err)
	}
	return &CachingBuilder{inner: inner, cache: cache}, nil
}

// Build returns the cached document or delegates to the inner builder.
// Documents are immutable, so sharing cached instances is safe.
func (b *CachingBuilder) Build(uri string) (*xmltree.Document, error) {
	if doc, ok := b.cache.Get(uri); ok {
		return doc, nil
	}
	doc, err := b.inner.Build(uri)
	if err != nil {
		return nil, err
	}
	b.cache.Add(uri, doc)
	return doc, nil
}
