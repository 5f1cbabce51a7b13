package tqa

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/xbrlware/tqa/docbuilder"
	"github.com/xbrlware/tqa/internal/dts"
	"github.com/xbrlware/tqa/taxonomy"
)

// Load discovers the DTS closure of the entry point URIs through the
// builder and constructs the taxonomy.
func Load(builder docbuilder.Builder, entrypoints []string, opts LoadOptions) (*BasicTaxonomy, error) {
	trees, err := dts.Collect(builder, entrypoints)
	if err != nil {
		return nil, fmt.Errorf("collect DTS: %w", err)
	}
	docs := make([]*taxonomy.Document, len(trees))
	for i, tree := range trees {
		docs[i] = taxonomy.NewDocument(tree)
	}
	return Build(taxonomy.Build(docs), opts)
}

// LoadFS loads entry points from a filesystem, mapping URIs with the
// given catalog mappings.
func LoadFS(fsys fs.FS, mappings []docbuilder.Mapping, entrypoints []string, opts LoadOptions) (*BasicTaxonomy, error) {
	return Load(docbuilder.NewFSBuilder(fsys, mappings), entrypoints, opts)
}

// LoadDir loads entry points relative to a directory with default options.
func LoadDir(dir string, entrypoints []string) (*BasicTaxonomy, error) {
	return LoadFS(os.DirFS(dir), nil, entrypoints, NewLoadOptions())
}
