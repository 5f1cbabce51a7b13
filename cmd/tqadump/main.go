// Command tqadump loads a taxonomy from local files and dumps its
// concepts, networks, or presentation trees.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xbrlware/tqa"
	"github.com/xbrlware/tqa/docbuilder"
	"github.com/xbrlware/tqa/errors"
	"github.com/xbrlware/tqa/relationship"
	"github.com/xbrlware/tqa/xbrl"
)

type options struct {
	dir     string
	catalog string
	strict  bool
	verbose bool
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tqadump",
		Short:         "Dump XBRL taxonomy contents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", ".", "directory the entry points live in")
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "YAML catalog remapping URI prefixes to local paths")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail on any XLink non-conformance")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log skipped non-conformant arcs")

	root.AddCommand(conceptsCommand(opts), networksCommand(opts), treeCommand(opts))

	if err := root.Execute(); err != nil {
		slog.Error("tqadump failed", "error", err)
		os.Exit(1)
	}
}

func load(opts *options, entrypoints []string) (*tqa.BasicTaxonomy, error) {
	var mappings []docbuilder.Mapping
	if opts.catalog != "" {
		catalog, err := docbuilder.LoadCatalog(opts.catalog)
		if err != nil {
			return nil, err
		}
		mappings = catalog.Mappings
	}

	cfg := relationship.Lenient
	if opts.strict {
		cfg = relationship.Strict
	}
	if opts.verbose {
		cfg = cfg.WithObserver(func(v errors.Violation) {
			slog.Warn("skipped non-conformant content", "code", v.Code, "detail", v.Message, "doc", v.DocURI)
		})
	}

	loadOpts := tqa.NewLoadOptions().WithFactoryConfig(cfg)
	return tqa.LoadFS(os.DirFS(opts.dir), mappings, entrypoints, loadOpts)
}

func conceptsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "concepts ENTRYPOINT...",
		Short: "List classified concept declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxo, err := load(opts, args)
			if err != nil {
				return err
			}
			concepts := taxo.ConceptDeclarations()
			names := make([]xbrl.QName, 0, len(concepts))
			for name := range concepts {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool { return xbrl.Compare(names[i], names[j]) < 0 })
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", concepts[name].Kind, name)
			}
			return nil
		},
	}
}

func networksCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "networks ENTRYPOINT...",
		Short: "Summarize base sets after prohibition/overriding resolution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxo, err := load(opts, args)
			if err != nil {
				return err
			}
			networks, err := taxo.ResolveNetworks()
			if err != nil {
				return err
			}
			keys := make([]relationship.BaseSetKey, 0, len(networks))
			for key := range networks {
				keys = append(keys, key)
			}
			sort.Slice(keys, func(i, j int) bool {
				if keys[i].ELR != keys[j].ELR {
					return keys[i].ELR < keys[j].ELR
				}
				return keys[i].Arcrole < keys[j].Arcrole
			})
			for _, key := range keys {
				result := networks[key]
				fmt.Fprintf(cmd.OutOrStdout(), "%s | %s: %d retained, %d removed\n",
					key.ELR, key.Arcrole, len(result.Retained), len(result.Removed))
			}
			return nil
		},
	}
}

func treeCommand(opts *options) *cobra.Command {
	var elr string
	cmd := &cobra.Command{
		Use:   "tree ENTRYPOINT...",
		Short: "Print presentation hierarchies as indented trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxo, err := load(opts, args)
			if err != nil {
				return err
			}
			effective, err := taxo.WithoutProhibited()
			if err != nil {
				return err
			}
			for _, root := range presentationRoots(effective, elr) {
				printTree(cmd, effective, root, elr, 0)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&elr, "elr", "", "restrict to one extended link role")
	return cmd
}

func presentationRoots(taxo *tqa.BasicTaxonomy, elr string) []xbrl.QName {
	sources := make(map[xbrl.QName]bool)
	targets := make(map[xbrl.QName]bool)
	for _, rel := range taxo.Relationships() {
		if rel.Kind != relationship.KindPresentation || (elr != "" && rel.ELR() != elr) {
			continue
		}
		sources[rel.SourceConcept()] = true
		targets[rel.TargetConcept()] = true
	}
	var roots []xbrl.QName
	for source := range sources {
		if !targets[source] {
			roots = append(roots, source)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return xbrl.Compare(roots[i], roots[j]) < 0 })
	return roots
}

func printTree(cmd *cobra.Command, taxo *tqa.BasicTaxonomy, concept xbrl.QName, elr string, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(cmd.OutOrStdout(), "  ")
	}
	fmt.Fprintln(cmd.OutOrStdout(), concept)
	if depth > 64 {
		return
	}
	children := taxo.Outgoing(concept, relationship.KindPresentation)
	sort.SliceStable(children, func(i, j int) bool { return children[i].Order() < children[j].Order() })
	for _, rel := range children {
		if elr != "" && rel.ELR() != elr {
			continue
		}
		printTree(cmd, taxo, rel.TargetConcept(), elr, depth+1)
	}
}
