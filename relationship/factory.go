package relationship

import (
	"github.com/xbrlware/tqa/errors"
	"github.com/xbrlware/tqa/taxonomy"
	"github.com/xbrlware/tqa/xbrl"
	"github.com/xbrlware/tqa/xlink"
	"github.com/xbrlware/tqa/xmltree"
)

// ArcFilter excludes arcs before extraction.
type ArcFilter func(xlink.Arc) bool

// AnyArc accepts every arc.
func AnyArc(xlink.Arc) bool { return true }

// ArcsWithArcrole accepts only arcs carrying an arc role.
func ArcsWithArcrole(arc xlink.Arc) bool { return arc.Arcrole != "" }

// Config controls how the factory treats non-conformant XLink. Real-world
// taxonomy sets are frequently non-conformant, and the engine supports
// both best-effort querying and strict conformance checking.
type Config struct {
	// AllowSyntaxError tolerates XPointer syntax errors in locator hrefs.
	AllowSyntaxError bool
	// AllowUnresolvedXLinkLabel tolerates arcs referencing a label with
	// no locator or resource in the same extended link.
	AllowUnresolvedXLinkLabel bool
	// AllowUnresolvedLocator tolerates locator hrefs that do not resolve
	// to an element in the taxonomy.
	AllowUnresolvedLocator bool
	// Observer, when non-nil, receives every violation a lenient setting
	// skipped over. The default silent skip remains with a nil observer.
	Observer func(errors.Violation)
}

// Strict raises on every non-conformance.
var Strict = Config{}

// Lenient tolerates unresolved locator hrefs only.
var Lenient = Config{AllowUnresolvedLocator: true}

// VeryLenient tolerates syntax errors, unresolved labels, and unresolved
// locator hrefs.
var VeryLenient = Config{
	AllowSyntaxError:          true,
	AllowUnresolvedXLinkLabel: true,
	AllowUnresolvedLocator:    true,
}

// WithObserver returns a copy of the config with the given observer.
func (c Config) WithObserver(observer func(errors.Violation)) Config {
	c.Observer = observer
	return c
}

func (c Config) observe(v errors.Violation) {
	if c.Observer != nil {
		c.Observer(v)
	}
}

// Extract produces relationships from every extended link of every
// document in the base. Arcs rejected by the filter are skipped. Under
// Strict the first non-conformance aborts extraction with an error;
// lenient settings skip the offending arc or endpoint pair and continue.
// Unrecognized arc or endpoint shapes never fail: they degrade to
// KindUnknown.
func Extract(base *taxonomy.Base, filter ArcFilter, cfg Config) ([]Relationship, error) {
	if filter == nil {
		filter = AnyArc
	}
	var out []Relationship
	for _, doc := range base.Documents() {
		for _, link := range xlink.Harvest(doc.Tree()) {
			extracted, err := extractFromLink(base, link, filter, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, extracted...)
		}
	}
	return out, nil
}

func extractFromLink(base *taxonomy.Base, link xlink.ExtendedLink, filter ArcFilter, cfg Config) ([]Relationship, error) {
	var out []Relationship
	docURI := link.Elem.Doc.URI()

	for _, arc := range link.Arcs {
		if !filter(arc) {
			continue
		}
		fromCandidates, err := labeled(link, arc, arc.From, docURI, cfg)
		if err != nil {
			return nil, err
		}
		toCandidates, err := labeled(link, arc, arc.To, docURI, cfg)
		if err != nil {
			return nil, err
		}

		// Fan-out: every (from, to) combination is its own relationship.
		for _, from := range fromCandidates {
			for _, to := range toCandidates {
				source, ok, err := resolveEndpoint(base, from, cfg)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				target, ok, err := resolveEndpoint(base, to, cfg)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				out = append(out, Relationship{
					Kind:   classify(arc, source, target),
					Arc:    arc,
					Source: source,
					Target: target,
				})
			}
		}
	}
	return out, nil
}

func labeled(link xlink.ExtendedLink, arc xlink.Arc, label, docURI string, cfg Config) ([]xlink.Labeled, error) {
	if label == "" {
		violation := errors.Newf(errors.ErrMissingArcAttribute, docURI,
			"arc %s in ELR %s lacks a from or to label", arc.Arcrole, arc.ELR)
		if !cfg.AllowUnresolvedXLinkLabel {
			return nil, &violation
		}
		cfg.observe(violation)
		return nil, nil
	}
	candidates := link.Labeled[label]
	if len(candidates) == 0 {
		violation := errors.Newf(errors.ErrUnresolvedXLinkLabel, docURI,
			"arc %s in ELR %s references label %q with no locator or resource", arc.Arcrole, arc.ELR, label)
		if !cfg.AllowUnresolvedXLinkLabel {
			return nil, &violation
		}
		cfg.observe(violation)
		return nil, nil
	}
	return candidates, nil
}

// resolveEndpoint dereferences a locator through the base, or takes a
// resource as-is. ok = false means the endpoint was skipped leniently.
func resolveEndpoint(base *taxonomy.Base, member xlink.Labeled, cfg Config) (Endpoint, bool, error) {
	if member.Res != nil {
		return Endpoint{Elem: member.Res.Elem, Resource: member.Res}, true, nil
	}

	locator := member.Loc
	elem, found, err := base.FindElementByURI(locator.Href)
	if err != nil {
		violations, _ := errors.AsViolations(err)
		if !cfg.AllowSyntaxError {
			return Endpoint{}, false, err
		}
		for _, v := range violations {
			cfg.observe(v)
		}
		return Endpoint{}, false, nil
	}
	if !found {
		violation := errors.Newf(errors.ErrUnresolvedLocator, locator.Elem.Doc.URI(),
			"locator href %q does not resolve", locator.Href)
		if !cfg.AllowUnresolvedLocator {
			return Endpoint{}, false, &violation
		}
		cfg.observe(violation)
		return Endpoint{}, false, nil
	}

	endpoint := Endpoint{Elem: elem, Locator: locator}
	if concept, ok := conceptNameOf(base, elem); ok {
		endpoint.Concept = concept
	}
	return endpoint, true, nil
}

// conceptNameOf maps a resolved element back to the global element
// declaration it is, if it is one.
func conceptNameOf(base *taxonomy.Base, elem xmltree.Elem) (xbrl.QName, bool) {
	if elem.Name() != xbrl.XSElementEName {
		return xbrl.QName{}, false
	}
	root := elem.Parent()
	if !root.IsValid() || root.Name() != xbrl.XSSchemaEName {
		return xbrl.QName{}, false
	}
	local, ok := elem.LocalAttribute("name")
	if !ok {
		return xbrl.QName{}, false
	}
	targetNS, _ := root.LocalAttribute("targetNamespace")
	name := xbrl.Name(targetNS, local)
	decl, ok := base.FindGlobalElementDeclaration(name)
	if !ok || decl.Elem != elem {
		return xbrl.QName{}, false
	}
	return name, true
}

var interConceptKinds = map[string]Kind{
	xbrl.ParentChildArcrole:        KindPresentation,
	xbrl.SummationItemArcrole:      KindCalculation,
	xbrl.GeneralSpecialArcrole:     KindGeneralSpecial,
	xbrl.EssenceAliasArcrole:       KindEssenceAlias,
	xbrl.SimilarTuplesArcrole:      KindSimilarTuples,
	xbrl.RequiresElementArcrole:    KindRequiresElement,
	xbrl.AllArcrole:                KindAll,
	xbrl.NotAllArcrole:             KindNotAll,
	xbrl.HypercubeDimensionArcrole: KindHypercubeDimension,
	xbrl.DimensionDomainArcrole:    KindDimensionDomain,
	xbrl.DomainMemberArcrole:       KindDomainMember,
	xbrl.DimensionDefaultArcrole:   KindDimensionDefault,
}

// classify applies the fixed (arc role, source kind, target kind) rules.
// Standard arc elements with unrecognized shapes fall back to KindUnknown;
// everything else is a non-standard (generic) relationship.
func classify(arc xlink.Arc, source, target Endpoint) Kind {
	if !xbrl.IsStandardArcEName(arc.Elem.Name()) {
		return KindNonStandard
	}
	if source.IsConcept() && target.IsConcept() {
		if kind, ok := interConceptKinds[arc.Arcrole]; ok {
			return kind
		}
		return KindUnknown
	}
	if source.IsConcept() && target.Resource != nil {
		switch {
		case arc.Arcrole == xbrl.ConceptLabelArcrole && target.Resource.Elem.Name() == xbrl.LinkLabelEName:
			return KindConceptLabel
		case arc.Arcrole == xbrl.ConceptReferenceArcrole && target.Resource.Elem.Name() == xbrl.LinkReferenceEName:
			return KindConceptReference
		}
	}
	return KindUnknown
}
