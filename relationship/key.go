package relationship

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xbrlware/tqa/xbrl"
)

// BaseSetKey identifies one network of relationships subject to
// prohibition and overriding as a unit.
type BaseSetKey struct {
	ELR      string
	Arcrole  string
	ArcEName xbrl.QName
}

// Key is a relationship's identity for equivalence purposes. Two
// relationships with equal keys belong to the same XBRL equivalence class
// and are candidates for prohibition and overriding.
type Key struct {
	Arcrole string
	ELR     string
	Source  EndpointKey
	Target  EndpointKey
	// NonExemptAttrs is the canonical form of the arc attributes that
	// participate in equivalence: everything except the XLink attributes,
	// use, and priority. Order is always present, normalized to its
	// default of 1 when unspecified.
	NonExemptAttrs string
}

// Key computes the relationship's equivalence key. The computation is a
// pure function of the relationship and independent of extraction order.
func (r Relationship) Key() Key {
	return Key{
		Arcrole:        r.Arc.Arcrole,
		ELR:            r.Arc.ELR,
		Source:         r.Source.Key(),
		Target:         r.Target.Key(),
		NonExemptAttrs: nonExemptAttrs(r),
	}
}

func nonExemptAttrs(r Relationship) string {
	var parts []string
	hasOrder := false
	for _, attr := range r.Arc.Elem.Doc.Attributes(r.Arc.Elem.Node) {
		name := attr.Name
		if name.Namespace == xbrl.XLinkNamespace {
			continue
		}
		if name.Namespace == "" && (name.Local == "use" || name.Local == "priority") {
			continue
		}
		value := attr.Value
		if name.Namespace == "" && name.Local == "order" {
			hasOrder = true
			value = strconv.FormatFloat(r.Arc.Order, 'g', -1, 64)
		}
		parts = append(parts, name.String()+"="+value)
	}
	if !hasOrder {
		parts = append(parts, "order="+strconv.FormatFloat(r.Arc.Order, 'g', -1, 64))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
