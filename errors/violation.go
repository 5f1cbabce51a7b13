// Package errors defines the taxonomy error codes and the violation
// values reported by loading, extraction and classification.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of taxonomy defect.
type ErrorCode string

const (
	// ErrXMLParse indicates a document could not be parsed.
	ErrXMLParse ErrorCode = "tqa-xml-parse"
	// ErrDocumentNotFound indicates a referenced document is not in the taxonomy.
	ErrDocumentNotFound ErrorCode = "tqa-document-not-found"
	// ErrPointerSyntax indicates a URI fragment is not a valid XPointer.
	ErrPointerSyntax ErrorCode = "tqa-xpointer-syntax"
	// ErrUnresolvedXLinkLabel indicates an arc references an XLink label
	// with no locator or resource in the same extended link.
	ErrUnresolvedXLinkLabel ErrorCode = "tqa-unresolved-xlink-label"
	// ErrUnresolvedLocator indicates a locator href does not resolve to an
	// element in the taxonomy.
	ErrUnresolvedLocator ErrorCode = "tqa-unresolved-locator"
	// ErrMissingArcAttribute indicates a required XLink arc attribute is absent.
	ErrMissingArcAttribute ErrorCode = "tqa-missing-arc-attribute"
	// ErrConceptBothItemAndTuple indicates a declaration is in both the
	// item and tuple substitution groups.
	ErrConceptBothItemAndTuple ErrorCode = "tqa-concept-both-item-and-tuple"
	// ErrConceptHypercubeAndDimension indicates a declaration is in both
	// the hypercube and dimension substitution groups.
	ErrConceptHypercubeAndDimension ErrorCode = "tqa-concept-hypercube-and-dimension"
	// ErrMissingTypedDomainRef indicates a typed dimension without a
	// typed domain reference.
	ErrMissingTypedDomainRef ErrorCode = "tqa-missing-typed-domain-ref"
	// ErrAmbiguousPriorityTie indicates equal-highest-priority normal arcs
	// under the error tie-break policy.
	ErrAmbiguousPriorityTie ErrorCode = "tqa-ambiguous-priority-tie"
)

// Violation describes one taxonomy defect with its code and location.
type Violation struct {
	Code     ErrorCode
	Message  string
	DocURI   string
	Location string
}

// Error formats the violation for display.
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", v.Code, v.Message)
	if v.DocURI != "" {
		fmt.Fprintf(&b, " in %s", v.DocURI)
	}
	if v.Location != "" {
		fmt.Fprintf(&b, " at %s", v.Location)
	}
	return b.String()
}

// ViolationList is an error wrapping one or more violations.
type ViolationList []Violation //nolint:errname // public API name uses XBRL domain term.

// Error returns a compact summary of the violations.
func (l ViolationList) Error() string {
	switch len(l) {
	case 0:
		return "no violations"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// New builds a Violation with a code, message, and optional document URI.
func New(code ErrorCode, msg, docURI string) Violation {
	return Violation{Code: code, Message: msg, DocURI: docURI}
}

// Newf formats a message and builds a Violation.
func Newf(code ErrorCode, docURI, format string, args ...any) Violation {
	return New(code, fmt.Sprintf(format, args...), docURI)
}

// AsViolations extracts violations from an error.
func AsViolations(err error) ([]Violation, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return []Violation(list), true
	}
	var one *Violation
	if errors.As(err, &one) && one != nil {
		return []Violation{*one}, true
	}
	return nil, false
}

// HasCode reports whether err carries a violation with the given code.
func HasCode(err error, code ErrorCode) bool {
	violations, ok := AsViolations(err)
	if !ok {
		return false
	}
	for _, v := range violations {
		if v.Code == code {
			return true
		}
	}
	return false
}
