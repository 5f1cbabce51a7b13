package errors

import (
	"fmt"
	"testing"
)

func TestViolationError(t *testing.T) {
	tests := []struct {
		name      string
		violation Violation
		want      string
	}{
		{
			name:      "message only",
			violation: New(ErrXMLParse, "unexpected EOF", ""),
			want:      "[tqa-xml-parse] unexpected EOF",
		},
		{
			name:      "with document",
			violation: New(ErrUnresolvedLocator, "href does not resolve", "http://example.com/pre.xml"),
			want:      "[tqa-unresolved-locator] href does not resolve in http://example.com/pre.xml",
		},
		{
			name: "with location",
			violation: Violation{
				Code: ErrPointerSyntax, Message: "bad fragment",
				DocURI: "http://example.com/pre.xml", Location: "element(1",
			},
			want: "[tqa-xpointer-syntax] bad fragment in http://example.com/pre.xml at element(1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.violation.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViolationListError(t *testing.T) {
	if got := (ViolationList{}).Error(); got != "no violations" {
		t.Errorf("empty list Error() = %q", got)
	}

	one := ViolationList{New(ErrXMLParse, "bad", "")}
	if got := one.Error(); got != "[tqa-xml-parse] bad" {
		t.Errorf("single list Error() = %q", got)
	}

	three := ViolationList{
		New(ErrXMLParse, "bad", ""),
		New(ErrUnresolvedLocator, "worse", ""),
		New(ErrPointerSyntax, "worst", ""),
	}
	if got := three.Error(); got != "[tqa-xml-parse] bad (and 2 more)" {
		t.Errorf("multi list Error() = %q", got)
	}
}

func TestAsViolations(t *testing.T) {
	v := Newf(ErrUnresolvedLocator, "http://example.com/pre.xml", "href %q does not resolve", "x.xsd#a")

	got, ok := AsViolations(&v)
	if !ok || len(got) != 1 || got[0].Code != ErrUnresolvedLocator {
		t.Fatalf("AsViolations(*Violation) = %v, %v", got, ok)
	}

	wrapped := fmt.Errorf("extract: %w", &v)
	if !HasCode(wrapped, ErrUnresolvedLocator) {
		t.Error("HasCode() = false for a wrapped violation")
	}
	if HasCode(wrapped, ErrXMLParse) {
		t.Error("HasCode() = true for a code the error does not carry")
	}

	list := ViolationList{v, New(ErrXMLParse, "bad", "")}
	got, ok = AsViolations(list)
	if !ok || len(got) != 2 {
		t.Fatalf("AsViolations(ViolationList) = %v, %v", got, ok)
	}

	if _, ok := AsViolations(nil); ok {
		t.Error("AsViolations(nil) = ok")
	}
	if _, ok := AsViolations(fmt.Errorf("plain")); ok {
		t.Error("AsViolations(plain error) = ok")
	}
}
