// Package xbrl provides the QName value type and the namespace, arc-role
// and substitution-group constants used throughout the taxonomy model.
package xbrl

import (
	"fmt"
	"strings"
)

// QName is an expanded XML qualified name.
type QName struct {
	Namespace string
	Local     string
}

// Name builds a QName from a namespace URI and a local name.
func Name(namespace, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// IsZero reports whether the QName is the zero value.
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// String returns the Clark notation {namespace}local, or the bare local
// name for names without a namespace.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// Compare orders QNames by namespace, then local name.
func Compare(a, b QName) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Local, b.Local)
}

// SplitLexical splits a lexical QName into prefix and local part.
func SplitLexical(lexical string) (prefix, local string, hasPrefix bool, err error) {
	if lexical == "" {
		return "", "", false, fmt.Errorf("invalid QName: empty string")
	}
	idx := strings.IndexByte(lexical, ':')
	if idx < 0 {
		return "", lexical, false, nil
	}
	prefix = lexical[:idx]
	local = lexical[idx+1:]
	if prefix == "" || local == "" || strings.IndexByte(local, ':') >= 0 {
		return "", "", false, fmt.Errorf("invalid QName %q", lexical)
	}
	return prefix, local, true, nil
}

// ParseQNameValue parses a QName lexical value against an in-scope
// namespace context (prefix to namespace URI; "" keys the default
// namespace).
func ParseQNameValue(lexical string, nsContext map[string]string) (QName, error) {
	trimmed := strings.TrimSpace(lexical)
	if trimmed == "" {
		return QName{}, fmt.Errorf("invalid QName: empty string")
	}

	prefix, local, hasPrefix, err := SplitLexical(trimmed)
	if err != nil {
		return QName{}, err
	}

	if !hasPrefix {
		if defaultNS, ok := nsContext[""]; ok {
			return QName{Namespace: defaultNS, Local: local}, nil
		}
		return QName{Local: local}, nil
	}
	if prefix == XMLPrefix {
		if bound, ok := nsContext[XMLPrefix]; ok && bound != XMLNamespace {
			return QName{}, fmt.Errorf("prefix xml bound to %s, must be %s", bound, XMLNamespace)
		}
		return QName{Namespace: XMLNamespace, Local: local}, nil
	}
	ns, ok := nsContext[prefix]
	if !ok {
		return QName{}, fmt.Errorf("prefix %s not found in namespace context", prefix)
	}
	return QName{Namespace: ns, Local: local}, nil
}
