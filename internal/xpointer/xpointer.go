// Package xpointer parses the URI fragment forms used by XBRL: shorthand
// pointers (bare IDs) and one or more element() scheme pointers.
package xpointer

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer is one parsed XPointer.
type Pointer struct {
	// ID is the asserted element ID; empty for purely positional
	// element() pointers.
	ID string
	// ChildSequence is the 1-based child-index path, from the document
	// root when ID is empty, otherwise from the identified element.
	ChildSequence []int
}

// IsShorthand reports whether the pointer is a bare-ID shorthand pointer.
func (p Pointer) IsShorthand() bool {
	return p.ID != "" && len(p.ChildSequence) == 0
}

// Parse parses a URI fragment into one or more pointers. A fragment that
// is not an element() scheme sequence is a single shorthand pointer.
func Parse(fragment string) ([]Pointer, error) {
	if fragment == "" {
		return nil, fmt.Errorf("empty fragment")
	}
	if !strings.HasPrefix(fragment, "element(") {
		if strings.ContainsAny(fragment, "()/") {
			return nil, fmt.Errorf("invalid shorthand pointer %q", fragment)
		}
		return []Pointer{{ID: fragment}}, nil
	}

	var pointers []Pointer
	rest := fragment
	for rest != "" {
		if !strings.HasPrefix(rest, "element(") {
			return nil, fmt.Errorf("invalid pointer sequence %q", fragment)
		}
		body := rest[len("element("):]
		end := strings.IndexByte(body, ')')
		if end < 0 {
			return nil, fmt.Errorf("unterminated element() pointer in %q", fragment)
		}
		pointer, err := parseElementScheme(body[:end])
		if err != nil {
			return nil, err
		}
		pointers = append(pointers, pointer)
		rest = body[end+1:]
	}
	return pointers, nil
}

func parseElementScheme(body string) (Pointer, error) {
	if body == "" {
		return Pointer{}, fmt.Errorf("empty element() pointer")
	}
	var pointer Pointer
	parts := strings.Split(body, "/")
	start := 0
	if parts[0] != "" {
		pointer.ID = parts[0]
		start = 1
	} else {
		start = 1
		if len(parts) == 1 {
			return Pointer{}, fmt.Errorf("element() pointer %q has no steps", body)
		}
	}
	for _, part := range parts[start:] {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 1 {
			return Pointer{}, fmt.Errorf("invalid child index %q in element() pointer", part)
		}
		pointer.ChildSequence = append(pointer.ChildSequence, idx)
	}
	if pointer.ID == "" && len(pointer.ChildSequence) == 0 {
		return Pointer{}, fmt.Errorf("element() pointer %q has no steps", body)
	}
	return pointer, nil
}
