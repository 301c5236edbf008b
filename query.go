package conf

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps how many near-miss names a QueryError carries.
const maxSuggestions = 3

// suggestNames ranks candidates by fuzzy similarity to name. When the full
// name matches nothing, progressively shorter prefixes are tried so that a
// typo in the tail still surfaces its neighbours.
func suggestNames(name string, candidates []string) []string {
	for pattern := name; pattern != ""; pattern = pattern[:len(pattern)-1] {
		matches := fuzzy.Find(pattern, candidates)
		if len(matches) == 0 {
			continue
		}
		if len(matches) > maxSuggestions {
			matches = matches[:maxSuggestions]
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Str)
		}
		return names
	}
	return nil
}

func unknownSection(path, segment string, scope []Section) *QueryError {
	return &QueryError{
		Err:         ErrInvalidQuery,
		Path:        path,
		Segment:     segment,
		Detail:      fmt.Sprintf("unknown section %q", segment),
		Suggestions: suggestNames(segment, sectionNames(scope)),
	}
}

// itemAt resolves path to a property. The path needs at least two
// segments: the leading segments descend through nested sections, the
// second-to-last names a flat section, and the last names a property
// inside it.
func itemAt(doc *Document, path string) (*Item, error) {
	segments := strings.Split(path, ".")
	if path == "" || len(segments) < 2 {
		return nil, &QueryError{
			Err:    ErrInvalidQuery,
			Path:   path,
			Detail: "path must name a section and a property",
		}
	}

	scope := doc.Sections
	for i := 0; i < len(segments)-2; i++ {
		sec := findSection(scope, segments[i])
		if sec == nil {
			return nil, unknownSection(path, segments[i], scope)
		}
		if sec.Mode != BodyNested {
			return nil, &QueryError{
				Err:     ErrInvalidQuery,
				Path:    path,
				Segment: segments[i],
				Detail:  fmt.Sprintf("section %q holds properties, not sections", segments[i]),
			}
		}
		scope = sec.Children
	}

	parent := segments[len(segments)-2]
	sec := findSection(scope, parent)
	if sec == nil {
		return nil, unknownSection(path, parent, scope)
	}
	if sec.Mode != BodyFlat {
		return nil, &QueryError{
			Err:     ErrInvalidQuery,
			Path:    path,
			Segment: parent,
			Detail:  fmt.Sprintf("section %q holds sections, not properties", parent),
		}
	}

	name := segments[len(segments)-1]
	item := sec.Item(name)
	if item == nil {
		return nil, &QueryError{
			Err:         ErrInvalidQuery,
			Path:        path,
			Segment:     name,
			Detail:      fmt.Sprintf("unknown property %q in section %q", name, parent),
			Suggestions: suggestNames(name, itemNames(sec.Items)),
		}
	}
	return item, nil
}

// Lookup resolves path to a property and returns it with its kind and
// value intact. It is the kind-agnostic companion of the typed accessors:
// use it when the caller decides per item how to treat the value.
func Lookup(doc *Document, path string) (*Item, error) {
	return itemAt(doc, path)
}

// sectionAt resolves every path segment as a section name, descending
// through nested bodies. Failures use ErrNotFound.
func sectionAt(doc *Document, path string) (*Section, error) {
	scope := doc.Sections
	var current *Section
	for _, segment := range strings.Split(path, ".") {
		if current != nil {
			if current.Mode != BodyNested {
				return nil, &QueryError{
					Err:     ErrNotFound,
					Path:    path,
					Segment: segment,
					Detail:  fmt.Sprintf("section %q holds properties, not sections", current.Name),
				}
			}
			scope = current.Children
		}
		next := findSection(scope, segment)
		if next == nil {
			return nil, &QueryError{
				Err:         ErrNotFound,
				Path:        path,
				Segment:     segment,
				Detail:      fmt.Sprintf("unknown section %q", segment),
				Suggestions: suggestNames(segment, sectionNames(scope)),
			}
		}
		current = next
	}
	return current, nil
}

// Properties returns the properties of the flat section at path, in
// source order. Every path segment must name a section and the last one
// must be flat, otherwise the lookup fails with ErrNotFound.
func Properties(doc *Document, path string) ([]Item, error) {
	if path == "" {
		return nil, &QueryError{
			Err:    ErrNotFound,
			Path:   path,
			Detail: "document root holds sections, not properties",
		}
	}
	sec, err := sectionAt(doc, path)
	if err != nil {
		return nil, err
	}
	if sec.Mode != BodyFlat {
		return nil, &QueryError{
			Err:     ErrNotFound,
			Path:    path,
			Segment: sec.Name,
			Detail:  fmt.Sprintf("section %q holds sections, not properties", sec.Name),
		}
	}
	return sec.Items, nil
}

// Sections returns the child sections of the nested section at path, in
// source order. The empty path addresses the document root and returns
// its top-level sections.
func Sections(doc *Document, path string) ([]Section, error) {
	if path == "" {
		return doc.Sections, nil
	}
	sec, err := sectionAt(doc, path)
	if err != nil {
		return nil, err
	}
	if sec.Mode != BodyNested {
		return nil, &QueryError{
			Err:     ErrNotFound,
			Path:    path,
			Segment: sec.Name,
			Detail:  fmt.Sprintf("section %q holds properties, not sections", sec.Name),
		}
	}
	return sec.Children, nil
}

// EnvironmentTag returns the environment tag the document was parsed
// under, converted to any string-kinded type. The second result reports
// whether a tag was set at all.
func EnvironmentTag[T ~string](doc *Document) (T, bool) {
	return T(doc.envTag), doc.envTag != ""
}
