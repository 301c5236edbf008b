package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	conf "github.com/0xalexb/hjarta-conf"
)

// ErrNilDocument is returned when the document to export is nil.
var ErrNilDocument = errors.New("nil document")

// ErrPathNotFound is returned when the specified path names no section in the document.
var ErrPathNotFound = errors.New("path not found")

// Exporter converts parsed documents to YAML.
// It uses goccy/go-yaml MapSlice so declaration order survives the conversion.
type Exporter struct{}

// NewExporter creates a new YAML exporter instance.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders the document as YAML. The path parameter scopes the
// export to one section using dot (.) as separator; only that section's
// body is rendered. Empty path exports the entire document.
func (e *Exporter) Export(doc *conf.Document, path string) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	node := any(documentSlice(doc))
	if path != "" {
		sec, err := sectionAt(doc, path)
		if err != nil {
			return nil, err
		}
		node = bodyValue(sec)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}

// sectionAt walks the dotted path through the section tree.
func sectionAt(doc *conf.Document, path string) (*conf.Section, error) {
	segments := strings.Split(path, ".")

	sec := doc.Section(segments[0])
	if sec == nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	for _, segment := range segments[1:] {
		sec = sec.Child(segment)
		if sec == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	return sec, nil
}

func documentSlice(doc *conf.Document) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(doc.Sections))
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		out = append(out, yaml.MapItem{Key: sec.Name, Value: bodyValue(sec)})
	}

	return out
}

func bodyValue(sec *conf.Section) any {
	if sec.Mode == conf.BodyFlat {
		items := make(yaml.MapSlice, 0, len(sec.Items))
		for i := range sec.Items {
			item := &sec.Items[i]
			items = append(items, yaml.MapItem{Key: item.Name, Value: itemValue(item)})
		}

		return items
	}

	children := make(yaml.MapSlice, 0, len(sec.Children))
	for i := range sec.Children {
		child := &sec.Children[i]
		children = append(children, yaml.MapItem{Key: child.Name, Value: bodyValue(child)})
	}

	return children
}

func itemValue(item *conf.Item) any {
	if item.Kind == conf.ItemList {
		values := make([]any, 0, len(item.Values))
		for _, v := range item.Values {
			values = append(values, scalarValue(v))
		}

		return values
	}

	return scalarValue(item.Value)
}

// scalarValue maps a conf scalar to the matching Go type, which the YAML
// encoder then renders natively.
func scalarValue(v conf.Value) any {
	switch v.Kind {
	case conf.ValueNumber:
		return v.Num
	case conf.ValueBool:
		return v.Flag
	default:
		return v.Str
	}
}
