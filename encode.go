package conf

import (
	"bytes"
	"strings"
)

// indentUnit is the per-level indentation used by Marshal.
const indentUnit = "  "

// Marshal renders the document as canonical source text: two-space
// indentation, one construct per line, a blank line between top-level
// sections, and values in the form Value.String produces. Parsing the
// output yields a tree equal to the one marshalled.
func Marshal(doc *Document) []byte {
	var buf bytes.Buffer
	for i := range doc.Sections {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeSection(&buf, &doc.Sections[i], 0)
	}
	return buf.Bytes()
}

func writeSection(buf *bytes.Buffer, sec *Section, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	if sec.Mode == BodyNested && len(sec.Children) == 0 {
		buf.WriteString(indent + sec.Name + " {}\n")
		return
	}

	buf.WriteString(indent + sec.Name + " {\n")
	switch sec.Mode {
	case BodyFlat:
		for i := range sec.Items {
			writeItem(buf, &sec.Items[i], depth+1)
		}
	case BodyNested:
		for i := range sec.Children {
			writeSection(buf, &sec.Children[i], depth+1)
		}
	}
	buf.WriteString(indent + "}\n")
}

func writeItem(buf *bytes.Buffer, item *Item, depth int) {
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteString(item.Name)
	buf.WriteString(" = ")
	if item.Kind == ItemList {
		buf.WriteByte('[')
		for i, v := range item.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(v.String())
		}
		buf.WriteByte(']')
	} else {
		buf.WriteString(item.Value.String())
	}
	buf.WriteByte('\n')
}
