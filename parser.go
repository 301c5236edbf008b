package conf

import (
	"fmt"
	"strings"
)

// Parse parses hconf source text into a Document. Options control the
// environment tag attached to the document and the maximum section
// nesting depth.
func Parse(src []byte, opts ...Option) (*Document, error) {
	options := newOptions(opts...)
	p := &parser{scan: newScanner(src), maxDepth: options.MaxDepth}
	sections, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return &Document{Sections: sections, envTag: options.EnvironmentTag}, nil
}

// parser drives the structural grammar over a scanner. Nesting depth is
// tracked explicitly so malformed input fails with ErrMaxDepthExceeded
// instead of exhausting the stack.
type parser struct {
	scan     *scanner
	maxDepth int
}

// entry is one parsed block member. Exactly one of section or item is set.
type entry struct {
	pos     Position
	section *Section
	item    *Item
}

func (p *parser) parseDocument() ([]Section, error) {
	var sections []Section
	for {
		p.scan.skipWhitespaceAndComments()
		if p.scan.atEnd() {
			return sections, nil
		}
		e, err := p.parseEntry(0)
		if err != nil {
			return nil, err
		}
		if e.item != nil {
			return nil, p.scan.errorAt(ErrInvalidFormat, e.pos,
				fmt.Sprintf("property %q declared outside a section", e.item.Name))
		}
		sections = append(sections, *e.section)
	}
}

// parseEntry parses one keyword and the construct its delimiter selects:
// '{' opens a section block, '=' introduces a property value. depth is the
// nesting depth of the block the entry appears in, zero at top level.
func (p *parser) parseEntry(depth int) (entry, error) {
	pos := p.scan.position()
	name, delim, err := p.scanKeyword(pos)
	if err != nil {
		return entry{}, err
	}

	if delim == '{' {
		if depth+1 > p.maxDepth {
			return entry{}, p.scan.errorAt(ErrMaxDepthExceeded, pos,
				fmt.Sprintf("section %q nests deeper than %d levels", name, p.maxDepth))
		}
		sec, err := p.parseBlock(name, depth+1)
		if err != nil {
			return entry{}, err
		}
		return entry{pos: pos, section: sec}, nil
	}

	item, err := p.parseItem(name)
	if err != nil {
		return entry{}, err
	}
	return entry{pos: pos, item: item}, nil
}

// scanKeyword accumulates bytes ahead of the next '=' or '{', consumes
// that delimiter, and validates the accumulated text as a keyword.
func (p *parser) scanKeyword(pos Position) (string, byte, error) {
	begin := p.scan.cursor()
	for {
		if p.scan.atEnd() {
			return "", 0, p.scan.errorAt(ErrUnexpectedEndOfInput, pos, "keyword without '=' or '{'")
		}
		ch := p.scan.peek()
		if ch == '=' || ch == '{' {
			raw := string(p.scan.slice(begin, p.scan.cursor()))
			_, _ = p.scan.next()
			name, err := p.validateKeyword(raw, pos)
			if err != nil {
				return "", 0, err
			}
			return name, ch, nil
		}
		if ch == '}' {
			return "", 0, p.scan.errorf(ErrInvalidToken, "unexpected '}'")
		}
		_, _ = p.scan.next()
	}
}

// validateKeyword strips surrounding whitespace and requires the remaining
// bytes to form a nonempty identifier of [A-Za-z0-9_].
func (p *parser) validateKeyword(raw string, pos Position) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", p.scan.errorAt(ErrInvalidToken, pos, "missing keyword before delimiter")
	}
	for i := 0; i < len(name); i++ {
		if !isKeywordByte(name[i]) {
			return "", p.scan.errorAt(ErrInvalidKeyword, pos,
				fmt.Sprintf("keyword %q contains invalid byte %q", name, string(name[i])))
		}
	}
	return name, nil
}

func isKeywordByte(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}

// parseBlock parses block members up to the closing '}'. The first member
// fixes the block's mode; a member of the other variety is rejected. An
// empty block stays nested with zero children.
func (p *parser) parseBlock(name string, depth int) (*Section, error) {
	sec := &Section{Name: name, Mode: BodyNested}
	for {
		p.scan.skipWhitespaceAndComments()
		if p.scan.atEnd() {
			return nil, p.scan.errorf(ErrUnexpectedEndOfInput,
				fmt.Sprintf("section %q is missing its closing '}'", name))
		}
		if p.scan.eat('}') {
			return sec, nil
		}

		e, err := p.parseEntry(depth)
		if err != nil {
			return nil, err
		}
		switch {
		case e.section != nil:
			if len(sec.Items) > 0 {
				return nil, p.scan.errorAt(ErrInvalidFormat, e.pos,
					fmt.Sprintf("section %q follows properties in block %q", e.section.Name, name))
			}
			sec.Children = append(sec.Children, *e.section)
		case e.item != nil:
			if len(sec.Children) > 0 {
				return nil, p.scan.errorAt(ErrInvalidFormat, e.pos,
					fmt.Sprintf("property %q follows sections in block %q", e.item.Name, name))
			}
			sec.Mode = BodyFlat
			sec.Items = append(sec.Items, *e.item)
		}
	}
}

// parseItem parses the value side of a property. A '[' opens a list
// literal, anything else is a single scalar.
func (p *parser) parseItem(name string) (*Item, error) {
	p.scan.eatWhitespace()
	if p.scan.peek() == '[' {
		values, err := parseList(p.scan)
		if err != nil {
			return nil, err
		}
		return &Item{Name: name, Kind: ItemList, Values: values}, nil
	}

	v, err := parseScalar(p.scan, false)
	if err != nil {
		return nil, err
	}
	return &Item{Name: name, Kind: ItemPair, Value: v}, nil
}
