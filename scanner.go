package conf

// Position tracks a source location for diagnostics.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// excerptRadius bounds how many bytes of source context are captured on
// each side of an error position.
const excerptRadius = 20

// scanner is a byte cursor over the raw source buffer. It tracks line and
// column for diagnostics and can render a bounded excerpt around the
// current position.
type scanner struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

// peek returns the current byte without consuming it, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

// next consumes and returns the current byte. It fails with
// ErrUnexpectedEndOfInput when the source is exhausted.
func (s *scanner) next() (byte, error) {
	if s.atEnd() {
		return 0, s.errorf(ErrUnexpectedEndOfInput, "")
	}
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch, nil
}

// eat consumes the current byte iff it equals b and reports whether it did.
func (s *scanner) eat(b byte) bool {
	if s.atEnd() || s.src[s.pos] != b {
		return false
	}
	_, _ = s.next()
	return true
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// eatWhitespace consumes a run of space, tab, carriage return, and newline.
func (s *scanner) eatWhitespace() {
	for !s.atEnd() && isWhitespace(s.peek()) {
		_, _ = s.next()
	}
}

// skipWhitespaceAndComments consumes whitespace and '#' comments until
// neither remains. Comments run through end of line or end of input. This
// is invoked before every structural decision point: document start,
// before each keyword, and before a closing brace.
func (s *scanner) skipWhitespaceAndComments() {
	for {
		s.eatWhitespace()
		if s.peek() != '#' {
			return
		}
		for !s.atEnd() && s.peek() != '\n' {
			_, _ = s.next()
		}
	}
}

// cursor returns the current byte offset.
func (s *scanner) cursor() int {
	return s.pos
}

// slice returns a view of the source bytes in [begin, end).
func (s *scanner) slice(begin, end int) []byte {
	return s.src[begin:end]
}

func (s *scanner) position() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// excerpt renders a bounded window of the source line surrounding offset.
func (s *scanner) excerpt(offset int) string {
	if len(s.src) == 0 {
		return ""
	}
	if offset > len(s.src) {
		offset = len(s.src)
	}

	begin := offset
	for begin > 0 && offset-begin < excerptRadius && s.src[begin-1] != '\n' {
		begin--
	}
	end := offset
	for end < len(s.src) && end-offset < excerptRadius && s.src[end] != '\n' {
		end++
	}
	return string(s.src[begin:end])
}

// errorf builds a ParseError of the given kind at the current position.
func (s *scanner) errorf(kind error, detail string) *ParseError {
	return &ParseError{
		Err:     kind,
		Pos:     s.position(),
		Excerpt: s.excerpt(s.pos),
		Detail:  detail,
	}
}

// errorAt builds a ParseError of the given kind at a previously captured
// position, with the excerpt window centered there.
func (s *scanner) errorAt(kind error, pos Position, detail string) *ParseError {
	return &ParseError{
		Err:     kind,
		Pos:     pos,
		Excerpt: s.excerpt(pos.Offset),
		Detail:  detail,
	}
}
