package conf

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the scalar value variants.
type ValueKind string

// Scalar value kinds.
const (
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "bool"
	ValueString ValueKind = "string"
)

// Value is a parsed scalar. Kind selects which typed field is meaningful:
// Num for ValueNumber, Flag for ValueBool, Str for ValueString.
type Value struct {
	Kind ValueKind
	Num  int64
	Flag bool
	Str  string
}

// Number returns a numeric Value.
func Number(n int64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// Boolean returns a boolean Value.
func Boolean(flag bool) Value {
	return Value{Kind: ValueBool, Flag: flag}
}

// Text returns a string Value.
func Text(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// String renders the value as canonical source text: numbers in base 10,
// booleans as true/false, strings double-quoted.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatInt(v.Num, 10)
	case ValueBool:
		return strconv.FormatBool(v.Flag)
	case ValueString:
		return `"` + v.Str + `"`
	}
	return ""
}

// isScalarTerminator reports whether ch ends a bare scalar token. Commas
// and closing brackets terminate only inside list literals.
func isScalarTerminator(ch byte, inList bool) bool {
	if isWhitespace(ch) || ch == '}' {
		return true
	}
	return inList && (ch == ',' || ch == ']')
}

// scanBareToken accumulates bytes from the current position until a scalar
// terminator or end of input.
func scanBareToken(s *scanner, inList bool) string {
	begin := s.cursor()
	for !s.atEnd() && !isScalarTerminator(s.peek(), inList) {
		_, _ = s.next()
	}
	return string(s.slice(begin, s.cursor()))
}

// parseScalar reads one scalar value. The variant is dispatched on the
// leading byte: '"' opens a string, 't' or 'f' must spell a boolean, and
// anything else is read as a base-10 signed integer.
func parseScalar(s *scanner, inList bool) (Value, error) {
	if s.atEnd() {
		return Value{}, s.errorf(ErrUnexpectedEndOfInput, "expected a value")
	}

	pos := s.position()
	switch ch := s.peek(); {
	case ch == '"':
		return parseQuoted(s)
	case ch == 't' || ch == 'f':
		switch token := scanBareToken(s, inList); token {
		case "true":
			return Boolean(true), nil
		case "false":
			return Boolean(false), nil
		default:
			return Value{}, s.errorAt(ErrInvalidToken, pos, fmt.Sprintf("bad boolean literal %q", token))
		}
	default:
		token := scanBareToken(s, inList)
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}, s.errorAt(ErrInvalidNumber, pos, fmt.Sprintf("cannot parse %q as integer", token))
		}
		return Number(n), nil
	}
}

// parseQuoted reads a double-quoted string. The opening quote must be the
// current byte. There are no escape sequences: the string runs to the next
// '"' and may span any byte except a quote. Hitting end of input before
// the closing quote fails with ErrUnexpectedEndOfInput.
func parseQuoted(s *scanner) (Value, error) {
	_, _ = s.next() // opening quote
	begin := s.cursor()
	for {
		ch, err := s.next()
		if err != nil {
			return Value{}, fmt.Errorf("unterminated string: %w", err)
		}
		if ch == '"' {
			return Text(string(s.slice(begin, s.cursor()-1))), nil
		}
	}
}

// parseList reads a bracketed list of comma-separated scalars. The opening
// bracket must be the current byte. Lists may be empty and may span
// multiple lines; elements are scalars only, never nested lists.
func parseList(s *scanner) ([]Value, error) {
	_, _ = s.next() // opening bracket
	s.eatWhitespace()
	if s.eat(']') {
		return nil, nil
	}

	var values []Value
	for {
		s.eatWhitespace()
		v, err := parseScalar(s, true)
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		s.eatWhitespace()
		if s.eat(']') {
			return values, nil
		}
		if s.eat(',') {
			continue
		}
		if s.atEnd() {
			return nil, s.errorf(ErrUnexpectedEndOfInput, "unterminated list")
		}
		return nil, s.errorf(ErrInvalidToken, fmt.Sprintf("expected ',' or ']' in list, found %q", string(s.peek())))
	}
}
