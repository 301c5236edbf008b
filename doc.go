// Package conf implements a parser and query engine for the hconf
// configuration format.
//
// hconf is a brace-block format: a document is a sequence of named
// sections, each section body holds either properties (key = value) or
// nested sections, never both. Values are base-10 signed integers, the
// booleans true and false, double-quoted strings without escapes, or
// bracketed lists of those scalars. Lines starting with '#' are comments.
//
//	server {
//	  host = "0.0.0.0"
//	  port = 8080
//	  tags = ["edge", "public"]
//	}
//
// The implementation is a hand-rolled recursive-descent parser with three
// layers:
//
//   - scanner: a byte cursor over the raw source, tracking line and column
//     and skipping whitespace and comments.
//   - parser: consumes keywords and delimiters, enforces block purity and
//     the nesting depth limit, and builds the document tree.
//   - document types: the output data structures (Document, Section, Item,
//     Value).
//
// Parsed documents are read through dotted paths:
//
//	doc, err := conf.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port, err := conf.Int[uint16](doc, "server.port")
//
// All parse failures are *ParseError and all lookup failures are
// *QueryError; both unwrap to sentinel errors for errors.Is dispatch.
package conf
