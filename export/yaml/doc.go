// Package yaml provides YAML export for parsed conf documents.
//
// This package uses github.com/goccy/go-yaml with MapSlice values so the
// output keeps the declaration order of sections and properties instead
// of sorting keys. Flat sections become YAML mappings of their
// properties, nested sections become mappings of their children, and
// list properties become YAML sequences.
//
// Usage:
//
//	exporter := yaml.NewExporter()
//	out, err := exporter.Export(doc, "")
//
// Path Scoping:
//   - Empty path "" -> export the entire document
//   - Dotted path "infra.db" -> export only that section's body
//   - Unknown paths fail with ErrPathNotFound
package yaml
