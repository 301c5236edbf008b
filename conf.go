package conf

import (
	"fmt"
	"log/slog"
)

// DataFetcher defines an interface for reading raw configuration data.
// See fetcher/file for a filesystem-backed implementation.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads configuration data and parses it
// into a Document. The given options are applied to the parse. The
// returned function's shape fits dependency injection containers; see the
// di package.
func Provider(opts ...Option) func(DataFetcher) (*Document, error) {
	return func(fetcher DataFetcher) (*Document, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		doc, err := Parse(data, opts...)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		slog.Debug("configuration parsed",
			slog.Int("sections", len(doc.Sections)),
			slog.Int("bytes", len(data)))

		return doc, nil
	}
}
