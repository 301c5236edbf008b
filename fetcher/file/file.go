package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrSizeLimitExceeded is returned when the file is larger than the configured size limit.
var ErrSizeLimitExceeded = errors.New("file exceeds size limit")

// Fetcher implements the conf.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read, the path points to a directory,
// or the file is larger than the configured size limit.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		options := newOptions(opts...)

		cleanPath := resolvePath(fpath, options.BaseDir)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if options.MaxSize > 0 && stat.Size() > options.MaxSize {
			return nil, fmt.Errorf("file %q is %d bytes, limit is %d: %w",
				cleanPath, stat.Size(), options.MaxSize, ErrSizeLimitExceeded)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// resolvePath joins relative paths onto the base directory, when one is
// set, and cleans the result. Absolute paths ignore the base directory.
func resolvePath(fpath, baseDir string) string {
	if baseDir != "" && !filepath.IsAbs(fpath) {
		return filepath.Join(baseDir, fpath)
	}

	return filepath.Clean(fpath)
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
