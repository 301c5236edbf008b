// Package file provides a file-based DataFetcher implementation for the conf package.
//
// This package reads configuration data from files on the filesystem.
// It implements the conf.DataFetcher interface, returning raw bytes
// for subsequent parsing.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem. This
// provides consistent configuration data throughout the application lifecycle.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/app.hconf")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Relative paths can be resolved against a base directory, and oversized
// files can be rejected before reading:
//
//	fetcher, err := file.NewFetcher("app.hconf",
//	    file.WithBaseDir("/etc/app"),
//	    file.WithMaxSize(1<<20),
//	)()
//
// Error Handling:
//   - Construction returns an error if the file cannot be read, the path is a
//     directory, or the file exceeds the configured size limit
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) and
//     errors.Is(err, file.ErrSizeLimitExceeded) to classify failures
package file
