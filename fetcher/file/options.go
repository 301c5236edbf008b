package file

// Options holds configuration settings for the file fetcher.
type Options struct {
	BaseDir string
	MaxSize int64
}

// Option defines a function type for configuring the file fetcher.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	var options Options
	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// WithBaseDir resolves relative configuration paths under dir.
// Absolute paths are used as given.
func WithBaseDir(dir string) Option {
	return func(opts *Options) {
		opts.BaseDir = dir
	}
}

// WithMaxSize rejects files larger than limit bytes at construction time.
// A limit of zero or less disables the check.
func WithMaxSize(limit int64) Option {
	return func(opts *Options) {
		opts.MaxSize = limit
	}
}
