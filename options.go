package conf

// DefaultMaxDepth is the section nesting depth limit applied when
// WithMaxDepth is not used.
const DefaultMaxDepth = 64

// Options holds configuration settings for parsing.
type Options struct {
	EnvironmentTag string
	MaxDepth       int
}

// Option defines a function type for applying parse options.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	options := Options{MaxDepth: DefaultMaxDepth}
	for _, apply := range opts {
		apply(&options)
	}
	if options.MaxDepth < 1 {
		options.MaxDepth = DefaultMaxDepth
	}
	return options
}

// WithEnvironmentTag labels the parsed document with an environment tag,
// readable later through EnvironmentTag. The tag is metadata only and does
// not affect parsing.
func WithEnvironmentTag(tag string) Option {
	return func(opts *Options) {
		opts.EnvironmentTag = tag
	}
}

// WithMaxDepth sets the maximum section nesting depth.
// If not set or below one, defaults to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}
