package di

import (
	"go.uber.org/fx"

	conf "github.com/0xalexb/hjarta-conf"
)

// Option defines a function type for configuring a document module.
type Option func(*Config)

// WithBaseDir resolves relative configuration paths under dir.
func WithBaseDir(dir string) Option {
	return func(cfg *Config) {
		cfg.BaseDir = dir
	}
}

// WithMaxSize rejects configuration files larger than limit bytes.
func WithMaxSize(limit int64) Option {
	return func(cfg *Config) {
		cfg.MaxSize = limit
	}
}

// WithParseOptions forwards parse options, such as conf.WithEnvironmentTag
// or conf.WithMaxDepth, to the document parse.
func WithParseOptions(opts ...conf.Option) Option {
	return func(cfg *Config) {
		cfg.Parse = append(cfg.Parse, opts...)
	}
}

// AppOptions holds configuration settings for the application.
type AppOptions struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// AppOption defines a function type for applying application options.
type AppOption func(*AppOptions)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) AppOption {
	return func(options *AppOptions) {
		options.Modules = append(options.Modules, modules...)
	}
}

// WithDocument attaches a named configuration document module to the
// application. It is shorthand for WithModules(NewModule(name, path, opts...)).
func WithDocument(name, path string, opts ...Option) AppOption {
	return func(options *AppOptions) {
		options.Modules = append(options.Modules, NewModule(name, path, opts...))
	}
}

// WithLogLevel sets the log level for the application.
func WithLogLevel(level string) AppOption {
	return func(options *AppOptions) {
		options.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" or "text".
func WithLogFormat(format string) AppOption {
	return func(options *AppOptions) {
		options.LogFormat = format
	}
}
