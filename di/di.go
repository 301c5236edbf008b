package di

import (
	"fmt"

	"go.uber.org/fx"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/fetcher/file"
)

// NewModule creates an Fx module that loads, parses, and supplies one named
// configuration document. The name is used as both the module name and the
// DI named tag for the *conf.Document, so multiple documents can coexist
// in one application:
//
//	fx.New(
//	    di.NewModule("app", "app.hconf", di.WithBaseDir("/etc/svc")),
//	    di.NewModule("features", "features.hconf"),
//	    fx.Invoke(fx.Annotate(run, fx.ParamTags(`name:"app"`, `name:"features"`))),
//	)
//
// The file is read and parsed lazily, when the container first needs the
// document; read and parse failures surface as Fx errors.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	cfg := Config{Path: path}

	for _, apply := range opts {
		apply(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return fx.Error(fmt.Errorf("module %q: %w", name, err))
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				newDocument(cfg),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

// newDocument returns the document constructor for one module, chaining
// the file fetcher into conf.Provider.
func newDocument(cfg Config) func() (*conf.Document, error) {
	return func() (*conf.Document, error) {
		fetcher, err := file.NewFetcher(cfg.Path,
			file.WithBaseDir(cfg.BaseDir),
			file.WithMaxSize(cfg.MaxSize),
		)()
		if err != nil {
			return nil, err
		}

		return conf.Provider(cfg.Parse...)(fetcher)
	}
}
