package di_test

import (
	"fmt"

	"go.uber.org/fx"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/di"
)

// ServerService is a service that reads its settings from a configuration document.
type ServerService struct {
	Host    string
	Port    int
	Timeout int
}

// Address returns the server address.
func (s *ServerService) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func newServerService(doc *conf.Document) (*ServerService, error) {
	host, err := conf.Str(doc, "server.host")
	if err != nil {
		return nil, err
	}

	port, err := conf.Int[int](doc, "server.port")
	if err != nil {
		return nil, err
	}

	timeout, err := conf.Int[int](doc, "limits.timeout")
	if err != nil {
		return nil, err
	}

	return &ServerService{Host: host, Port: port, Timeout: timeout}, nil
}

// Example_appWithDocument demonstrates how to use App, WithDocument, and the
// typed accessors together. It shows the complete workflow from a configuration
// file on disk to a service built by dependency injection.
func Example_appWithDocument() {
	// Step 1: Create a service module. The document is resolved from the
	// container by its module name.
	serviceModule := fx.Module("service",
		fx.Provide(
			fx.Annotate(
				newServerService,
				fx.ParamTags(`name:"service"`),
			),
		),
	)

	// Step 2: Create and start the App with the document and the service.
	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	app := di.NewApp(
		di.WithLogLevel("error"),
		di.WithDocument("service", "testdata/service.conf"),
		di.WithModules(serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	// Step 3: Verify the service has its settings injected.
	fmt.Printf("Server address: %s\n", service.Address())
	fmt.Printf("Timeout: %d\n", service.Timeout)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30
}
