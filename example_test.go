package conf_test

import (
	"errors"
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"
)

func ExampleParse() {
	src := []byte(`
server {
  host = "0.0.0.0"
  port = 8080
  active = true
}
`)

	doc, err := conf.Parse(src)
	if err != nil {
		fmt.Println(err)

		return
	}

	host, _ := conf.Str(doc, "server.host")
	port, _ := conf.Int[int](doc, "server.port")

	fmt.Printf("%s:%d\n", host, port)
	// Output: 0.0.0.0:8080
}

func ExampleParse_invalidFormat() {
	// The third line opens a section inside a block that already holds
	// properties, which the format forbids.
	_, err := conf.Parse([]byte("a {\n  b = 1\n  c { d = 2 }\n}"))

	fmt.Println(errors.Is(err, conf.ErrInvalidFormat))

	var perr *conf.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Pos.Line, perr.Pos.Column)
	}
	// Output:
	// true
	// 3 3
}

func ExampleInt() {
	doc, _ := conf.Parse([]byte(`limits { burst = 300 }`))

	if _, err := conf.Int[uint8](doc, "limits.burst"); err != nil {
		fmt.Println(err)
	}

	burst, _ := conf.Int[uint16](doc, "limits.burst")
	fmt.Println(burst)
	// Output:
	// integer overflow: path "limits.burst": value 300 does not fit the requested integer type
	// 300
}

func ExampleInt_suggestions() {
	doc, _ := conf.Parse([]byte(`global { prop_1 = 100 prop_2 = "city" }`))

	_, err := conf.Int[int](doc, "global.prop_x")

	fmt.Println(errors.Is(err, conf.ErrInvalidQuery))
	fmt.Println(err)
	// Output:
	// true
	// invalid query: path "global.prop_x": unknown property "prop_x" in section "global" (did you mean "prop_1" or "prop_2"?)
}

func ExampleList() {
	doc, _ := conf.Parse([]byte(`server { tags = ["edge", "public", 3] }`))

	values, _ := conf.List(doc, "server.tags")
	for _, v := range values {
		fmt.Println(v)
	}
	// Output:
	// "edge"
	// "public"
	// 3
}

func ExampleProperties() {
	doc, _ := conf.Parse([]byte(`db { host = "10.0.0.5" port = 5432 }`))

	items, _ := conf.Properties(doc, "db")
	for _, item := range items {
		fmt.Printf("%s = %s\n", item.Name, item.Value)
	}
	// Output:
	// host = "10.0.0.5"
	// port = 5432
}

func ExampleMarshal() {
	doc, _ := conf.Parse([]byte("a{x=1 # noise\ny=[1,2]}"))

	fmt.Print(string(conf.Marshal(doc)))
	// Output:
	// a {
	//   x = 1
	//   y = [1, 2]
	// }
}

type deployRegion string

func ExampleEnvironmentTag() {
	doc, _ := conf.Parse(
		[]byte(`svc { active = true }`),
		conf.WithEnvironmentTag("eu-staging"),
	)

	region, ok := conf.EnvironmentTag[deployRegion](doc)

	fmt.Println(region, ok)
	// Output: eu-staging true
}
