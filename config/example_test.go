package config_test

import (
	"fmt"

	"github.com/0xalexb/varconf/config"
	yamlparser "github.com/0xalexb/varconf/config/parser/yaml"
	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/schema"
	"github.com/0xalexb/varconf/tree"
	"github.com/0xalexb/varconf/validator"

	"go.uber.org/fx"
)

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func serverValidator() *validator.Validator {
	v, err := validator.New("api", schema.MustOptionMap(
		&schema.Option{Name: "host", Kind: schema.String, Required: true},
		&schema.Option{Name: "port", Kind: schema.Int, Default: scalar.Int(8080), Min: scalar.Int(1), Max: scalar.Int(65535)},
		&schema.Option{Name: "timeout", Kind: schema.Int, Default: scalar.Int(30)},
	))
	if err != nil {
		panic(err)
	}

	return v
}

func ExampleProvider() {
	provider := config.Provider("api", serverValidator())

	fetcher := &StaticDataFetcher{
		Data: []byte(`
api:
  host: api.example.com
  port: 3000
admin:
  host: admin.example.com
`),
	}

	// Read, parse, select "api", then validate and fill defaults.
	node, err := provider(yamlparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Print(node)
	// Output:
	// [Path: api]
	// host::string() = "api.example.com"
	// port::int()    = 3000
	// timeout::int() = 30
}

func ExampleProvider_validationError() {
	provider := config.Provider("api", serverValidator())

	_, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: []byte("api:\n  port: 70000\n")})
	fmt.Println(err)
	// Output: validating error: config error at "api/host": missing required option with no default
}

func ExampleNewModule() {
	module := config.NewModule("api", "api",
		yamlparser.NewParser,
		func() *StaticDataFetcher {
			return &StaticDataFetcher{Data: []byte("api:\n  host: example.com\n")}
		},
		serverValidator(),
	)

	app := fx.New(
		fx.NopLogger,
		module,
		fx.Invoke(fx.Annotate(
			func(node *tree.Node) {
				port, _ := tree.Get[int](node, "port")
				fmt.Println(node.RootPath(), port)
			},
			fx.ParamTags(`name:"api"`),
		)),
	)
	if err := app.Err(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	// Output: api 8080
}
