package config_test

import (
	"testing"

	"github.com/0xalexb/varconf/config"
	yamlparser "github.com/0xalexb/varconf/config/parser/yaml"
	"github.com/0xalexb/varconf/tree"
	"github.com/0xalexb/varconf/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(fx.NopLogger, config.NewModule("", "", yamlparser.NewParser, nil, nil))
	require.ErrorIs(t, app.Err(), config.ErrEmptyName)
}

func TestNewModule_ProvidesNamedNode(t *testing.T) {
	t.Parallel()

	newFetcher := func(data string) func() *StaticDataFetcher {
		return func() *StaticDataFetcher {
			return &StaticDataFetcher{Data: []byte(data)}
		}
	}

	v := serverValidator()

	var api, admin *tree.Node

	app := fx.New(
		fx.NopLogger,
		config.NewModule("api", "api", yamlparser.NewParser, newFetcher("api:\n  host: example.com\n"), v),
		config.NewModule("admin", "", yamlparser.NewParser, newFetcher("host: admin.example.com\n"), nil),
		fx.Invoke(fx.Annotate(
			func(apiNode, adminNode *tree.Node) {
				api = apiNode
				admin = adminNode
			},
			fx.ParamTags(`name:"api"`, `name:"admin"`),
		)),
	)
	require.NoError(t, app.Err())

	port, err := validator.Get[int](v, "port", api)
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	host, err := tree.Get[string](admin, "host")
	require.NoError(t, err)
	assert.Equal(t, "admin.example.com", host)
}

func TestNewModule_ValidationFailureStopsApp(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		config.NewModule("api", "api", yamlparser.NewParser, func() *StaticDataFetcher {
			return &StaticDataFetcher{Data: []byte("api:\n  port: 80\n")}
		}, serverValidator()),
		fx.Invoke(fx.Annotate(func(*tree.Node) {}, fx.ParamTags(`name:"api"`))),
	)

	require.Error(t, app.Err())
	assert.ErrorIs(t, app.Err(), validator.ErrSchema)
}
