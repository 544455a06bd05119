package varconf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/varconf/config"
	"github.com/0xalexb/varconf/logging"
	"github.com/0xalexb/varconf/tree"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// ErrUnknownConfig is returned by App.Config for a name that was not added
// with WithConfigFile.
var ErrUnknownConfig = errors.New("unknown config")

// App is an Fx application whose configuration trees are loaded and
// validated while the app is built, before any module starts.
type App struct {
	app     *fx.App
	configs map[string]*tree.Node
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{configs: make(map[string]*tree.Node, len(options.Configs))}
	app.app = app.configure(&options)

	return app
}

func (app *App) configure(options *Options) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
		fx.Options(app.collect(options.Configs)...),
	)
}

// collect requests every named config tree, so a file that fails to load or
// validate fails the app even when no module depends on it.
func (app *App) collect(names []string) []fx.Option {
	invokes := make([]fx.Option, 0, len(names))

	for _, name := range names {
		invokes = append(invokes, fx.Invoke(fx.Annotate(
			func(node *tree.Node) {
				app.configs[name] = node
			},
			fx.ParamTags(config.NameTag(name)),
		)))
	}

	return invokes
}

// Config returns the validated tree added with WithConfigFile under name.
func (app *App) Config(name string) (*tree.Node, error) {
	if app == nil || app.app == nil {
		return nil, errAppNotInitialized
	}

	err := app.app.Err()
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", name, err)
	}

	node, ok := app.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfig, name)
	}

	return node, nil
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(context.Background())
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(context.Background())
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
