package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-scaffold/framework/config"
	"github.com/km-arc/go-scaffold/framework/injector"
	"github.com/km-arc/go-scaffold/framework/providers"
	"github.com/km-arc/go-scaffold/routing"
)

// Application is the top-level bootstrap kernel. It embeds the injector and
// the provider registry so user code can call app.Bind(), app.Share(),
// app.Register() directly.
type Application struct {
	*injector.SimpleInjector
	Providers *injector.ProviderRegistry
}

// New creates the application and registers the framework core providers.
func New(envFiles ...string) *Application {
	inj := injector.New()
	registry := injector.NewProviderRegistry(inj)

	app := &Application{
		SimpleInjector: inj,
		Providers:      registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider injector.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the injector.
func (a *Application) Config() *config.Config {
	return injector.MustResolve[*config.Config](a.SimpleInjector, "config")
}

// Logger resolves the shared *zap.Logger from the injector.
func (a *Application) Logger() *zap.Logger {
	return injector.MustResolve[*zap.Logger](a.SimpleInjector, "logger")
}

// Router resolves *routing.Router from the injector.
func (a *Application) Router() *routing.Router {
	return injector.MustResolve[*routing.Router](a.SimpleInjector, "router")
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	log := a.Logger()
	router := a.Router()

	addr := ":" + cfg.App.Port
	log.Info("server starting",
		zap.String("app", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
	)
	return http.ListenAndServe(addr, router)
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
