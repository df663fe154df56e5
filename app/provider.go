package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-scaffold/framework/config"
	"github.com/km-arc/go-scaffold/framework/injector"
	gohttp "github.com/km-arc/go-scaffold/http"
	"github.com/km-arc/go-scaffold/routing"
)

// AppServiceProvider wires the demo services and routes.
//
// Bound abstractions:
//   - "Clock"         → interface, bound to "SystemClock"
//   - "SystemClock"   → constructed per resolution
//   - "StatusService" → shared, appName bound at boot from config
type AppServiceProvider struct {
	injector.BaseProvider
	Version string
}

func (p *AppServiceProvider) Register(inj *injector.SimpleInjector) {
	version := p.Version
	if version == "" {
		version = "0.1.0"
	}

	inj.DeclareInterface("Clock").
		Bind("Clock", "SystemClock").
		Share("StatusService")

	inj.MustRegisterType("SystemClock", NewSystemClock).
		MustRegisterType("StatusService", NewStatusService,
			injector.Dep("clock", "Clock"),
			injector.Arg("appName"),
			injector.ArgDefault("version", version),
		)
}

func (p *AppServiceProvider) Boot(inj *injector.SimpleInjector) {
	cfg := injector.MustResolve[*config.Config](inj, "config")
	inj.BindArgument("StatusService", "appName", cfg.App.Name)

	log := injector.MustResolve[*zap.Logger](inj, "logger")
	router := injector.MustResolve[*routing.Router](inj, "router")
	status := injector.MustResolve[*StatusService](inj, "StatusService")

	router.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		gohttp.NewResponse(w).Success(status.Status())
	})

	log.Debug("application routes registered", zap.String("route", "/status"))
}
