package providers

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-scaffold/framework/config"
	"github.com/km-arc/go-scaffold/framework/injector"
	"github.com/km-arc/go-scaffold/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the injector as "config".
//
// Bound abstractions:
//   - "config" → *config.Config (shared)
type ConfigServiceProvider struct {
	injector.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(inj *injector.SimpleInjector) {
	envFiles := p.EnvFiles
	inj.Share("config")
	inj.Delegate("config", func(_ injector.Injector, _ string) (any, error) {
		return config.Load(envFiles...), nil
	})
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the zap logger from the loaded config.
//
// Bound abstractions:
//   - "logger" → *zap.Logger (shared)
//
// Configuration keys:
//   - APP_DEBUG   → development vs production encoder
//   - LOG_LEVEL   → minimum level (debug | info | warn | error)
type LoggingServiceProvider struct {
	injector.BaseProvider
}

func (p *LoggingServiceProvider) Register(inj *injector.SimpleInjector) {
	inj.Share("logger")
	inj.Delegate("logger", func(i injector.Injector, _ string) (any, error) {
		cfg, err := injector.Resolve[*config.Config](i, "config")
		if err != nil {
			return nil, err
		}
		return buildLogger(cfg)
	})
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.App.Debug {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstractions:
//   - "router" → *routing.Router (shared)
type RoutingServiceProvider struct {
	injector.BaseProvider
}

func (p *RoutingServiceProvider) Register(inj *injector.SimpleInjector) {
	inj.Share("router")
	inj.Delegate("router", func(_ injector.Injector, _ string) (any, error) {
		return routing.New(), nil
	})
}
