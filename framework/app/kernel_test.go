package app_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/km-arc/go-scaffold/framework/app"
	"github.com/km-arc/go-scaffold/framework/injector"
)

func newTestApp(t *testing.T) *app.Application {
	t.Helper()
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_NAME", "ScaffoldTest")
	a := app.New("testdata/missing.env")
	a.Boot()
	return a
}

func TestNew_FrameworkServicesResolvable(t *testing.T) {
	a := newTestApp(t)

	cfg := a.Config()
	if cfg.App.Name != "ScaffoldTest" {
		t.Errorf("config App.Name: got %q want %q", cfg.App.Name, "ScaffoldTest")
	}
	if a.Logger() == nil {
		t.Fatal("logger should resolve")
	}
	if a.Router() == nil {
		t.Fatal("router should resolve")
	}
}

func TestNew_FrameworkServicesAreShared(t *testing.T) {
	a := newTestApp(t)

	first := injector.MustResolve[*zap.Logger](a.SimpleInjector, "logger")
	second := injector.MustResolve[*zap.Logger](a.SimpleInjector, "logger")
	if first != second {
		t.Error("logger should be a shared instance")
	}

	if a.Config() != a.Config() {
		t.Error("config should be a shared instance")
	}
}

func TestApplication_EnvironmentHelpers(t *testing.T) {
	a := newTestApp(t)

	if got := a.Environment(); got != "testing" {
		t.Errorf("Environment: got %q want %q", got, "testing")
	}
	if !a.IsTesting() {
		t.Error("IsTesting should be true")
	}
	if a.IsProduction() {
		t.Error("IsProduction should be false")
	}
}
