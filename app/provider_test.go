package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appsvc "github.com/km-arc/go-scaffold/app"
	"github.com/km-arc/go-scaffold/framework/app"
	"github.com/km-arc/go-scaffold/framework/injector"
)

func newBootedApp(t *testing.T) *app.Application {
	t.Helper()
	t.Setenv("APP_NAME", "ScaffoldTest")
	t.Setenv("APP_DEBUG", "true")
	a := app.New("testdata/missing.env")
	a.Register(&appsvc.AppServiceProvider{Version: "9.9.9"})
	a.Boot()
	return a
}

func TestAppServiceProvider_StatusServiceResolvable(t *testing.T) {
	a := newBootedApp(t)

	svc := injector.MustResolve[*appsvc.StatusService](a.SimpleInjector, "StatusService")
	status := svc.Status()

	if status["app"] != "ScaffoldTest" {
		t.Errorf("status app: got %v want ScaffoldTest", status["app"])
	}
	if status["version"] != "9.9.9" {
		t.Errorf("status version: got %v want 9.9.9", status["version"])
	}
}

func TestAppServiceProvider_StatusServiceIsShared(t *testing.T) {
	a := newBootedApp(t)

	first := injector.MustResolve[*appsvc.StatusService](a.SimpleInjector, "StatusService")
	second := injector.MustResolve[*appsvc.StatusService](a.SimpleInjector, "StatusService")
	if first != second {
		t.Error("StatusService should be shared")
	}
}

func TestAppServiceProvider_ClockBoundToSystemClock(t *testing.T) {
	a := newBootedApp(t)

	clock := injector.MustResolve[appsvc.Clock](a.SimpleInjector, "Clock")
	if _, ok := clock.(*appsvc.SystemClock); !ok {
		t.Errorf("Clock resolved to %T, want *SystemClock", clock)
	}
}

func TestAppServiceProvider_StatusRoute(t *testing.T) {
	a := newBootedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	a.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GET /status: got %d want 200", rr.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %v", body)
	}
	if data["app"] != "ScaffoldTest" {
		t.Errorf("data app: got %v want ScaffoldTest", data["app"])
	}
}
