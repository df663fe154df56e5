package app

import "time"

// Clock abstracts wall-clock time so StatusService stays testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func NewSystemClock() *SystemClock { return &SystemClock{} }

func (c *SystemClock) Now() time.Time { return time.Now() }

// StatusService reports application identity and uptime. It is constructed
// through the injector: the clock arrives as an object dependency, the name
// and version as named value arguments.
type StatusService struct {
	clock   Clock
	appName string
	version string
	started time.Time
}

func NewStatusService(clock Clock, appName, version string) *StatusService {
	return &StatusService{
		clock:   clock,
		appName: appName,
		version: version,
		started: clock.Now(),
	}
}

func (s *StatusService) Status() map[string]any {
	return map[string]any{
		"app":     s.appName,
		"version": s.version,
		"uptime":  s.clock.Now().Sub(s.started).Round(time.Second).String(),
	}
}
