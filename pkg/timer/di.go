package timer

import (
	"go.uber.org/dig"
	"go.uber.org/zap"
)

// DIParams holds dependencies needed to create a Manager via DI.
type DIParams struct {
	dig.In

	Logger *zap.Logger
	Config *Config `optional:"true"`
}

// ProvideManager creates a Manager instance for dependency injection.
// Use this when integrating the timer manager into an app that uses
// uber-go/dig.
//
// Example:
//
//	container := dig.New()
//	container.Provide(timer.ProvideManager)
//	container.Invoke(func(mgr *timer.Manager) {
//	    mgr.Start(0)
//	})
func ProvideManager(params DIParams) (*Manager, error) {
	cfg := params.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Use the provided logger
	cfg.Logger = params.Logger

	return New(cfg)
}

// RegisterWithContainer registers the timer Manager with a dig container.
// This is a convenience function that handles the registration for you.
//
// Example:
//
//	container := dig.New()
//	if err := timer.RegisterWithContainer(container); err != nil {
//	    log.Fatal(err)
//	}
func RegisterWithContainer(container *dig.Container) error {
	return container.Provide(ProvideManager)
}

// StartParams holds dependencies for starting the background loop via DI.
type StartParams struct {
	dig.In

	Manager *Manager
}

// StartManager is a lifecycle hook that starts the background tick loop
// when invoked via DI.
//
// Example:
//
//	container.Invoke(timer.StartManager)
func StartManager(params StartParams) error {
	params.Manager.Start(0)
	return nil
}
