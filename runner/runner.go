// Package runner adapts a service.Service to an ifrit.Runner so it can be
// supervised alongside other processes and stopped on a signal.
package runner

import (
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/service"
	"github.com/tedsuo/ifrit"
)

type Runner struct {
	service service.Service
	config  config.Config
	logger  lager.Logger
}

func New(svc service.Service, cfg config.Config, logger lager.Logger) ifrit.Runner {
	return &Runner{
		service: svc,
		config:  cfg,
		logger:  logger,
	}
}

// Run initializes and starts the service, reports ready, and stops it through
// a ShutdownHook on the first signal. A service that fails to initialize or
// start is not stopped again.
func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("runner", lager.Data{"service": r.service.Name()})
	logger.Info("starting")
	defer logger.Info("done")

	err := r.service.Initialize(r.config)
	if err != nil {
		logger.Error("failed-to-initialize", err)
		return err
	}

	err = r.service.Start()
	if err != nil {
		logger.Error("failed-to-start", err)
		return err
	}

	close(ready)
	logger.Info("started")

	sig := <-signals
	logger.Info("received-signal", lager.Data{"signal": sig.String()})

	service.NewShutdownHook(r.service, logger).Run()
	return nil
}
