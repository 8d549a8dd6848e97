package service

import (
	"sync"

	"code.cloudfoundry.org/lager/v3"
)

// ShutdownHook stops a service when the process is going away. It stops the
// service at most once and swallows any failure, since there is nobody left
// to report it to.
type ShutdownHook struct {
	service Service
	logger  lager.Logger
	once    sync.Once
}

func NewShutdownHook(service Service, logger lager.Logger) *ShutdownHook {
	return &ShutdownHook{
		service: service,
		logger:  logger.Session("shutdown-hook", lager.Data{"service": service.Name()}),
	}
}

func (h *ShutdownHook) Run() {
	h.once.Do(func() {
		h.logger.Info("stopping")

		err := guard(h.service.Stop)
		if err != nil {
			h.logger.Info("failed-to-stop", lager.Data{"error": err.Error()})
			return
		}

		h.logger.Info("stopped")
	})
}
