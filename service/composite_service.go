package service

import (
	"errors"
	"reflect"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/metric"
	uuid "github.com/nu7hatch/gouuid"
)

const (
	startFailures = metric.Counter("ServiceStartFailures")
	stopFailures  = metric.Counter("ServiceStopFailures")
	startDuration = metric.Duration("CompositeStartDuration")
)

// CompositeService drives an ordered list of child services. Children start
// in the order they were added and stop in the reverse order. A composite is
// itself a Service, so composites nest.
type CompositeService struct {
	*BaseService

	logger lager.Logger

	lock     sync.Mutex
	services []Service
}

func NewCompositeService(name string, logger lager.Logger, services ...Service) *CompositeService {
	return &CompositeService{
		BaseService: NewBaseService(name),
		logger:      logger.Session("composite", lager.Data{"name": name}),
		services:    append([]Service{}, services...),
	}
}

// Services returns a snapshot of the children in start order.
func (c *CompositeService) Services() []Service {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]Service{}, c.services...)
}

func (c *CompositeService) AddService(service Service) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.services = append(c.services, service)
}

// RemoveService drops the first child that is the same instance as service.
// The removed child is not stopped.
func (c *CompositeService) RemoveService(service Service) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	for i, s := range c.services {
		if sameService(s, service) {
			last := len(c.services) - 1
			copy(c.services[i:], c.services[i+1:])
			c.services[last] = nil
			c.services = c.services[:last]
			return true
		}
	}
	return false
}

func (c *CompositeService) Initialize(cfg config.Config) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	logger := c.logger.Session("initialize")

	for _, service := range c.services {
		err := guard(func() error { return service.Initialize(cfg) })
		if err != nil {
			logger.Error("failed-to-initialize-service", err, lager.Data{"service": service.Name()})

			var initErr *InitializationError
			if errors.As(err, &initErr) {
				return err
			}
			return &InitializationError{Service: service.Name(), Err: err}
		}
	}

	return c.BaseService.Initialize(cfg)
}

// Start starts every child in order. If one fails, the children started
// before it are stopped in reverse order and a *StartFailure wrapping the
// original error is returned. The failing child itself is left alone.
func (c *CompositeService) Start() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	logger := c.logger.Session("start", lager.Data{"attempt": attemptID()})
	logger.Info("starting", lager.Data{"services": len(c.services)})

	startTime := time.Now()

	started := 0
	for _, service := range c.services {
		err := guard(service.Start)
		if err != nil {
			return c.abortStart(logger, service, started, err)
		}
		started++
	}

	err := c.BaseService.Start()
	if err != nil {
		return c.abortStart(logger, c, started, err)
	}

	startDuration.Send(time.Since(startTime))
	logger.Info("started")
	return nil
}

// Stop stops every child in reverse order, logging and skipping past any
// that fail. Stopping an already stopped composite does nothing.
func (c *CompositeService) Stop() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.BaseService.State() == StateStopped {
		return nil
	}

	logger := c.logger.Session("stop")
	logger.Info("stopping", lager.Data{"services": len(c.services)})

	if len(c.services) > 0 {
		c.stopFrom(logger, len(c.services)-1)
	}

	logger.Info("stopped")
	return c.BaseService.Stop()
}

func (c *CompositeService) abortStart(logger lager.Logger, failed Service, started int, cause error) error {
	startFailures.Increment()
	logger.Error("failed-to-start-service", cause, lager.Data{
		"service": failed.Name(),
		"started": started,
	})

	c.stopFrom(logger, started-1)

	return &StartFailure{Name: c.Name(), Err: cause}
}

func (c *CompositeService) stopFrom(logger lager.Logger, from int) {
	for i := from; i >= 0; i-- {
		service := c.services[i]

		err := guard(service.Stop)
		if err != nil {
			stopFailures.Increment()
			failure := &StopFailure{Service: service.Name(), Err: err}
			logger.Info("failed-to-stop-service", lager.Data{
				"service": service.Name(),
				"error":   failure.Error(),
			})
		}
	}
}

// sameService reports whether a and b are the same instance. Only pointer
// and channel values carry an identity; anything else never matches.
func sameService(a, b Service) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch reflect.ValueOf(a).Kind() {
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return a == b
	default:
		return false
	}
}

func attemptID() string {
	guid, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return guid.String()
}
