package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/metric"
)

const (
	DefaultHeartbeatInterval = time.Second

	heartbeatFailures = metric.Counter("HeartbeatFailures")
)

var ErrNonPositiveInterval = errors.New("heartbeat interval must be positive")

// HeartbeatService calls its beat function on every tick of an interval read
// from config at initialization. A failing beat is logged and the service
// keeps beating.
type HeartbeatService struct {
	*BaseService

	clock  clock.Clock
	logger lager.Logger
	beat   func() error

	lock     sync.Mutex
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewHeartbeatService(name string, clock clock.Clock, logger lager.Logger, beat func() error) *HeartbeatService {
	return &HeartbeatService{
		BaseService: NewBaseService(name),
		clock:       clock,
		logger:      logger.Session("heartbeat", lager.Data{"name": name}),
		beat:        beat,
	}
}

// Initialize reads heartbeat.<name>.interval, falling back to
// heartbeat.interval and then DefaultHeartbeatInterval.
func (h *HeartbeatService) Initialize(cfg config.Config) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	key := fmt.Sprintf("heartbeat.%s.interval", h.Name())
	if _, ok := cfg.Lookup(key); !ok {
		key = "heartbeat.interval"
	}

	interval, err := cfg.Duration(key, DefaultHeartbeatInterval)
	if err == nil && interval <= 0 {
		err = ErrNonPositiveInterval
	}
	if err != nil {
		return &InitializationError{Service: h.Name(), Err: err}
	}

	err = h.BaseService.Initialize(cfg)
	if err != nil {
		return err
	}

	h.interval = interval
	return nil
}

func (h *HeartbeatService) Interval() time.Duration {
	h.lock.Lock()
	defer h.lock.Unlock()

	return h.interval
}

func (h *HeartbeatService) Start() error {
	h.lock.Lock()
	defer h.lock.Unlock()

	err := h.BaseService.Start()
	if err != nil {
		return err
	}

	h.stopChan = make(chan struct{})
	h.doneChan = make(chan struct{})

	ticker := h.clock.NewTicker(h.interval)
	go h.run(ticker, h.stopChan, h.doneChan)

	h.logger.Info("started", lager.Data{"interval": h.interval.String()})
	return nil
}

func (h *HeartbeatService) Stop() error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.stopChan != nil {
		close(h.stopChan)
		<-h.doneChan
		h.stopChan = nil
		h.doneChan = nil

		h.logger.Info("stopped")
	}

	return h.BaseService.Stop()
}

func (h *HeartbeatService) run(ticker clock.Ticker, stopChan <-chan struct{}, doneChan chan<- struct{}) {
	defer close(doneChan)
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C():
			err := h.beat()
			if err != nil {
				heartbeatFailures.Increment()
				h.logger.Error("failed-to-beat", err)
			}
		}
	}
}
