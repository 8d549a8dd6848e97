package service

import (
	"sync"

	"code.cloudfoundry.org/servicelifecycle/config"
)

// BaseService tracks a name and a lifecycle state. Concrete services embed it
// and call through to its Initialize, Start and Stop once their own work for
// that phase has succeeded.
type BaseService struct {
	name string

	lock   sync.RWMutex
	state  State
	config config.Config
}

func NewBaseService(name string) *BaseService {
	return &BaseService{
		name:  name,
		state: StateCreated,
	}
}

func (b *BaseService) Name() string {
	return b.name
}

func (b *BaseService) State() State {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state
}

// Config returns the settings the service was initialized with.
func (b *BaseService) Config() config.Config {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.config
}

func (b *BaseService) Initialize(cfg config.Config) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	err := b.transition(StateInitialized)
	if err != nil {
		return err
	}

	b.config = cfg
	return nil
}

func (b *BaseService) Start() error {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.transition(StateStarted)
}

func (b *BaseService) Stop() error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state = StateStopped
	return nil
}

func (b *BaseService) transition(next State) error {
	if !b.state.CanTransition(next) {
		return &InvalidTransitionError{Service: b.name, From: b.state, To: next}
	}

	b.state = next
	return nil
}
