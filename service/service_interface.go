package service

import "code.cloudfoundry.org/servicelifecycle/config"

//go:generate counterfeiter -o fakes/fake_service.go . Service

// The Service interface contains all the behavior a component must implement in
// order to be driven through its lifecycle.
type Service interface {
	Name() string
	State() State

	Initialize(config.Config) error
	Start() error
	Stop() error
}

type State int

const (
	StateCreated State = iota
	StateInitialized
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInitialized:
		return "initialized"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CanTransition reports whether a service may move from s to next. States
// only move forward one step at a time, except that stopped is reachable
// from anywhere.
func (s State) CanTransition(next State) bool {
	if next == StateStopped {
		return true
	}
	return s != StateStopped && next == s+1
}
