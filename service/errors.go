package service

import "fmt"

type InitializationError struct {
	Service string
	Err     error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %s", e.Service, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// StartFailure is returned by a composite whose children could not all be
// started. By the time it is returned every child that did start has been
// stopped again.
type StartFailure struct {
	Name string
	Err  error
}

func (e *StartFailure) Error() string {
	return fmt.Sprintf("failed to start %s: %s", e.Name, e.Err)
}

func (e *StartFailure) Unwrap() error {
	return e.Err
}

// StopFailure is never returned to callers; it only shows up in logs.
type StopFailure struct {
	Service string
	Err     error
}

func (e *StopFailure) Error() string {
	return fmt.Sprintf("failed to stop %s: %s", e.Service, e.Err)
}

func (e *StopFailure) Unwrap() error {
	return e.Err
}

type InvalidTransitionError struct {
	Service string
	From    State
	To      State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Service, e.From, e.To)
}

type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()

	return fn()
}
