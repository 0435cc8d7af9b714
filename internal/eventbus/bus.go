package eventbus

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrDetached    = errors.New("no notification provider attached")
	ErrBusFull     = errors.New("request channel is full")
	ErrClosed      = errors.New("event bus is closed")
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// Request is anything the UI loop should apply on a later tick, typically a
// toast, alert or action sheet addressed to a provider.
type Request interface {
	Request()
}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	}
	return "closed"
}

// CircuitBreaker stops publishing after repeated failures until resetTimeout
// has passed. It is not safe for concurrent use on its own; Bus guards it.
type CircuitBreaker struct {
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

// DefaultBufferSize is the request capacity of NewEventBus.
const DefaultBufferSize = 100

// EventBus carries requests from any goroutine to the UI loop. It also
// tracks which provider is attached so callers can address requests to it.
type EventBus struct {
	mu             sync.Mutex
	requests       chan Request
	attached       int
	hasAttached    bool
	closed         bool
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
}

func NewEventBus() *EventBus {
	return NewEventBusSize(DefaultBufferSize)
}

func NewEventBusSize(size int) *EventBus {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &EventBus{
		requests:       make(chan Request, size),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

// Attach records the provider that receives requests from now on.
func (eb *EventBus) Attach(provider int) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.attached = provider
	eb.hasAttached = true
}

// Detach forgets provider if it is still the attached one. A provider that
// was replaced by a newer one cannot detach its successor.
func (eb *EventBus) Detach(provider int) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.hasAttached && eb.attached == provider {
		eb.attached = 0
		eb.hasAttached = false
	}
}

func (eb *EventBus) Attached() (int, bool) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	return eb.attached, eb.hasAttached
}

// reportError must be called with eb.mu held. The callback runs outside the
// lock through the returned func.
func (eb *EventBus) reportError(operation string, err error, trip bool) func() {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}
	if trip {
		eb.circuitBreaker.RecordFailure()
	}
	cb := eb.errorCallback
	return func() {
		if cb != nil {
			cb(busError)
		}
	}
}

// Publish queues req without blocking. It fails with ErrDetached when no
// provider is attached, ErrBusFull when the buffer is full and ErrClosed
// after Close.
func (eb *EventBus) Publish(req Request) error {
	eb.mu.Lock()
	var (
		err    error
		report func()
	)
	switch {
	case eb.closed:
		err = ErrClosed
		report = eb.reportError("Publish", err, false)
	case !eb.hasAttached:
		err = ErrDetached
		report = eb.reportError("Publish", err, false)
	case eb.circuitBreaker.IsOpen():
		err = ErrCircuitOpen
		report = eb.reportError("Publish", err, true)
	default:
		select {
		case eb.requests <- req:
			eb.circuitBreaker.RecordSuccess()
		default:
			err = ErrBusFull
			report = eb.reportError("Publish", err, true)
		}
	}
	eb.mu.Unlock()

	if report != nil {
		report()
	}
	return err
}

func (eb *EventBus) Requests() <-chan Request {
	return eb.requests
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.circuitBreaker.IsOpen()
	return eb.circuitBreaker.state
}

// Close stops accepting requests and closes the request channel.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.requests)
}
