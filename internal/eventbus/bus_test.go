package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }

func (ping) Request() {}

func TestPublishRequiresAttachedProvider(t *testing.T) {
	eb := NewEventBus()
	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) { reported = append(reported, err) })

	require.ErrorIs(t, eb.Publish(ping{}), ErrDetached)
	require.Len(t, reported, 1)
	require.Equal(t, "Publish", reported[0].Operation)
	require.Equal(t, CircuitClosed, eb.GetCircuitBreakerState(), "detached publishes do not trip the breaker")

	eb.Attach(7)
	require.NoError(t, eb.Publish(ping{n: 1}))
	require.Equal(t, ping{n: 1}, <-eb.Requests())
}

func TestDetachOnlyByCurrentProvider(t *testing.T) {
	eb := NewEventBus()
	eb.Attach(1)
	eb.Attach(2)
	eb.Detach(1)
	id, ok := eb.Attached()
	require.True(t, ok)
	require.Equal(t, 2, id)

	eb.Detach(2)
	_, ok = eb.Attached()
	require.False(t, ok)
}

func TestFullBufferTripsBreaker(t *testing.T) {
	eb := NewEventBusSize(1)
	eb.Attach(1)
	now := time.Unix(1000, 0)
	eb.circuitBreaker.now = func() time.Time { return now }

	require.NoError(t, eb.Publish(ping{}))
	for i := 0; i < 5; i++ {
		err := eb.Publish(ping{})
		require.ErrorIs(t, err, ErrBusFull)
	}
	require.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())

	<-eb.Requests()
	require.ErrorIs(t, eb.Publish(ping{}), ErrCircuitOpen)

	now = now.Add(31 * time.Second)
	require.Equal(t, CircuitHalfOpen, eb.GetCircuitBreakerState())
	require.NoError(t, eb.Publish(ping{}))
	require.Equal(t, CircuitClosed, eb.GetCircuitBreakerState())
}

func TestPublishAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Attach(1)
	eb.Close()
	eb.Close()

	err := eb.Publish(ping{})
	require.ErrorIs(t, err, ErrClosed)
	_, open := <-eb.Requests()
	require.False(t, open)
}

func TestEventBusErrorUnwraps(t *testing.T) {
	err := EventBusError{Operation: "Publish", Err: ErrBusFull, Timestamp: time.Now()}
	require.True(t, errors.Is(err, ErrBusFull))
	require.Equal(t, "Publish: request channel is full", err.Error())
}
