package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventVendorPaid, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventVendorPaid}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStateReset}))

	require.Equal(t, []EventType{EventVendorPaid}, seen)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventProgressRecorded, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventProgressRecorded, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventProgressRecorded}))
	require.Equal(t, 2, calls)
}
