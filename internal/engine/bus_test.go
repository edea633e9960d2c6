package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

func TestChangeBusDeliversToEverySubscriber(t *testing.T) {
	bus := NewChangeBus()
	_, eventsA, cancelA := bus.Subscribe()
	defer cancelA()
	_, eventsB, cancelB := bus.Subscribe()
	defer cancelB()

	bus.Publish(models.PlanId(7))

	evA := <-eventsA
	evB := <-eventsB
	assert.Equal(t, models.PlanId(7), evA.PlanId)
	assert.Equal(t, models.PlanId(7), evB.PlanId)
	assert.False(t, evA.Missed)
	assert.False(t, evB.Missed)
}

func TestChangeBusDropsOldestOnLagAndMarksMissed(t *testing.T) {
	bus := NewChangeBus()
	_, events, cancel := bus.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+4; i++ {
		bus.Publish(models.PlanId(i % 256))
	}

	var last Event
	sawMissed := false
	for i := 0; i < subscriberBuffer; i++ {
		last = <-events
		if last.Missed {
			sawMissed = true
		}
	}
	assert.True(t, sawMissed, "a lagging subscriber must eventually see a missed-events marker")
	_ = last
}

func TestChangeBusCancelStopsDelivery(t *testing.T) {
	bus := NewChangeBus()
	_, events, cancel := bus.Subscribe()
	cancel()

	bus.Publish(models.PlanId(1))

	_, ok := <-events
	require.False(t, ok, "events channel must be closed after cancel")
}

// TestChangeBusConcurrentCancelDoesNotPanicPublish drives Publish and a
// subscriber's own cancel concurrently — the shape of an SSE client
// disconnecting (sse.go's deferred cancel) while an unrelated mutation
// publishes. It must never panic with "send on closed channel".
func TestChangeBusConcurrentCancelDoesNotPanicPublish(t *testing.T) {
	bus := NewChangeBus()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		_, events, cancel := bus.Subscribe()
		wg.Add(2)
		go func() {
			defer wg.Done()
			cancel()
		}()
		go func() {
			defer wg.Done()
			for range events {
			}
		}()
	}

	for i := 0; i < 100; i++ {
		bus.Publish(models.PlanId(i % 256))
	}

	wg.Wait()
}

func TestChangeBusSubscriberCount(t *testing.T) {
	bus := NewChangeBus()
	assert.Equal(t, 0, bus.SubscriberCount())
	_, _, cancel := bus.Subscribe()
	assert.Equal(t, 1, bus.SubscriberCount())
	cancel()
	assert.Equal(t, 0, bus.SubscriberCount())
}
