package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// subscriberBuffer bounds how many pending events a lagging subscriber can
// accumulate before the bus starts dropping the oldest ones (spec.md §4.8,
// "Change bus", "at-least-once delivery with a lagged-subscriber marker").
const subscriberBuffer = 32

// Event is one change-bus notification: which plan changed, and whether
// this subscriber missed one or more earlier events before this one.
type Event struct {
	PlanId models.PlanId
	Missed bool
}

type subscriber struct {
	mu     sync.Mutex
	ch     chan Event
	missed bool
	closed bool
}

// ChangeBus broadcasts "this plan changed" notifications to every
// subscriber (the HTTP server's SSE streams, which the watch TUI reads). Delivery
// is at-least-once: a slow subscriber drops its oldest buffered event
// rather than blocking the publisher, and the next delivered event carries
// Missed=true so the subscriber knows to re-fetch full state instead of
// trusting the stream alone.
type ChangeBus struct {
	mu   sync.Mutex
	subs map[string]*subscriber
}

// NewChangeBus returns an empty change bus.
func NewChangeBus() *ChangeBus {
	return &ChangeBus{subs: make(map[string]*subscriber)}
}

// Subscribe registers a new listener and returns its id, a receive-only
// channel of events, and a cancel func that must be called to unregister
// (typically deferred by the caller).
func (b *ChangeBus) Subscribe() (id string, events <-chan Event, cancel func()) {
	id = uuid.NewString()
	sub := &subscriber{ch: make(chan Event, subscriberBuffer)}

	b.mu.Lock()
	b.subs[id] = sub
	b.mu.Unlock()

	return id, sub.ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()

		sub.mu.Lock()
		sub.closed = true
		sub.mu.Unlock()
		close(sub.ch)
	}
}

// Publish notifies every current subscriber that planId changed. It never
// blocks: a full subscriber buffer is drained by one slot (dropping the
// oldest pending event) before the new one is enqueued with Missed set. A
// subscriber that cancels concurrently with a publish is skipped once its
// closed flag is set, so Publish never sends on (or drains from) a channel
// cancel is about to close.
func (b *ChangeBus) Publish(planId models.PlanId) {
	b.mu.Lock()
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			continue
		}
		ev := Event{PlanId: planId, Missed: s.missed}
		select {
		case s.ch <- ev:
			s.missed = false
		default:
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- Event{PlanId: planId, Missed: true}:
				s.missed = false
			default:
				s.missed = true
			}
		}
		s.mu.Unlock()
	}
}

// SubscriberCount reports how many listeners are currently attached.
func (b *ChangeBus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
