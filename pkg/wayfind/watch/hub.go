package watch

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// HubConfig configures hub behavior.
type HubConfig struct {
	// BufferSize is the channel buffer size per subscription.
	// Default: 256
	BufferSize int

	// MaxSubscribers limits total subscriptions.
	// Default: 0 (unlimited)
	MaxSubscribers int

	// Blocking makes Publish wait for space in a full subscriber buffer
	// instead of dropping the event. A blocking hub stalls the searching
	// goroutine behind its slowest subscriber.
	// Default: false (drop)
	Blocking bool

	// OnDrop is called when an event is dropped (non-blocking mode).
	OnDrop func(evt Event, subscriberID string)
}

// DefaultHubConfig provides reasonable defaults.
var DefaultHubConfig = HubConfig{
	BufferSize: 256,
}

// Hub is an in-memory fan-out of search events.
//
// Publish is safe to call from the searching goroutine; subscribers drain
// their own buffered channels at their own pace. In the default
// non-blocking mode a subscriber that falls behind loses events rather
// than stalling the search.
type Hub struct {
	config HubConfig

	mu            sync.RWMutex
	subscriptions map[string]*Subscription
	byKind        map[Kind]map[string]*Subscription // event kind -> subscription ID -> subscription
	wildcards     map[string]*Subscription          // subscriptions for all kinds

	nextID  atomic.Int64
	closed  atomic.Bool
	closeCh chan struct{}
}

// Compile-time interface check.
var _ Sink = (*Hub)(nil)

// NewHub creates a new hub.
func NewHub(config HubConfig) *Hub {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultHubConfig.BufferSize
	}

	return &Hub{
		config:        config,
		subscriptions: make(map[string]*Subscription),
		byKind:        make(map[Kind]map[string]*Subscription),
		wildcards:     make(map[string]*Subscription),
		closeCh:       make(chan struct{}),
	}
}

// Subscription is one subscriber's view of a hub.
type Subscription struct {
	id     string
	kinds  []Kind // empty = all kinds
	events chan Event
	paused atomic.Bool
	once   sync.Once
	hub    *Hub
}

// Publish delivers an event to every matching, unpaused subscriber.
// Publishing on a closed hub is a no-op.
func (h *Hub) Publish(evt Event) {
	if h.closed.Load() {
		return
	}

	// Delivery happens under the read lock: Unsubscribe and Close take the
	// write lock before closing a subscriber's channel, so no send can race
	// a close.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.matching(evt.Kind) {
		if sub.paused.Load() {
			continue
		}

		if h.config.Blocking {
			select {
			case sub.events <- evt:
			case <-h.closeCh:
				return
			}
		} else {
			select {
			case sub.events <- evt:
			default:
				// Buffer full - drop event
				if h.config.OnDrop != nil {
					h.config.OnDrop(evt, sub.id)
				}
			}
		}
	}
}

// Subscribe creates a subscription for specific event kinds; with no kinds
// it receives every event. Returns nil if the hub is closed or the
// subscriber limit is reached.
func (h *Hub) Subscribe(kinds ...Kind) *Subscription {
	if h.closed.Load() {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.config.MaxSubscribers > 0 && len(h.subscriptions) >= h.config.MaxSubscribers {
		return nil
	}

	sub := &Subscription{
		id:     strconv.FormatInt(h.nextID.Add(1), 10),
		kinds:  kinds,
		events: make(chan Event, h.config.BufferSize),
		hub:    h,
	}

	h.subscriptions[sub.id] = sub

	if len(kinds) == 0 {
		h.wildcards[sub.id] = sub
	} else {
		for _, k := range kinds {
			if h.byKind[k] == nil {
				h.byKind[k] = make(map[string]*Subscription)
			}
			h.byKind[k][sub.id] = sub
		}
	}

	return sub
}

// matching returns all subscriptions matching an event kind.
// Callers hold h.mu.
func (h *Hub) matching(kind Kind) []*Subscription {
	subs := make([]*Subscription, 0, len(h.wildcards))

	if kindSubs, ok := h.byKind[kind]; ok {
		for _, sub := range kindSubs {
			subs = append(subs, sub)
		}
	}

	for _, sub := range h.wildcards {
		subs = append(subs, sub)
	}

	return subs
}

// Close shuts down the hub and closes every subscriber's channel.
func (h *Hub) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil // Already closed
	}

	close(h.closeCh)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscriptions {
		sub.once.Do(func() { close(sub.events) })
	}
	h.subscriptions = make(map[string]*Subscription)
	h.byKind = make(map[Kind]map[string]*Subscription)
	h.wildcards = make(map[string]*Subscription)

	return nil
}

// Events returns the subscription's delivery channel. The channel is
// closed by Unsubscribe or by closing the hub.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Unsubscribe removes the subscription and closes its channel. Events
// already buffered remain readable.
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	delete(s.hub.subscriptions, s.id)
	delete(s.hub.wildcards, s.id)

	for _, k := range s.kinds {
		if kindSubs, ok := s.hub.byKind[k]; ok {
			delete(kindSubs, s.id)
		}
	}

	s.once.Do(func() { close(s.events) })
}

// Pause temporarily stops delivery. Events published while paused are
// skipped for this subscriber, not queued.
func (s *Subscription) Pause() {
	s.paused.Store(true)
}

// Resume continues delivery after pause.
func (s *Subscription) Resume() {
	s.paused.Store(false)
}

// IsPaused returns true if the subscription is paused.
func (s *Subscription) IsPaused() bool {
	return s.paused.Load()
}
