package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type identifies a storefront notification.
type Type string

const (
	CartChanged      Type = "cart_changed"
	FavoritesChanged Type = "favorites_changed"
)

// Event is one storefront notification, scoped to the session whose view
// state changed.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// New builds an event with a fresh id and timestamp.
func New(t Type, sessionID string, data any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// Bus is an in-process publish/subscribe fan-out with explicit subscriber
// lifecycle: Subscribe on mount, call the returned cancel func on teardown.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a buffered subscriber. The cancel func removes the
// subscription and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking; a
// subscriber that has fallen 16 events behind misses this one.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// ── Package-level default bus ────────────────────────────────────────────────

var defaultBus = NewBus()

func Default() *Bus { return defaultBus }

// Publish emits on the default bus.
func Publish(ev Event) { defaultBus.Publish(ev) }
