package storage

import "sync"

// Event describes a change to a storage area. It mirrors the fields a
// platform storage event carries so listeners can treat both alike.
type Event struct {
	Key         string
	OldValue    *string
	NewValue    *string
	URL         string
	StorageArea Area
}

// Listener receives storage events.
type Listener func(Event)

// Target is the event stream of a single document. Dispatch delivers
// synchronously, in registration order, on the caller's goroutine.
type Target struct {
	mu        sync.RWMutex
	nextID    int
	listeners []registration
}

type registration struct {
	id int
	fn Listener
}

func NewTarget() *Target {
	return &Target{}
}

// AddListener registers fn and returns a function that unregisters it.
func (t *Target) AddListener(fn Listener) (remove func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, registration{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, r := range t.listeners {
				if r.id == id {
					t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch calls every listener registered at the time of the call.
func (t *Target) Dispatch(ev Event) {
	t.mu.RLock()
	snapshot := make([]registration, len(t.listeners))
	copy(snapshot, t.listeners)
	t.mu.RUnlock()

	for _, r := range snapshot {
		r.fn(ev)
	}
}
