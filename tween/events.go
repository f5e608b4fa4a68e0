package tween

// EventType names a player notification.
type EventType string

const (
	// Change fires after every position update that was not short-circuited.
	Change EventType = "change"
	// Complete fires when a finite traversal reaches its end.
	Complete EventType = "complete"
)

// Event is delivered to listeners.
type Event struct {
	Type   EventType
	Player Player
}

// Listener receives player events.
type Listener func(Event)

// ListenerID identifies a registration for Off.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

type listeners struct {
	nextID ListenerID
	byType map[EventType][]listenerEntry
}

func (l *listeners) add(t EventType, fn Listener) ListenerID {
	if l.byType == nil {
		l.byType = make(map[EventType][]listenerEntry)
	}
	l.nextID++
	l.byType[t] = append(l.byType[t], listenerEntry{id: l.nextID, fn: fn})
	return l.nextID
}

func (l *listeners) remove(id ListenerID) {
	for t, entries := range l.byType {
		for i, e := range entries {
			if e.id != id {
				continue
			}
			out := make([]listenerEntry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			l.byType[t] = append(out, entries[i+1:]...)
			return
		}
	}
}

func (l *listeners) emit(ev Event) {
	// Listeners may register or unregister while we dispatch; the slice we hold
	// is never mutated in place.
	for _, e := range l.byType[ev.Type] {
		e.fn(ev)
	}
}
