package events

// Observer reacts to account notifications. Delivery happens inline with
// the state change that produced the event, so observers must not block
// and are expected not to panic.
type Observer interface {
	Notify(event Event)
}

// Stream is the notification channel owned by a single account. Observers
// are delivered to synchronously, in subscription order.
type Stream struct {
	observers []Observer
}

func NewStream() *Stream {
	return &Stream{}
}

// Subscribe registers an observer. The same observer may be registered
// more than once and will then be notified once per registration.
func (s *Stream) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Unsubscribe removes the first registration of o, if any. Observers are
// matched by interface identity, so anything passed to Unsubscribe must be
// of a comparable type (in practice: a pointer).
func (s *Stream) Unsubscribe(o Observer) {
	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every observer in subscription order.
func (s *Stream) Publish(event Event) {
	for _, o := range s.observers {
		o.Notify(event)
	}
}
