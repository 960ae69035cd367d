package observer

// Subscriber is anything that can receive a text notification.
// Receive must not fail from the publisher's point of view: implementations
// handle their own errors internally.
type Subscriber interface {
	Receive(message string)
}

// Member is a Subscriber with a stable identifier, used as the key inside a
// Publisher.
type Member interface {
	Subscriber
	ID() uint64
}

// Publisher keeps a keyed set of members and delivers messages to them.
type Publisher[S Member] interface {
	// Subscribe adds sub under sub.ID(). Fails with AlreadySubscribedError if
	// the id is taken; the existing entry is kept.
	Subscribe(sub S) error
	// Unsubscribe removes the entry for id. Fails with NotSubscribedError if
	// the id is absent.
	Unsubscribe(id uint64) error
	// Notify delivers message to every current member.
	Notify(message string)
	// NotifyTo delivers message to the member with the given id only. Fails
	// with InvalidIDError if the id is absent.
	NotifyTo(id uint64, message string) error
}

// MemberFunc adapts a plain function into a Member.
type MemberFunc struct {
	Key uint64
	Fn  func(message string)
}

// ID returns the key.
func (m MemberFunc) ID() uint64 { return m.Key }

// Receive calls Fn if set.
func (m MemberFunc) Receive(message string) {
	if m.Fn != nil {
		m.Fn(message)
	}
}
