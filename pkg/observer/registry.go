package observer

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DeBrosOfficial/groundstation/pkg/errors"
)

// Registry is the map-backed Publisher. It is safe for concurrent use.
// Receive callbacks run without the lock held, so a subscriber may call back
// into the registry from inside Receive.
type Registry[S Member] struct {
	members map[uint64]S
	logger  *zap.Logger
	mu      sync.RWMutex
}

var _ Publisher[Member] = (*Registry[Member])(nil)

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for subscription and delivery events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry[S Member](opts ...Option) *Registry[S] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[S]{
		members: make(map[uint64]S),
		logger:  o.logger,
	}
}

// Subscribe adds sub keyed by its id.
func (r *Registry[S]) Subscribe(sub S) error {
	id := sub.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; exists {
		r.logger.Debug("Subscription rejected", zap.Uint64("subscriber_id", id))
		return errors.NewAlreadySubscribedError(id)
	}

	r.members[id] = sub
	r.logger.Debug("Subscriber added",
		zap.Uint64("subscriber_id", id),
		zap.Int("subscribers", len(r.members)))
	return nil
}

// Unsubscribe removes the entry for id.
func (r *Registry[S]) Unsubscribe(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; !exists {
		return errors.NewNotSubscribedError(id)
	}

	delete(r.members, id)
	r.logger.Debug("Subscriber removed",
		zap.Uint64("subscriber_id", id),
		zap.Int("subscribers", len(r.members)))
	return nil
}

// Notify delivers message to every member present when the call starts.
// Members added or removed during delivery do not change who receives this
// message.
func (r *Registry[S]) Notify(message string) {
	r.mu.RLock()
	snapshot := make([]S, 0, len(r.members))
	for _, m := range r.members {
		snapshot = append(snapshot, m)
	}
	r.mu.RUnlock()

	broadcastID := uuid.New().String()
	delivered := 0
	for _, m := range snapshot {
		if r.deliver(m, message, broadcastID) {
			delivered++
		}
	}

	r.logger.Debug("Broadcast delivered",
		zap.String("broadcast_id", broadcastID),
		zap.Int("recipients", len(snapshot)),
		zap.Int("delivered", delivered))
}

// NotifyTo delivers message to the member with the given id.
func (r *Registry[S]) NotifyTo(id uint64, message string) error {
	r.mu.RLock()
	m, exists := r.members[id]
	r.mu.RUnlock()

	if !exists {
		return errors.NewInvalidIDError(id)
	}

	r.deliver(m, message, "")
	return nil
}

// deliver calls Receive and recovers a panic so one faulty member cannot
// stop delivery to the others. Returns false if Receive panicked.
func (r *Registry[S]) deliver(m S, message, broadcastID string) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			fields := []zap.Field{
				zap.Uint64("subscriber_id", m.ID()),
				zap.String("panic", fmt.Sprint(rec)),
			}
			if broadcastID != "" {
				fields = append(fields, zap.String("broadcast_id", broadcastID))
			}
			r.logger.Error("Subscriber panicked during delivery", fields...)
		}
	}()

	m.Receive(message)
	return true
}

// Len returns the number of members.
func (r *Registry[S]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Has reports whether id is subscribed.
func (r *Registry[S]) Has(id uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[id]
	return ok
}

// Get returns the member stored under id.
func (r *Registry[S]) Get(id uint64) (S, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	return m, ok
}

// IDs returns the subscribed ids in ascending order.
func (r *Registry[S]) IDs() []uint64 {
	r.mu.RLock()
	ids := make([]uint64, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
