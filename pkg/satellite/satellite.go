package satellite

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/DeBrosOfficial/groundstation/pkg/observer"
)

// Satellite is a subscriber that prints every message it receives and keeps
// an inbox of them. The id never changes after construction; the inbox is
// guarded by mu so the satellite can be shared between its creator and a
// ground station.
type Satellite struct {
	id         uint64
	out        io.Writer
	logger     *zap.Logger
	inboxLimit int

	mu       sync.Mutex
	inbox    []string
	received int
}

var _ observer.Member = (*Satellite)(nil)

// Option configures a Satellite.
type Option func(*Satellite)

// WithOutput sets where received messages are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Satellite) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Satellite) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInboxLimit caps how many messages the inbox retains; older ones are
// dropped first. Zero keeps everything.
func WithInboxLimit(n int) Option {
	return func(s *Satellite) {
		if n >= 0 {
			s.inboxLimit = n
		}
	}
}

// New creates a satellite with the given id.
func New(id uint64, opts ...Option) *Satellite {
	s := &Satellite{
		id:     id,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the satellite's identifier.
func (s *Satellite) ID() uint64 {
	return s.id
}

// Receive prints the message and stores it in the inbox. A failed write is
// logged and otherwise ignored.
func (s *Satellite) Receive(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.out, "Satellite %d received this message: %s\n", s.id, message); err != nil {
		s.logger.Warn("Failed to write received message",
			zap.Uint64("satellite_id", s.id),
			zap.Error(err))
	}

	s.received++
	s.inbox = append(s.inbox, message)
	if s.inboxLimit > 0 && len(s.inbox) > s.inboxLimit {
		s.inbox = s.inbox[len(s.inbox)-s.inboxLimit:]
	}

	s.logger.Debug("Message received",
		zap.Uint64("satellite_id", s.id),
		zap.Int("received", s.received))
}

// Messages returns a copy of the retained inbox, oldest first.
func (s *Satellite) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.inbox...)
}

// Received returns the total number of messages delivered, including any
// dropped from the inbox.
func (s *Satellite) Received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}

// String implements fmt.Stringer.
func (s *Satellite) String() string {
	return fmt.Sprintf("Satellite(%d)", s.id)
}
