package observer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/DeBrosOfficial/groundstation/pkg/errors"
)

// recorder collects every message it receives.
type recorder struct {
	id  uint64
	mu  sync.Mutex
	got []string
}

func newRecorder(id uint64) *recorder { return &recorder{id: id} }

func (r *recorder) ID() uint64 { return r.id }

func (r *recorder) Receive(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, message)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.got...)
}

func TestSubscribe_FreshID(t *testing.T) {
	reg := NewRegistry[*recorder]()

	require.NoError(t, reg.Subscribe(newRecorder(327)))
	assert.True(t, reg.Has(327))
	assert.Equal(t, 1, reg.Len())
}

func TestSubscribe_DuplicateKeepsExisting(t *testing.T) {
	reg := NewRegistry[*recorder]()
	first := newRecorder(327)
	second := newRecorder(327)

	require.NoError(t, reg.Subscribe(first))

	err := reg.Subscribe(second)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadySubscribed(err))
	id, ok := errors.SubscriberID(err)
	require.True(t, ok)
	assert.Equal(t, uint64(327), id)

	stored, ok := reg.Get(327)
	require.True(t, ok)
	assert.Same(t, first, stored)
	assert.Equal(t, 1, reg.Len())
}

func TestUnsubscribe(t *testing.T) {
	reg := NewRegistry[*recorder]()
	require.NoError(t, reg.Subscribe(newRecorder(519)))

	require.NoError(t, reg.Unsubscribe(519))
	assert.False(t, reg.Has(519))

	err := reg.Unsubscribe(519)
	require.Error(t, err)
	assert.True(t, errors.IsNotSubscribed(err))
	assert.False(t, errors.IsInvalidID(err))
	assert.Equal(t, "NotSubscribed(519)", errors.Debug(err))
}

func TestUnsubscribe_NeverSubscribed(t *testing.T) {
	reg := NewRegistry[*recorder]()

	err := reg.Unsubscribe(1)
	assert.True(t, errors.IsNotSubscribed(err))
}

func TestSubscribe_RoundTrip(t *testing.T) {
	reg := NewRegistry[*recorder]()

	require.NoError(t, reg.Subscribe(newRecorder(412)))
	require.NoError(t, reg.Unsubscribe(412))
	require.NoError(t, reg.Subscribe(newRecorder(412)))
	assert.True(t, reg.Has(412))
}

func TestNotifyTo_AbsentID(t *testing.T) {
	reg := NewRegistry[*recorder]()
	other := newRecorder(1)
	require.NoError(t, reg.Subscribe(other))

	err := reg.NotifyTo(2, "ping")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidID(err))
	assert.False(t, errors.IsNotSubscribed(err))
	assert.Empty(t, other.messages())
}

func TestNotifyTo_DeliversOnceToTargetOnly(t *testing.T) {
	reg := NewRegistry[*recorder]()
	target := newRecorder(865)
	bystander := newRecorder(12)
	require.NoError(t, reg.Subscribe(target))
	require.NoError(t, reg.Subscribe(bystander))

	require.NoError(t, reg.NotifyTo(865, "telemetry"))

	assert.Equal(t, []string{"telemetry"}, target.messages())
	assert.Empty(t, bystander.messages())
}

func TestNotify_DeliversToEveryCurrentMember(t *testing.T) {
	reg := NewRegistry[*recorder]()
	recs := map[uint64]*recorder{}
	for _, id := range []uint64{1, 2, 3} {
		recs[id] = newRecorder(id)
		require.NoError(t, reg.Subscribe(recs[id]))
	}
	require.NoError(t, reg.Unsubscribe(2))

	reg.Notify("hello")

	assert.Equal(t, []string{"hello"}, recs[1].messages())
	assert.Empty(t, recs[2].messages())
	assert.Equal(t, []string{"hello"}, recs[3].messages())
}

func TestNotify_EmptyRegistry(t *testing.T) {
	reg := NewRegistry[*recorder]()
	assert.NotPanics(t, func() { reg.Notify("nobody home") })
}

func TestNotify_ReentrantSubscribeUsesSnapshot(t *testing.T) {
	reg := NewRegistry[Member]()
	late := newRecorder(99)

	var subscribeErr error
	trigger := MemberFunc{Key: 1, Fn: func(string) {
		subscribeErr = reg.Subscribe(late)
	}}
	require.NoError(t, reg.Subscribe(trigger))

	reg.Notify("first")
	require.NoError(t, subscribeErr)
	assert.True(t, reg.Has(99))
	assert.Empty(t, late.messages(), "member added during Notify must not receive that message")

	reg.Notify("second")
	assert.Equal(t, []string{"second"}, late.messages())
}

func TestNotify_ReentrantUnsubscribe(t *testing.T) {
	reg := NewRegistry[Member]()
	var calls int
	self := MemberFunc{Key: 5, Fn: func(string) {
		calls++
		_ = reg.Unsubscribe(5)
	}}
	require.NoError(t, reg.Subscribe(self))

	reg.Notify("once")
	reg.Notify("twice")

	assert.Equal(t, 1, calls)
	assert.False(t, reg.Has(5))
}

func TestNotify_PanicIsIsolated(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	reg := NewRegistry[Member](WithLogger(zap.New(core)))

	healthy := newRecorder(2)
	require.NoError(t, reg.Subscribe(MemberFunc{Key: 1, Fn: func(string) { panic("antenna failure") }}))
	require.NoError(t, reg.Subscribe(healthy))

	assert.NotPanics(t, func() { reg.Notify("status?") })
	assert.Equal(t, []string{"status?"}, healthy.messages())

	panics := logs.FilterMessage("Subscriber panicked during delivery").All()
	require.Len(t, panics, 1)
	assert.Equal(t, uint64(1), panics[0].ContextMap()["subscriber_id"])
	assert.Equal(t, "antenna failure", panics[0].ContextMap()["panic"])

	broadcasts := logs.FilterMessage("Broadcast delivered").All()
	require.Len(t, broadcasts, 1)
	fields := broadcasts[0].ContextMap()
	assert.Equal(t, int64(2), fields["recipients"])
	assert.Equal(t, int64(1), fields["delivered"])
	assert.Equal(t, panics[0].ContextMap()["broadcast_id"], fields["broadcast_id"])
}

func TestNotifyTo_PanicIsIsolated(t *testing.T) {
	reg := NewRegistry[Member]()
	require.NoError(t, reg.Subscribe(MemberFunc{Key: 7, Fn: func(string) { panic("boom") }}))

	assert.NotPanics(t, func() {
		assert.NoError(t, reg.NotifyTo(7, "x"))
	})
}

func TestIDs_Sorted(t *testing.T) {
	reg := NewRegistry[*recorder]()
	for _, id := range []uint64{327, 519, 412, 865, 12} {
		require.NoError(t, reg.Subscribe(newRecorder(id)))
	}

	assert.Equal(t, []uint64{12, 327, 412, 519, 865}, reg.IDs())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry[*recorder]()
	var wg sync.WaitGroup

	for i := uint64(0); i < 50; i++ {
		wg.Add(2)
		go func(id uint64) {
			defer wg.Done()
			_ = reg.Subscribe(newRecorder(id))
		}(i)
		go func() {
			defer wg.Done()
			reg.Notify("tick")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Len())
}
