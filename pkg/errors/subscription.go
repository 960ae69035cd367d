package errors

import "fmt"

// SubscriptionError is implemented by the three errors a publisher can
// return. Each one names the subscriber id involved.
type SubscriptionError interface {
	Error
	SubscriberID() uint64
}

// Variant names as reported by Kind.
const (
	KindAlreadySubscribed = "AlreadySubscribed"
	KindNotSubscribed     = "NotSubscribed"
	KindInvalidID         = "InvalidId"
)

// AlreadySubscribedError is returned by Subscribe when the id is taken.
// The existing subscription is left in place.
type AlreadySubscribedError struct {
	*BaseError
	ID uint64
}

// NewAlreadySubscribedError creates a new already-subscribed error.
func NewAlreadySubscribedError(id uint64) *AlreadySubscribedError {
	return &AlreadySubscribedError{
		BaseError: &BaseError{
			code:    CodeAlreadySubscribed,
			message: fmt.Sprintf("satellite %d is already subscribed", id),
		},
		ID: id,
	}
}

// SubscriberID returns the offending id.
func (e *AlreadySubscribedError) SubscriberID() uint64 { return e.ID }

// Is reports sentinel equivalence for errors.Is.
func (e *AlreadySubscribedError) Is(target error) bool {
	return target == ErrAlreadySubscribed
}

// NotSubscribedError is returned by Unsubscribe when the id is absent,
// whether it never existed or was already removed.
type NotSubscribedError struct {
	*BaseError
	ID uint64
}

// NewNotSubscribedError creates a new not-subscribed error.
func NewNotSubscribedError(id uint64) *NotSubscribedError {
	return &NotSubscribedError{
		BaseError: &BaseError{
			code:    CodeNotSubscribed,
			message: fmt.Sprintf("satellite %d is not subscribed", id),
		},
		ID: id,
	}
}

// SubscriberID returns the offending id.
func (e *NotSubscribedError) SubscriberID() uint64 { return e.ID }

// Is reports sentinel equivalence for errors.Is.
func (e *NotSubscribedError) Is(target error) bool {
	return target == ErrNotSubscribed
}

// InvalidIDError is returned by NotifyTo when the id is absent.
type InvalidIDError struct {
	*BaseError
	ID uint64
}

// NewInvalidIDError creates a new invalid-id error.
func NewInvalidIDError(id uint64) *InvalidIDError {
	return &InvalidIDError{
		BaseError: &BaseError{
			code:    CodeInvalidID,
			message: fmt.Sprintf("no subscriber with id %d", id),
		},
		ID: id,
	}
}

// SubscriberID returns the offending id.
func (e *InvalidIDError) SubscriberID() uint64 { return e.ID }

// Is reports sentinel equivalence for errors.Is.
func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}

var (
	_ SubscriptionError = (*AlreadySubscribedError)(nil)
	_ SubscriptionError = (*NotSubscribedError)(nil)
	_ SubscriptionError = (*InvalidIDError)(nil)
)
