package errors

import (
	"errors"
	"fmt"
)

// IsAlreadySubscribed checks if an error came from subscribing a taken id.
func IsAlreadySubscribed(err error) bool {
	if err == nil {
		return false
	}

	var alreadyErr *AlreadySubscribedError
	return errors.As(err, &alreadyErr) || errors.Is(err, ErrAlreadySubscribed)
}

// IsNotSubscribed checks if an error came from unsubscribing an absent id.
func IsNotSubscribed(err error) bool {
	if err == nil {
		return false
	}

	var notSubErr *NotSubscribedError
	return errors.As(err, &notSubErr) || errors.Is(err, ErrNotSubscribed)
}

// IsInvalidID checks if an error came from a unicast to an absent id.
func IsInvalidID(err error) bool {
	if err == nil {
		return false
	}

	var invalidErr *InvalidIDError
	return errors.As(err, &invalidErr) || errors.Is(err, ErrInvalidID)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// SubscriberID extracts the subscriber id carried by a SubscriptionError
// anywhere in the chain.
func SubscriberID(err error) (uint64, bool) {
	var subErr SubscriptionError
	if errors.As(err, &subErr) {
		return subErr.SubscriberID(), true
	}
	return 0, false
}

// Kind returns the variant name of a SubscriptionError, or "" for any
// other error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAlreadySubscribed(err):
		return KindAlreadySubscribed
	case IsNotSubscribed(err):
		return KindNotSubscribed
	case IsInvalidID(err):
		return KindInvalidID
	default:
		return ""
	}
}

// Debug renders a SubscriptionError as Variant(id), e.g. AlreadySubscribed(327).
// Other errors fall back to their Error string.
func Debug(err error) string {
	if err == nil {
		return ""
	}

	kind := Kind(err)
	id, ok := SubscriberID(err)
	if kind == "" || !ok {
		return err.Error()
	}
	return fmt.Sprintf("%s(%d)", kind, id)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Code()
	}

	switch {
	case errors.Is(err, ErrAlreadySubscribed):
		return CodeAlreadySubscribed
	case errors.Is(err, ErrNotSubscribed):
		return CodeNotSubscribed
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrInvalidInput):
		return CodeValidation
	default:
		return CodeInternal
	}
}

// GetErrorMessage extracts a human-readable message from an error.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Message()
	}

	return err.Error()
}

// Cause returns the underlying cause of an error.
// It unwraps the error chain until it finds the root cause.
func Cause(err error) error {
	for {
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		underlying := unwrapper.Unwrap()
		if underlying == nil {
			return err
		}
		err = underlying
	}
}
