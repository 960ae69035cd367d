package errors

// Error codes for categorizing errors.
const (
	// CodeOK indicates success (not an error).
	CodeOK = "OK"

	// CodeInternal indicates internal errors.
	CodeInternal = "INTERNAL"

	// CodeValidation indicates input validation failed.
	CodeValidation = "VALIDATION_ERROR"

	// CodeConfigError indicates a configuration error.
	CodeConfigError = "CONFIG_ERROR"

	// Subscription error codes

	// CodeAlreadySubscribed indicates an id is already present in a publisher.
	CodeAlreadySubscribed = "ALREADY_SUBSCRIBED"

	// CodeNotSubscribed indicates an unsubscribe for an id that is not present.
	CodeNotSubscribed = "NOT_SUBSCRIBED"

	// CodeInvalidID indicates a unicast to an id that is not present.
	CodeInvalidID = "INVALID_ID"
)

// ErrorCategory represents a high-level error category.
type ErrorCategory string

const (
	// CategorySubscription covers the three subscription error kinds.
	CategorySubscription ErrorCategory = "SUBSCRIPTION_ERROR"

	// CategoryValidation indicates a validation error.
	CategoryValidation ErrorCategory = "VALIDATION_ERROR"

	// CategoryInternal indicates anything else.
	CategoryInternal ErrorCategory = "INTERNAL_ERROR"
)

// GetCategory returns the category for an error code.
func GetCategory(code string) ErrorCategory {
	switch code {
	case CodeAlreadySubscribed, CodeNotSubscribed, CodeInvalidID:
		return CategorySubscription
	case CodeValidation, CodeConfigError:
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// IsSubscriptionCode returns true if code is one of the subscription codes.
func IsSubscriptionCode(code string) bool {
	return GetCategory(code) == CategorySubscription
}
