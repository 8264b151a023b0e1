// Package outcome models operations that can succeed, demand an explicit
// caller confirmation before proceeding, or fail validation. Flows like
// schedule regeneration and department manager reassignment return a
// decision payload instead of an error so the caller can resubmit with an
// override flag.
package outcome

type Kind string

const (
	KindSuccess              Kind = "success"
	KindConfirmationRequired Kind = "confirmation_required"
	KindValidationFailed     Kind = "validation_failed"
)

// Outcome is the discriminated result of a confirmable operation.
type Outcome[T any] struct {
	Kind    Kind
	Value   T
	Message string
	Details map[string]interface{} // set for confirmation-required outcomes
}

func Success[T any](value T) Outcome[T] {
	return Outcome[T]{Kind: KindSuccess, Value: value}
}

func ConfirmationRequired[T any](message string, details map[string]interface{}) Outcome[T] {
	return Outcome[T]{Kind: KindConfirmationRequired, Message: message, Details: details}
}

func ValidationFailed[T any](message string) Outcome[T] {
	return Outcome[T]{Kind: KindValidationFailed, Message: message}
}
