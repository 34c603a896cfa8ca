// Package outcome defines the tri-state result type returned by every
// gateway and repository operation. Exactly one variant is active:
// Success carries a payload, NetworkFailure carries a message plus the
// transport status code when known, GenericFailure carries only a message.
// No errors cross the gateway or repository boundary any other way.
package outcome

// Kind identifies the active variant of an Outcome.
type Kind int

const (
	KindSuccess Kind = iota
	KindNetworkFailure
	KindGenericFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNetworkFailure:
		return "network_failure"
	default:
		return "generic_failure"
	}
}

// NoCode marks a NetworkFailure whose transport status is unknown.
const NoCode = 0

type Outcome[T any] struct {
	kind    Kind
	data    T
	message string
	code    int
}

// Success wraps a payload.
func Success[T any](data T) Outcome[T] {
	return Outcome[T]{kind: KindSuccess, data: data}
}

// NetworkFailure records a non-success transport status. Pass NoCode when
// the status is unknown.
func NetworkFailure[T any](message string, code int) Outcome[T] {
	return Outcome[T]{kind: KindNetworkFailure, message: message, code: code}
}

// GenericFailure records a decode error, transport exception or
// payload-level validation failure. It never carries a status code.
func GenericFailure[T any](message string) Outcome[T] {
	return Outcome[T]{kind: KindGenericFailure, message: message}
}

func (o Outcome[T]) Kind() Kind { return o.kind }

func (o Outcome[T]) IsSuccess() bool { return o.kind == KindSuccess }

// Value returns the payload; meaningful only when IsSuccess.
func (o Outcome[T]) Value() T { return o.data }

// Failure returns the message and code of a failed outcome. Code is NoCode
// for GenericFailure. ok is false for Success.
func (o Outcome[T]) Failure() (message string, code int, ok bool) {
	if o.kind == KindSuccess {
		return "", NoCode, false
	}
	return o.message, o.code, true
}

// ForwardFailure re-types a failed outcome so repositories can propagate a
// gateway failure unchanged, message and code included. Calling it on a
// Success is a programming error and yields a GenericFailure.
func ForwardFailure[U, T any](o Outcome[T]) Outcome[U] {
	switch o.kind {
	case KindNetworkFailure:
		return NetworkFailure[U](o.message, o.code)
	case KindGenericFailure:
		return GenericFailure[U](o.message)
	default:
		return GenericFailure[U]("cannot forward a success outcome")
	}
}
