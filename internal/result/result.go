// Package result provides the tri-state outcome returned by every repository
// operation: Success carries a payload, Fail carries a message from a
// well-formed negative server response, Error carries a description of a
// transport or local failure.
package result

import "fmt"

// Kind identifies which variant a Result holds.
type Kind uint8

const (
	// KindSuccess marks a Result carrying a payload.
	KindSuccess Kind = iota + 1
	// KindFail marks a well-formed negative response.
	KindFail
	// KindError marks a transport, decoding or storage failure.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFail:
		return "fail"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is a closed three-variant outcome. The zero value is invalid; build
// instances with Success, Fail or Error.
type Result[T any] struct {
	kind    Kind
	data    T
	message string
}

// Success returns a Result holding data.
func Success[T any](data T) Result[T] {
	return Result[T]{kind: KindSuccess, data: data}
}

// Fail returns a Result for a negative server response.
func Fail[T any](message string) Result[T] {
	return Result[T]{kind: KindFail, message: message}
}

// Error returns a Result for a transport or storage failure.
func Error[T any](message string) Result[T] {
	return Result[T]{kind: KindError, message: message}
}

// Kind reports the variant held by r.
func (r Result[T]) Kind() Kind { return r.kind }

// IsSuccess reports whether r is a Success.
func (r Result[T]) IsSuccess() bool { return r.kind == KindSuccess }

// Data returns the payload and true for a Success, or the zero value and false.
func (r Result[T]) Data() (T, bool) {
	if r.kind != KindSuccess {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Message returns the Fail or Error message. It is empty for a Success.
func (r Result[T]) Message() string { return r.message }

func (r Result[T]) String() string {
	if r.kind == KindSuccess {
		return fmt.Sprintf("success(%v)", r.data)
	}
	return fmt.Sprintf("%s(%q)", r.kind, r.message)
}

// Match calls exactly one of the handlers depending on the variant of r and
// returns its value. Every caller has to supply all three branches.
//
// Match panics on a zero Result, which can only come from a programming error.
func Match[T, R any](
	r Result[T],
	onSuccess func(data T) R,
	onFail func(message string) R,
	onError func(message string) R,
) R {
	switch r.kind {
	case KindSuccess:
		return onSuccess(r.data)
	case KindFail:
		return onFail(r.message)
	case KindError:
		return onError(r.message)
	default:
		panic("result: match on zero Result")
	}
}

// Map converts the payload of a Success with fn and passes Fail and Error
// through with their messages.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	return Match(r,
		func(data T) Result[R] { return Success(fn(data)) },
		Fail[R],
		Error[R],
	)
}
