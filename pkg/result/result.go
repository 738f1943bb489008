package result

import "fmt"

// Result holds either an Ok value of type T or an Err value of type F.
// The zero value is Ok holding the zero T.
type Result[T, F any] struct {
	kind Kind
	ok   T
	err  F
}

// Of is a Result whose failure type is left open.
type Of[T any] = Result[T, any]

func Ok[T, F any](v T) Result[T, F] {
	return Result[T, F]{
		kind: KindOk,
		ok:   v,
	}
}

func Err[T, F any](v F) Result[T, F] {
	return Result[T, F]{
		kind: KindErr,
		err:  v,
	}
}

// From converts the usual (T, error) return pair. A nil error, including a
// typed nil pointer, gives Ok(v).
func From[T any](v T, err error) Result[T, error] {
	if isNil(err) {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

func (r Result[T, F]) Kind() Kind {
	return r.kind
}

func (r Result[T, F]) IsOk() bool {
	return r.kind == KindOk
}

func (r Result[T, F]) IsErr() bool {
	return r.kind == KindErr
}

// Ok returns the Ok payload and true, or the zero T and false.
func (r Result[T, F]) Ok() (T, bool) {
	if r.IsOk() {
		return r.ok, true
	}
	var zero T
	return zero, false
}

// Err returns the Err payload and true, or the zero F and false.
func (r Result[T, F]) Err() (F, bool) {
	if r.IsErr() {
		return r.err, true
	}
	var zero F
	return zero, false
}

// Unwrap returns the Ok payload. It panics with an *UnwrapError if r is Err;
// check IsErr first, or use Value, when the failure has to be handled.
func (r Result[T, F]) Unwrap() T {
	if r.IsErr() {
		panic(r.unwrapError())
	}
	return r.ok
}

// UnwrapErr returns the Err payload and panics with an *UnwrapError if r is Ok.
func (r Result[T, F]) UnwrapErr() F {
	if r.IsOk() {
		panic(&UnwrapError{Kind: KindOk, Value: r.ok})
	}
	return r.err
}

// Value is Unwrap without the panic.
func (r Result[T, F]) Value() (T, error) {
	if r.IsErr() {
		var zero T
		return zero, r.unwrapError()
	}
	return r.ok, nil
}

func (r Result[T, F]) String() string {
	if r.IsErr() {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.ok)
}

func (r Result[T, F]) unwrapError() *UnwrapError {
	return &UnwrapError{Kind: KindErr, Value: r.err}
}
