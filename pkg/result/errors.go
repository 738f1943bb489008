package result

import "errors"

var (
	// ErrUnwrap matches every *UnwrapError via errors.Is.
	ErrUnwrap = errors.New("failed to unwrap result")
	// ErrInvalidKind is returned when decoding an unknown discriminator.
	ErrInvalidKind = errors.New("invalid result kind")
)

// UnwrapError is the panic value of Unwrap and UnwrapErr, and the error
// returned by Value on an Err result.
type UnwrapError struct {
	// Kind is the variant the Result actually held.
	Kind Kind
	// Value is the payload of that variant. It is not part of the message.
	Value any
}

func (e *UnwrapError) Error() string {
	if e.Kind == KindOk {
		return "failed to unwrap result: result is ok"
	}
	return "failed to unwrap result: result is err"
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrap
}
