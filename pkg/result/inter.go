package result

// Outcome is the variant test shared by every Result.
type Outcome interface {
	// Kind returns the variant held
	Kind() Kind
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
}

// Valued gives access to the success side of an Outcome.
type Valued[T any] interface {
	Outcome
	Ok() (T, bool)
	Unwrap() T
}

// Failed gives access to the failure side of an Outcome.
type Failed[F any] interface {
	Outcome
	Err() (F, bool)
	UnwrapErr() F
}

var (
	_ Valued[int]   = Result[int, error]{}
	_ Failed[error] = Result[int, error]{}
	_ Outcome       = Of[string]{}
)
