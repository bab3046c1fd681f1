package sorting

import "errors"

// Input validation errors. All of them are recoverable by correcting the
// input and retrying.
var (
	// ErrInvalidInput indicates a size field that is empty or not an integer.
	ErrInvalidInput = errors.New("sorting: invalid input (size must be an integer)")

	// ErrInvalidSize indicates a size that is non-positive or exceeds the value pool.
	ErrInvalidSize = errors.New("sorting: invalid size")

	// ErrInvalidValues indicates an explicit sequence with a value outside
	// [MinValue, MaxValue] or a repeated value.
	ErrInvalidValues = errors.New("sorting: invalid values")

	// ErrInvalidAlgorithm indicates an unrecognized algorithm identifier.
	ErrInvalidAlgorithm = errors.New("sorting: invalid algorithm selection")

	// ErrNoSequence indicates a step was requested before a sequence was created.
	ErrNoSequence = errors.New("sorting: no sequence (create one first)")
)

// InputError wraps a validation error with the raw text that caused it.
type InputError struct {
	Text    string
	Wrapped error
}

func (e *InputError) Error() string {
	return e.Wrapped.Error() + ": " + quote(e.Text)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}

func quote(s string) string {
	return "\"" + s + "\""
}
