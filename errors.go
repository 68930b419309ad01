package anykey

import (
	"errors"
	"fmt"
)

// ErrNotObject is returned by the Unmarshal functions when the input
// is valid JSON but its top-level value is not an object, e.g. an
// array or a bare scalar.
var ErrNotObject = errors.New("not a JSON object")

// errStringKey signals that a key type classified as the plain string
// type could not be accessed as one. This cannot happen through the
// exported API and indicates a defect in the key classification.
var errStringKey = errors.New("key type is not a string")

// KeyError reports an object member name that could not be decoded
// into the target key type.
//
// The underlying JSON error can be accessed via errors.Unwrap.
type KeyError struct {
	Name string
	err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("decode key %q: %v", e.Name, e.err)
}

func (e *KeyError) Unwrap() error { return e.err }

// ValueError reports an object member value that could not be decoded
// into the target value type. Name is the member name the value
// belongs to.
//
// The underlying JSON error can be accessed via errors.Unwrap.
type ValueError struct {
	Name string
	err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("decode value of %q: %v", e.Name, e.err)
}

func (e *ValueError) Unwrap() error { return e.err }
