package prediction

import (
	"errors"
	"fmt"
)

// ErrSaveNotImplemented is returned by Save until rendering to disk lands.
var ErrSaveNotImplemented = errors.New("save is not implemented")

// MissingFieldError reports access to a field the prediction does not carry.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("prediction has no field %q", e.Key)
}

// FieldTypeError reports a field whose value cannot be coerced to the type
// its prediction kind requires.
type FieldTypeError struct {
	Key   string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("prediction field %q has unusable value %v (%T)", e.Key, e.Value, e.Value)
}

// InvalidMemberError reports an attempt to put something that is not a
// prediction into a group.
type InvalidMemberError struct{}

func (e *InvalidMemberError) Error() string {
	return "cannot add a nil prediction to a prediction group"
}
