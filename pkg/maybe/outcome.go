package maybe

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the pair returned by Try-variants: the value slot and the
// failure captured while producing it, if any.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

var _ Traced[struct{}] = Outcome[struct{}]{}

func Completed[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Captured[T any](v T, err error) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) Failed() bool {
	return o.err != nil
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// Catch drops any captured failure and returns the value slot.
func Catch[T any](o Outcome[T]) T {
	return o.Value()
}

// CatchWith passes a captured failure to handler, then returns the value
// slot regardless.
func CatchWith[T any](o Outcome[T], handler func(err error)) T {
	if err := o.Err(); err != nil && handler != nil {
		handler(err)
	}
	return o.Value()
}
