package maybe

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the value slot
	Value() T
}

// WithFailure defines an interface for types that carry a value and an
// optionally captured failure
type WithFailure[T any] interface {
	ValueProvider[T]
	// Err returns the captured failure, nil when none
	Err() error
}

// Traced extends WithFailure with identity used for correlating logs
type Traced[T any] interface {
	WithFailure[T]
	// Id unique outcome id
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
