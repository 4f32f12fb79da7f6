// Package catchlog logs failures captured by Try-variants with zap.
package catchlog

import (
	"go.uber.org/zap"

	"github.com/ib-77/maybe/pkg/maybe"
)

// Handler returns a failure handler for maybe.CatchWith that logs at error
// level.
func Handler(logger *zap.Logger, msg string, fields ...zap.Field) func(err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error) {
		all := make([]zap.Field, 0, len(fields)+1)
		all = append(all, fields...)
		logger.Error(msg, append(all, zap.Error(err))...)
	}
}

// Catch logs the failure of o, tagged with its id and creation time, and
// returns the value slot.
func Catch[T any](o maybe.Outcome[T], logger *zap.Logger, msg string) T {
	return maybe.CatchWith(o, Handler(logger, msg,
		zap.Stringer("outcome_id", o.Id()),
		zap.Time("created_at", o.CreatedAt()),
	))
}
