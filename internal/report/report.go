// Package report provides the per-operation reporting context: an ordered
// change list and a batch of recoverable problems, with structured logging
// behind both. One Reporter is opened at the start of an import or update
// operation and flushed at its end; nothing is shared across operations.
package report

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reporter accumulates the change descriptions and non-fatal problems of a
// single operation. Not safe for concurrent use; operations are
// single-threaded.
type Reporter struct {
	log      *zap.Logger
	opID     string
	changes  []string
	problems []string
}

// NewOperation opens a Reporter for one named operation ("import" or
// "update"). Every log line carries the operation name and a fresh
// operation ID.
//
// Precondition: logger must be non-nil.
func NewOperation(logger *zap.Logger, name string) *Reporter {
	id := uuid.NewString()
	return &Reporter{
		log: logger.With(zap.String("operation", name), zap.String("operation_id", id)),
		opID: id,
	}
}

// OperationID returns the unique ID assigned to this operation.
func (r *Reporter) OperationID() string { return r.opID }

// Change records one applied change. Messages keep their append order.
func (r *Reporter) Change(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.changes = append(r.changes, msg)
	r.log.Info("change", zap.String("description", msg))
}

// Problem records a recoverable error. The operation continues; problems
// are surfaced as one batch at the end.
func (r *Reporter) Problem(err error) {
	r.problems = append(r.problems, err.Error())
	r.log.Warn("recoverable problem", zap.Error(err))
}

// Warnf records a recoverable problem that has no underlying error value.
func (r *Reporter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.problems = append(r.problems, msg)
	r.log.Warn("recoverable problem", zap.String("description", msg))
}

// Changes returns the ordered change descriptions recorded so far.
func (r *Reporter) Changes() []string { return r.changes }

// HasChanges reports whether any change was recorded.
func (r *Reporter) HasChanges() bool { return len(r.changes) > 0 }

// Flush closes the operation: it logs a completion line and returns the
// batched problem messages, leaving the Reporter empty of problems.
func (r *Reporter) Flush() []string {
	r.log.Info("operation complete",
		zap.Int("changes", len(r.changes)),
		zap.Int("problems", len(r.problems)),
	)
	problems := r.problems
	r.problems = nil
	return problems
}
