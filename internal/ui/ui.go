// Package ui defines the interactive collaborator contract used during
// reconciliation, plus a terminal implementation.
package ui

// UI is the interaction surface the reconciliation engine depends on. The
// tool is interactive: implementations may block indefinitely waiting for
// an answer, there is no timeout.
type UI interface {
	// Notify shows a batch of messages, typically the accumulated
	// non-fatal problems of one operation.
	Notify(messages []string)

	// Confirm asks a question and returns the selected option.
	Confirm(question string, options []string) string

	// ShowComparison displays two objects side by side under the given
	// labels and returns whether the user judged them to be the same.
	ShowComparison(title, leftLabel string, left any, rightLabel string, right any) bool
}
