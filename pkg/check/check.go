// Package check defines the model for one validation step and the ordered
// list the pipeline executes.
package check

import (
	"github.com/pubcheck/pubcheck/pkg/context"
)

// Checker defines the interface for all pre-publish checks.
// Checks are executed strictly in declaration order by the runner; a check
// may rely on state written by earlier checks (the computed new version, the
// resolved tag prefix) but never on later ones.
type Checker interface {
	// String returns the check title for reporting and identification.
	// This is displayed to users as the pipeline executes.
	String() string

	// Run executes the check. A nil return means the precondition holds.
	// A non-nil error aborts the whole pipeline; its text is shown to the
	// operator verbatim, attributed to this check.
	Run(ctx *context.Context) error
}

// Skipper is implemented by checks that exclude themselves when a required
// capability is absent (private package, external registry, test mode).
// A true result means the action never runs and the check reports skipped.
type Skipper interface {
	Skip(ctx *context.Context) bool
}

// Enabler is implemented by checks gated on operator intent (for example,
// publish was requested). A false result means the action never runs.
// Skip and Enabled are kept as separate gates on purpose; either one alone
// excludes execution.
type Enabler interface {
	Enabled(ctx *context.Context) bool
}

// Excluded combines both gates: a check does not run when Skip reports true
// or Enabled reports false. Checks implementing neither always run.
func Excluded(ctx *context.Context, c Checker) bool {
	if s, ok := c.(Skipper); ok && s.Skip(ctx) {
		return true
	}
	if e, ok := c.(Enabler); ok && !e.Enabled(ctx) {
		return true
	}
	return false
}
