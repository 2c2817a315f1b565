// Package runner executes the pre-publish checks in sequence.
//
// Checks run strictly one at a time, in declaration order. Before each check
// its gates are evaluated; an excluded check is logged as skipped and its
// action never runs. The first failing check stops the pipeline: remaining
// checks never start, and the result names the check together with its
// operator-facing message. There is no runner-level timeout or retry; a
// check that needs a deadline imposes its own.
//
// Usage:
//
//	ctx := context.New(stdCtx, cfg, pkg, logger, runner, opts, input)
//	if err := runner.Run(ctx, check.Checks); err != nil {
//	    // err is a *Failure naming the check that failed
//	}
package runner

import (
	"errors"
	"time"

	"github.com/pubcheck/pubcheck/pkg/check"
	"github.com/pubcheck/pubcheck/pkg/context"
)

// Failure is the pipeline outcome when a check fails: which check, and the
// message shown to the operator. A nil error from Run is the success outcome.
type Failure struct {
	Check   string
	Message string
}

func (f *Failure) Error() string {
	return f.Check + ": " + f.Message
}

// AsFailure extracts the Failure from a pipeline error, if there is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Run executes checks in order against the shared context. It returns nil
// when every non-skipped check passed, or a *Failure for the first check
// whose action returned an error.
func Run(ctx *context.Context, checks []check.Checker) error {
	for _, c := range checks {
		if check.Excluded(ctx, c) {
			ctx.Logger.Infof("Skipping: %s", c)
			continue
		}

		ctx.Logger.Infof("Running: %s", c)
		start := time.Now()

		if err := c.Run(ctx); err != nil {
			return &Failure{Check: c.String(), Message: err.Error()}
		}

		duration := time.Since(start)
		ctx.Logger.Infof("Completed: %s (%s)", c, duration.Round(time.Millisecond))
	}
	return nil
}
