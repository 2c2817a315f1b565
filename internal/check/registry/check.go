// Package registry verifies the npm registry answers before anything else
// is attempted.
package registry

import (
	stdcontext "context"
	"errors"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/npm"
)

// Check pings the default registry with a bounded deadline.
type Check struct{}

func (Check) String() string { return "Ping npm registry" }

// Skip excludes private packages and external registries; neither publishes
// through the default registry this check pings.
func (Check) Skip(ctx *context.Context) bool {
	return ctx.IsPrivate || ctx.IsExternalRegistry
}

func (Check) Run(ctx *context.Context) error {
	deadline := ctx.Config.Registry.Timeout()
	pingCtx, cancel := stdcontext.WithTimeout(ctx.StdCtx, deadline)
	defer cancel()

	_, err := ctx.Runner.Run(pingCtx, "npm", npm.PingArgs(ctx.Package.Registry())...)
	if err != nil {
		// The operator needs to tell a dead registry from a slow one.
		if errors.Is(err, stdcontext.DeadlineExceeded) {
			return errors.New("Connection to npm registry timed out")
		}
		return errors.New("Connection to npm registry failed")
	}
	return nil
}
