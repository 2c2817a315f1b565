// Package gitremote verifies the git remote is reachable before the release
// tries to push anything.
package gitremote

import (
	"errors"

	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/git"
)

// Check resolves the remote HEAD.
type Check struct{}

func (Check) String() string { return "Check git remote" }

func (Check) Run(ctx *context.Context) error {
	_, err := ctx.Runner.Run(ctx.StdCtx, "git", git.LsRemoteArgs()...)
	if err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
			return errors.New(git.RewriteFatal(cmdErr.Stderr))
		}
		return err
	}
	return nil
}
