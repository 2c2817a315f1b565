// Package gittag detects a collision between the tag the release would
// create and tags already on the remote.
package gittag

import (
	"fmt"
	"strings"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/git"
	"github.com/pubcheck/pubcheck/pkg/npm"
)

// Check refreshes remote refs, resolves the configured tag prefix, and
// verifies the release tag does not already exist.
type Check struct{}

func (Check) String() string { return "Check git tag existence" }

func (Check) Run(ctx *context.Context) error {
	if _, err := ctx.Runner.Run(ctx.StdCtx, "git", git.FetchArgs()...); err != nil {
		return err
	}

	// Best-effort prefix resolution: a failed lookup keeps the default "v"
	// rather than failing the check.
	tool := npm.Tool(ctx.Options.Yarn)
	out, err := ctx.Runner.Run(ctx.StdCtx, tool, npm.TagPrefixArgs(ctx.Options.Yarn)...)
	if err == nil {
		if prefix := strings.TrimSpace(out); prefix != "" {
			ctx.TagPrefix = prefix
		}
	} else {
		ctx.Logger.Debugf("Tag prefix lookup failed, keeping %q: %v", ctx.TagPrefix, err)
	}

	tag := ctx.ReleaseTag()
	out, err = ctx.Runner.Run(ctx.StdCtx, "git", git.VerifyTagArgs(tag)...)
	if err != nil {
		// rev-parse exiting non-zero with silent streams means the tag does
		// not exist. Anything louder is git itself failing.
		if git.TagAbsent(err) {
			return nil
		}
		return err
	}

	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("Git tag `%s` already exists.", tag)
	}
	return nil
}
