// Package ghrelease detects an existing GitHub release for the tag the
// pipeline is about to create.
package ghrelease

import (
	"fmt"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/github"
)

// Check looks up a release by tag through the configured GitHub client.
type Check struct{}

func (Check) String() string { return "Check GitHub release" }

// Enabled gates on configuration: the check needs a client, which the CLI
// wires only when github.owner, github.repo, and a token are configured.
func (Check) Enabled(ctx *context.Context) bool {
	return ctx.GitHub != nil && ctx.Config.GitHub.Configured()
}

func (Check) Run(ctx *context.Context) error {
	cfg := ctx.Config.GitHub
	tag := ctx.ReleaseTag()

	release, err := ctx.GitHub.GetRelease(ctx.StdCtx, cfg.Owner, cfg.Repo, tag)
	if err != nil {
		// No release for this tag is the expected state.
		if github.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("GitHub release lookup for %s failed: %w", tag, err)
	}

	if release != nil {
		return fmt.Errorf("GitHub release for tag `%s` already exists.", tag)
	}
	return nil
}
