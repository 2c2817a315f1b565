// Package prerelease enforces the dist-tag policy for pre-release versions:
// publishing one without an explicit tag would silently make it the default
// install for every user.
package prerelease

import (
	"errors"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/semver"
)

// Check requires an explicit dist-tag for pre-release publishes.
type Check struct{}

func (Check) String() string { return "Check for pre-release version" }

// Enabled gates on operator intent: the policy only matters when a publish
// was requested.
func (Check) Enabled(ctx *context.Context) bool {
	return ctx.Options.Publish
}

// Skip excludes private packages; they are never installed from a dist-tag.
func (Check) Skip(ctx *context.Context) bool {
	return ctx.IsPrivate
}

func (Check) Run(ctx *context.Context) error {
	if semver.Prerelease(ctx.NewVersion) && ctx.Options.Tag == "" {
		return errors.New("You must specify a dist-tag using --tag when publishing a pre-release version. This prevents accidentally tagging unstable versions as \"latest\".")
	}
	return nil
}
